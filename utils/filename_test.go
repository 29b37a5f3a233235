package utils

import (
	"strings"
	"testing"
)

func TestSecureFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"photo.png", "photo.png"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"../../etc/passwd.png", "passwd.png"},
		{`..\..\windows\system32.png`, "system32.png"},
		{".hidden.png", "hidden.png"},
		// Non-ASCII collapses to underscores which are then stripped,
		// mirroring werkzeug's secure_filename.
		{"مرحبا.png", "png"},
		{"///", "file"},
		{"", "file"},
	}

	for _, tc := range cases {
		got := SecureFilename(tc.in)
		if got != tc.want {
			t.Errorf("SecureFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if strings.ContainsAny(got, `/\`) || strings.Contains(got, "..") {
			t.Errorf("SecureFilename(%q) = %q still contains path characters", tc.in, got)
		}
	}
}

func TestAllowedFile(t *testing.T) {
	allowed := []string{"a.png", "b.JPG", "c.jpeg", "d.gif", "e.WebP"}
	for _, name := range allowed {
		if !AllowedFile(name) {
			t.Errorf("expected %q to be allowed", name)
		}
	}

	rejected := []string{"a.exe", "b.svg", "noext", "c.png.sh", "d."}
	for _, name := range rejected {
		if AllowedFile(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
