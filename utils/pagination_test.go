package utils

import (
	"testing"
)

func TestParsePageParams(t *testing.T) {
	cases := []struct {
		page, perPage         string
		wantPage, wantPerPage int
	}{
		{"", "", 1, DefaultPerPage},
		{"3", "10", 3, 10},
		{"0", "0", 1, DefaultPerPage},
		{"-2", "-5", 1, DefaultPerPage},
		{"abc", "xyz", 1, DefaultPerPage},
		{"2", "500", 2, MaxPerPage},
	}

	for _, tc := range cases {
		page, perPage := ParsePageParams(tc.page, tc.perPage)
		if page != tc.wantPage || perPage != tc.wantPerPage {
			t.Errorf("ParsePageParams(%q, %q) = (%d, %d), want (%d, %d)",
				tc.page, tc.perPage, page, perPage, tc.wantPage, tc.wantPerPage)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(5, 1, 2)
	if p.Pages != 3 || !p.HasNext || p.HasPrev {
		t.Errorf("unexpected envelope for 5 rows page 1: %+v", p)
	}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}

	p = NewPagination(5, 3, 2)
	if p.HasNext || !p.HasPrev {
		t.Errorf("unexpected envelope for last page: %+v", p)
	}
	if p.Offset() != 4 {
		t.Errorf("expected offset 4, got %d", p.Offset())
	}

	// Out-of-range pages keep the math defined and simply have no rows.
	p = NewPagination(0, 1, 20)
	if p.Pages != 0 || p.HasNext || p.HasPrev {
		t.Errorf("unexpected envelope for empty result: %+v", p)
	}
}
