package models

import (
	"math"
	"time"
)

type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	NameAr        string         `gorm:"size:200;not null" json:"name_ar"`
	NameEn        string         `gorm:"size:200;not null" json:"name_en"`
	DescriptionAr string         `json:"description_ar"`
	DescriptionEn string         `json:"description_en"`
	Price         *float64       `json:"price"`
	OriginalPrice *float64       `json:"original_price"`
	ImageURL      string         `gorm:"size:500" json:"image_url"` // Legacy single-image field, kept for backward compatibility
	IsFeatured    bool           `json:"is_featured"`
	IsActive      bool           `json:"is_active"`
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	PhoneNumber   string         `gorm:"size:20" json:"phone_number"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`

	// DiscountPercentage is not a column; Decorate fills it in.
	DiscountPercentage float64 `gorm:"-" json:"discount_percentage"`
}

// PrimaryImageURL returns the representative image for the product:
// the image flagged primary, else the first image by sort order, else
// the legacy image_url column.
func (p *Product) PrimaryImageURL() string {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return p.Images[i].ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return p.ImageURL
}

// Discount returns the discount percentage rounded to two decimals,
// or 0 when either price is missing or there is no markdown.
func (p *Product) Discount() float64 {
	if p.OriginalPrice == nil || p.Price == nil || *p.OriginalPrice <= *p.Price {
		return 0
	}
	pct := (*p.OriginalPrice - *p.Price) / *p.OriginalPrice * 100
	return math.Round(pct*100) / 100
}

// Decorate resolves the derived response fields. It must only be
// called on a copy that will not be written back, since it overwrites
// the legacy image_url column with the resolved primary image.
func (p *Product) Decorate() {
	p.DiscountPercentage = p.Discount()
	p.ImageURL = p.PrimaryImageURL()
	if p.Images == nil {
		p.Images = []ProductImage{}
	}
}
