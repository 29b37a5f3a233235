package models

import (
	"time"
)

type Category struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NameAr        string    `gorm:"size:100;not null" json:"name_ar"`
	NameEn        string    `gorm:"size:100;not null" json:"name_en"`
	DescriptionAr string    `json:"description_ar"`
	DescriptionEn string    `json:"description_en"`
	Icon          string    `gorm:"size:50" json:"icon"` // Icon name or identifier
	WhatsappLink  string    `gorm:"size:200" json:"whatsapp_link"`
	PhoneNumber   string    `gorm:"size:20" json:"phone_number"`
	CreatedAt     time.Time `json:"created_at"`
	Products      []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`

	// ProductsCount is not a column; handlers fill it in before serialization.
	ProductsCount int64 `gorm:"-" json:"products_count"`
}
