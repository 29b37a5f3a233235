package database

import (
	"log"
	"os"

	"manyar-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=manyar port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ContactMessage{},
		&models.Admin{},
		&models.Session{},
	)
}

// SeedDefaultCategories populates the four storefront categories on
// first boot. It is a no-op once any category exists, so operator
// edits and deletions stick.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{
			NameAr:        "خدمات تقنية متكاملة",
			NameEn:        "Integrated Technical Services",
			DescriptionAr: "صيانة حواسيب، خدمات برمجية، تركيب شبكات، ودعم فني متخصص",
			DescriptionEn: "Computer maintenance, software services, network installation, and specialized technical support",
			Icon:          "wrench",
			WhatsappLink:  "https://wa.me/message/HWIIVWSQTBZXM1",
			PhoneNumber:   "+963947993132",
		},
		{
			NameAr:        "بيع وشراء الحواسيب",
			NameEn:        "Computer Sales & Purchase",
			DescriptionAr: "أجهزة جديدة ومستعملة، شاشات، طابعات، لوحات مفاتيح وإكسسوارات",
			DescriptionEn: "New and used devices, monitors, printers, keyboards and accessories",
			Icon:          "computer",
			WhatsappLink:  "https://wa.me/message/HWIIVWSQTBZXM1",
			PhoneNumber:   "+963947993132",
		},
		{
			NameAr:        "خدمات الطباعة والقرطاسية",
			NameEn:        "Printing & Stationery Services",
			DescriptionAr: "طباعة أبحاث، دفاتر، أطروحات، تصوير ملخصات وبيع قرطاسية جامعية",
			DescriptionEn: "Research printing, notebooks, theses, summary copying and university stationery sales",
			Icon:          "printer",
			WhatsappLink:  "https://wa.me/963969597967",
			PhoneNumber:   "+963969597967",
		},
		{
			NameAr:        "مواد التجميل والعناية",
			NameEn:        "Beauty & Care Products",
			DescriptionAr: "منتجات عناية أصلية، ماركات موثوقة للبشرة والشعر والعطورات",
			DescriptionEn: "Original care products, trusted brands for skin, hair and perfumes",
			Icon:          "sparkles",
			WhatsappLink:  "https://wa.me/963936086895",
			PhoneNumber:   "+963936086895",
		},
	}

	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d default categories", len(categories))
	return nil
}
