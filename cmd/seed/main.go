package main

import (
	"fmt"
	"log"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/services"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func f(v float64) *float64 { return &v }

// demo catalog rows, heterogeneous provider ids on purpose
var seedServices = []models.ServiceRecord{
	{ProviderServiceID: "101", Category: "IG Followers", Name: "Followers — worldwide", Description: "Gradual delivery, refill 30 days.", ProviderRatePer1000: 1.2, MinQuantity: f(50), MaxQuantity: f(50000), Active: true},
	{ProviderServiceID: "102", Category: "IG Followers", Name: "Followers — premium", Description: "High quality accounts.", ProviderRatePer1000: 3.4, MinQuantity: f(100), MaxQuantity: f(20000), Active: true},
	{ProviderServiceID: "205", Category: "IG Likes", Name: "Post likes", Description: "Starts within the hour.", ProviderRatePer1000: 0.8, MinQuantity: f(10), Active: true},
	{ProviderServiceID: "206", Category: "IG Likes", Name: "Reel likes", ProviderRatePer1000: 0.9, MinQuantity: f(10), MaxQuantity: f(100000), Active: true},
	{ProviderServiceID: "310", Category: "YT Views", Name: "Video views", Description: "Retention 2-3 minutes.", ProviderRatePer1000: 1.9, MinQuantity: f(500), Active: true},
	{ProviderServiceID: "vx-promo", Category: "YT Views", Name: "Promo bundle", Description: "Pilot service, manual review.", ProviderRatePer1000: 5.0, Active: true},
	{ProviderServiceID: "412", Category: "Telegram Members", Name: "Channel members", ProviderRatePer1000: 2.5, MinQuantity: f(100), MaxQuantity: f(30000), Active: true},
	{ProviderServiceID: "499", Category: "  IG Followers  ", Name: "Followers — targeted", Description: "Same group as IG Followers after trimming.", ProviderRatePer1000: 4.1, MinQuantity: f(100), Active: true},
}

// main seeds demo catalog rows and a demo customer.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VOLTIFY PANEL - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.PanelGorm.AutoMigrate(
		&models.User{},
		&models.ServiceRecord{},
		&models.PlacedOrder{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("✓ Schema migrated")

	created := 0
	for _, svc := range seedServices {
		var existing models.ServiceRecord
		err := config.PanelGorm.Where("provider_service_id = ?", svc.ProviderServiceID).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}
		record := svc
		if err := config.PanelGorm.Create(&record).Error; err != nil {
			log.Fatalf("Failed to seed service %s: %v", svc.ProviderServiceID, err)
		}
		created++
	}
	log.Printf("✓ Seeded %d catalog rows (%d already present)", created, len(seedServices)-created)

	demoEmail := "demo@voltify.social"
	var existing models.User
	if err := config.PanelGorm.Where("email = ?", demoEmail).First(&existing).Error; err == gorm.ErrRecordNotFound {
		hash, err := services.GetAuthService().HashPassword("demo-password")
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		demo := models.User{
			Email:        demoEmail,
			Name:         "Demo Customer",
			PasswordHash: hash,
			Status:       "active",
		}
		if err := config.PanelGorm.Create(&demo).Error; err != nil {
			log.Fatalf("Failed to create demo customer: %v", err)
		}
		log.Printf("✓ Demo customer created: %s", demoEmail)
	} else if err != nil {
		log.Fatalf("Database error: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seed complete")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Printf("2. Login at POST /api/v1/auth/login as %s\n", demoEmail)
}
