package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Shop is the static contact information injected into outgoing messages and
// export file names.
type Shop struct {
	Name          string
	Phone         string
	BusinessHours string
	Services      string
	FilePrefix    string
}

func Default() Shop {
	return Shop{
		Name:          "Kek Afrina",
		Phone:         "60196233479",
		BusinessHours: "9 AM - 8 PM Daily",
		Services:      "Custom Cakes & Delivery Available",
		FilePrefix:    "kek-afrina",
	}
}

// Load returns the default shop overridden by any SHOP_* environment
// variables, reading a .env file first when one is present.
func Load() Shop {
	_ = godotenv.Load() // a missing .env is fine

	shop := Default()
	override(&shop.Name, "SHOP_NAME")
	override(&shop.Phone, "SHOP_PHONE")
	override(&shop.BusinessHours, "SHOP_BUSINESS_HOURS")
	override(&shop.Services, "SHOP_SERVICES")
	override(&shop.FilePrefix, "SHOP_FILE_PREFIX")

	return shop
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
