package config

import "os"

type Config struct {
	Port string

	// Published CSV of the menu sheet.
	MenuCSVURL string
	// Apps Script web-app endpoint that appends order rows.
	OrdersWebhookURL string

	ShopName string

	// Staff dashboard access.
	JWTSecret         string
	StaffPasswordHash string

	AllowedOrigin string
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8082"),
		MenuCSVURL:        getEnv("MENU_CSV_URL", ""),
		OrdersWebhookURL:  getEnv("ORDERS_WEBHOOK_URL", ""),
		ShopName:          getEnv("SHOP_NAME", "SAYEMA'S KITCHEN"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		StaffPasswordHash: getEnv("STAFF_PASSWORD_HASH", ""),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
