package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBSource    string
	Port        string
	FrontendURL string

	JWTSecret        string
	JWTTTL           time.Duration
	JWTRefreshSecret string
	JWTRefreshTTL    time.Duration

	// Pricing knobs for the order assembler.
	TaxRate             decimal.Decimal
	DeliveryFee         decimal.Decimal
	FreeDeliveryMinimum decimal.Decimal
	Currency            string

	StripeSecretKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:    getEnv("DB_SOURCE", "parmesana.db"),
		Port:        getEnv("PORT", "3000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           getEnvDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "changeme-refresh"),
		JWTRefreshTTL:    getEnvDuration("JWT_REFRESH_EXPIRES_IN", 30*24*time.Hour),

		TaxRate:             getEnvDecimal("TAX_RATE", "0.16"),
		DeliveryFee:         getEnvDecimal("DELIVERY_FEE", "30"),
		FreeDeliveryMinimum: getEnvDecimal("FREE_DELIVERY_MINIMUM", "300"),
		Currency:            getEnv("CURRENCY", "mxn"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, raw, fallback)
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// plain number means hours, matches the old .env convention
	if h, err := strconv.Atoi(v); err == nil {
		return time.Duration(h) * time.Hour
	}
	log.Printf("invalid %s=%q, using default", key, v)
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
