package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string
	DBDriver string
	DBSource string

	AdminPassword string
	SessionSecret string
	SessionTTL    time.Duration

	AddItemWebhook      string
	UpdateStatusWebhook string
	DeleteItemWebhook   string
	WebhookTimeout      time.Duration

	CacheTTL time.Duration

	// CatalogTable/CatalogType select between the dedicated
	// menu_items table and a shared table filtered by a type tag.
	CatalogTable string
	CatalogType  string
	KBTable      string

	StorageBackend string // "local" or "supabase"
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
	UploadDir      string
	PublicBaseURL  string

	DemoSeed bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading environment directly")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8000"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "kitchen.db"),

		AdminPassword: mustGetEnv("ADMIN_PASSWORD"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),

		AddItemWebhook:      mustGetEnv("ADD_ITEM_WEBHOOK"),
		UpdateStatusWebhook: mustGetEnv("UPDATE_STATUS_WEBHOOK"),
		DeleteItemWebhook:   mustGetEnv("DELETE_ITEM_WEBHOOK"),
		WebhookTimeout:      getDuration("WEBHOOK_TIMEOUT", 30*time.Second),

		CacheTTL: getDuration("CACHE_TTL", 60*time.Second),

		CatalogTable: getEnv("CATALOG_TABLE", "menu_items"),
		CatalogType:  getEnv("CATALOG_TYPE", ""),
		KBTable:      getEnv("KB_TABLE", "kb_articles"),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		SupabaseBucket: getEnv("SUPABASE_BUCKET", "menu-images"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),

		DemoSeed: getEnv("DEMO_SEED", "") == "true",
	}

	if cfg.StorageBackend == "supabase" {
		cfg.SupabaseURL = mustGetEnv("SUPABASE_URL")
		cfg.SupabaseKey = mustGetEnv("SUPABASE_KEY")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// mustGetEnv halts startup when a required value is absent.
func mustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logrus.Fatalf("missing required env: %s", key)
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Fatalf("invalid duration for %s: %v", key, err)
	}
	return d
}
