package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// devSessionSecret is the placeholder the original deployment shipped with.
// It is only acceptable in development; Load refuses to start without a
// real secret anywhere else.
const devSessionSecret = "Shhhh"

type Config struct {
	Port              string
	Env               string
	MongoURI          string
	DBName            string
	SessionSecret     string
	UploadDir         string
	PublicDir         string
	TemplateDir       string
	SharedPostEditing bool
}

func Load() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "thoughtmemo"),
		SessionSecret: os.Getenv("SECRET_KEY"),
		UploadDir:     getEnv("UPLOAD_DIR", "public/images/uploads"),
		PublicDir:     getEnv("PUBLIC_DIR", "public"),
		TemplateDir:   getEnv("TEMPLATE_DIR", "web/templates"),
	}

	shared, err := strconv.ParseBool(getEnv("SHARED_POST_EDITING", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHARED_POST_EDITING value: %w", err)
	}
	cfg.SharedPostEditing = shared

	if cfg.SessionSecret == "" {
		if cfg.Env != "development" {
			return nil, fmt.Errorf("SECRET_KEY must be set when ENV is %q", cfg.Env)
		}
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
