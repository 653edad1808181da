package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	UploadDir string
	Port      string
)

// Issued tokens expire a fixed duration after signup/login; there is no
// refresh or revocation.
const AccessTokenTTL = time.Hour

// Fallback kept for parity with the original deployment. Set JWT_SECRET in
// production.
const defaultJWTSecret = "your_super_secure_secret_key_12345"

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] no .env file found, using system ENV")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET", defaultJWTSecret)
	UploadDir = GetEnv("UPLOAD_DIR", "public/files")
	Port = GetEnv("PORT", "3500")

	if JWTSecret == defaultJWTSecret {
		log.Println("[WARN] JWT_SECRET not set, falling back to built-in secret")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
