package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret            string
	Issuer               string
	AccessTokenMinutes   int
	RefreshTokenDays     int
	DbHost               string
	DbPort               string
	DbUser               string
	DbPassword           string
	DbName               string
	ServerPort           string
	AdminEmail           string
	AdminPassword        string
	AdminTokenMinutes    int
	MinioEndpoint        string
	MinioAccessKey       string
	MinioSecretKey       string
	MinioUseSSL          bool
	MinioBucket          string
	SMTPHost             string
	SMTPPort             string
	SMTPUser             string
	SMTPPassword         string
	SMTPFrom             string
	VerifyTokenHours     int
	ResetTokenHours      int
	MaxActivityLogs      int
	CORSAllowOrigins     string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "change-me")
	Issuer = getEnv("JWT_ISSUER", "antique-catalogue")
	AccessTokenMinutes = getEnvInt("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	RefreshTokenDays = getEnvInt("JWT_REFRESH_TOKEN_EXPIRE_DAYS", 7)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "antique_catalogue")
	ServerPort = getEnv("SERVER_PORT", "8080")

	AdminEmail = getEnv("ADMIN_EMAIL", "")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")
	AdminTokenMinutes = getEnvInt("ADMIN_TOKEN_EXPIRE_MINUTES", 60)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "catalogue-images")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnv("SMTP_PORT", "587")
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPFrom = getEnv("SMTP_FROM", "noreply@antique-catalogue.local")

	VerifyTokenHours = getEnvInt("VERIFY_TOKEN_EXPIRE_HOURS", 24)
	ResetTokenHours = getEnvInt("RESET_TOKEN_EXPIRE_HOURS", 2)
	MaxActivityLogs = getEnvInt("MAX_ACTIVITY_LOGS_PER_USER", 100)
	CORSAllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
