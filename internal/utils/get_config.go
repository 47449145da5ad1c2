package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
	"sync"
)

type Config struct {
	// Application
	AppPort     string `yaml:"APP_PORT"`
	AppURL      string `yaml:"APP_URL"`
	CompanyName string `yaml:"COMPANY_NAME"`

	// Database configuration
	DBDriver     string `yaml:"DB_DRIVER"`
	DBUser       string `yaml:"DB_USER"`
	DBName       string `yaml:"DB_NAME"`
	DBPassword   string `yaml:"DB_PASSWORD"`
	DBPort       string `yaml:"DB_PORT"`
	DBHost       string `yaml:"DB_HOST"`
	DBSqlitePath string `yaml:"DB_SQLITE_PATH"`

	// JWT and the seeded admin account
	JWTSecret     string `yaml:"JWT_SECRET"`
	AdminEmail    string `yaml:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`
	AdminName     string `yaml:"ADMIN_NAME"`

	// Mailing configuration
	CoachEmail       string `yaml:"COACH_EMAIL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    bool   `yaml:"IsProd"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// External lookups
	USDAAPIKey    string `yaml:"USDA_API_KEY"`
	YouTubeAPIKey string `yaml:"YOUTUBE_API_KEY"`

	// Invoicing
	ChromeRemoteURL   string `yaml:"CHROME_REMOTE_URL"`
	InvoiceVATPercent string `yaml:"INVOICE_VAT_PERCENT"`
	Currency          string `yaml:"CURRENCY"`
}

var (
	config     Config
	configOnce sync.Once
)

// LoadConfig reads config.yaml once. Environment variables with the same key
// take precedence over values from the file.
func LoadConfig() {
	configOnce.Do(func() {
		file, err := os.ReadFile("config.yaml")
		if err != nil {
			log.Printf("Error reading YAML file: %s\n", err)
		} else if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	})
}

func GetConfig(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	switch key {
	case "APP_PORT":
		return withDefault(config.AppPort, "8080")
	case "APP_URL":
		return config.AppURL
	case "COMPANY_NAME":
		return withDefault(config.CompanyName, "FitCoach")
	case "DB_DRIVER":
		return withDefault(config.DBDriver, "postgres")
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SQLITE_PATH":
		return withDefault(config.DBSqlitePath, "fitcoach.db")
	case "JWT_SECRET":
		return config.JWTSecret
	case "ADMIN_EMAIL":
		return config.AdminEmail
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	case "ADMIN_NAME":
		return withDefault(config.AdminName, "Coach")
	case "COACH_EMAIL":
		return config.CoachEmail
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "CLIENT_KEY":
		return config.ClientKey
	case "SERVER_KEY":
		return config.ServerKey
	case "IsProd":
		return strconv.FormatBool(config.IsProd)
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "USDA_API_KEY":
		return config.USDAAPIKey
	case "YOUTUBE_API_KEY":
		return config.YouTubeAPIKey
	case "CHROME_REMOTE_URL":
		return config.ChromeRemoteURL
	case "INVOICE_VAT_PERCENT":
		return withDefault(config.InvoiceVATPercent, "11")
	case "CURRENCY":
		return withDefault(config.Currency, "IDR")
	default:
		return ""
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
