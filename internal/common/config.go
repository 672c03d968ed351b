package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all library configuration
type Config struct {
	OCR     OCRConfig
	Matcher MatcherConfig
}

// OCRConfig configures the external text-extraction collaborator.
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
	TessdataDir   string
	Timeout       time.Duration
}

// MatcherConfig holds parsing and reconciliation knobs.
type MatcherConfig struct {
	// AmountTolerance is a decimal string such as "0.01"; empty means exact
	// amount comparison.
	AmountTolerance string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "ind+eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 10),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			Timeout:       getEnvAsDuration("OCR_TIMEOUT", 2*time.Minute),
		},
		Matcher: MatcherConfig{
			AmountTolerance: getEnv("AMOUNT_TOLERANCE", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
