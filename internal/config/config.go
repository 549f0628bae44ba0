package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Gemini
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	GeminiAPIURL string `mapstructure:"GEMINI_API_URL"`

	// GitHub Contents API (overridable for tests)
	GithubAPIURL string `mapstructure:"GITHUB_API_URL"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash-lite")
	viper.SetDefault("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GITHUB_API_URL", "https://api.github.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}
