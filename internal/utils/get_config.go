package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port string `yaml:"PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT configuration
	JWTSecret string `yaml:"JWT_SECRET"`

	// Google OAuth configuration
	GoogleClientID string `yaml:"GOOGLE_CLIENT_ID"`

	// Redis configuration
	RedisHost     string `yaml:"REDIS_HOST"`
	RedisPort     string `yaml:"REDIS_PORT"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("GOOGLE_CLIENT_ID", config.GoogleClientID)
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		if config.Port == "" {
			return "3000"
		}
		return config.Port
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
	case "JWT_SECRET":
		return config.JWTSecret
	case "GOOGLE_CLIENT_ID":
		return config.GoogleClientID
	case "REDIS_HOST":
		if config.RedisHost == "" {
			return "localhost"
		}
		return config.RedisHost
	case "REDIS_PORT":
		if config.RedisPort == "" {
			return "6379"
		}
		return config.RedisPort
	case "REDIS_PASSWORD":
		return config.RedisPassword
	default:
		return ""
	}
}
