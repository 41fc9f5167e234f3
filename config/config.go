package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// AppConfig holds the application-level configuration
type AppConfig struct {
	Port          int    `mapstructure:"port"`
	OriginalPath  string `mapstructure:"original_path"`
	ChangedPath   string `mapstructure:"changed_path"`
	ContextWords  int    `mapstructure:"context_words"`
	LicenseKey    string `mapstructure:"license_key"`
	EngineVersion string `mapstructure:"engine_version"`
	StoragePath   string `mapstructure:"storage_path"`
	CachePath     string `mapstructure:"cache_path"`
	EncryptAtRest bool   `mapstructure:"encrypt_at_rest"`
	VaultPassword string `mapstructure:"vault_password"`
	Debug         bool   `mapstructure:"debug"`
}

var Config *AppConfig

func LoadConfig(path string) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	viper.SetDefault("port", 8080)
	viper.SetDefault("original_path", "./assets/original.pdf")
	viper.SetDefault("changed_path", "./assets/changed.pdf")
	viper.SetDefault("context_words", 100)
	viper.SetDefault("license_key", "")
	viper.SetDefault("engine_version", "local")
	viper.SetDefault("storage_path", "./data/documents")
	viper.SetDefault("cache_path", "./data/compare_cache")
	viper.SetDefault("encrypt_at_rest", false)
	viper.SetDefault("vault_password", "")
	viper.SetDefault("debug", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Could not read config file, using defaults: %v", err)
	}

	var appConfig AppConfig
	if err := viper.Unmarshal(&appConfig); err != nil {
		log.Fatalf("❌ Unable to decode config into struct: %v", err)
	}

	Config = &appConfig

	fmt.Println("✅ Configuration loaded successfully.")
}
