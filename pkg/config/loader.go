package config

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvInfo 集合應用設定 from .env
type EnvInfo struct {
	// app names
	ChatClient   string
	AdminConsole string

	// app yaml path
	ChatClientYAMLPath   string
	AdminConsoleYAMLPath string

	// app log path
	ChatClientLogPath   string
	AdminConsoleLogPath string

	// credentials for the terminal front-ends
	Email    string
	Password string
}

// EnvConfig 集合應用設定
var (
	EnvConfig = initEnv()
	envConfig EnvInfo
	once      sync.Once
	env       string
)

func initEnv() EnvInfo {
	once.Do(func() {
		path, err := GetPath(".env", 5)
		if err != nil {
			log.Printf("Warning: Could not get .env path: %v", err)
		}

		if err := godotenv.Load(path); err != nil {
			log.Printf("Warning: Could not load .env file: %v", err)
		}

		env = os.Getenv("ENV")

		envConfig = EnvInfo{
			ChatClient:   getOr("CHAT_CLIENT", "chat_client"),
			AdminConsole: getOr("ADMIN_CONSOLE", "admin_console"),

			ChatClientYAMLPath:   getOr("CHAT_CLIENT_YAML", "./configs"),
			AdminConsoleYAMLPath: getOr("ADMIN_CONSOLE_YAML", "./configs"),

			ChatClientLogPath:   getOr("CHAT_CLIENT_LOG", "./logs"),
			AdminConsoleLogPath: getOr("ADMIN_CONSOLE_LOG", "./logs"),

			Email:    os.Getenv("GIGCONNECT_EMAIL"),
			Password: os.Getenv("GIGCONNECT_PASSWORD"),
		}
	})

	return envConfig
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// IsProduction check run env
func IsProduction() bool {
	return env == "production"
}

// IsLocal check run env
func IsLocal() bool {
	return env == "local"
}

// LoadConfig 加載配置
func LoadConfig[T any](appName string, configPath string) T {
	v := viper.New()
	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	// 自動讀取環境變數
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Error loading config file: %v", err)
	}

	rawConfig, err := os.ReadFile(v.ConfigFileUsed())
	if err != nil {
		log.Fatalf("Error reading raw config file: %v", err)
	}

	// 替換 ${} 占位符為環境變數的值
	expandedConfig := os.ExpandEnv(string(rawConfig))

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expandedConfig))); err != nil {
		log.Fatalf("Error reading expanded config: %v", err)
	}

	var cfg T
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Error unmarshaling config: %v", err)
	}
	return cfg
}

// GetPath use fileName loop maxCount find file path
func GetPath(fileName string, maxCount int) (string, error) {
	path := "./" + fileName

	for i := 0; i < maxCount; i++ {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		path = "../" + path
	}
	return "", errors.New(fileName + "can't find path ")
}
