package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// HTTPサーバー設定
	Port        int
	MaxUploadMB int

	// ファイルパス
	UploadFolder string
	InputCSV     string
	OutputCSV    string
}

// LoadConfig は環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む
	_ = godotenv.Load()

	config := &Config{
		Port:         getEnvAsIntWithDefault("PORT", 5001),
		MaxUploadMB:  getEnvAsIntWithDefault("MAX_UPLOAD_MB", 16),
		UploadFolder: getEnvWithDefault("UPLOAD_FOLDER", "uploads"),
		InputCSV:     getEnvWithDefault("INPUT_CSV", "epic_plan.csv"),
		OutputCSV:    getEnvWithDefault("OUTPUT_CSV", "jira_import_ready.csv"),
	}

	return config, nil
}

// ProcessedFolder は変換結果を保存するフォルダのパスを返します
func (c *Config) ProcessedFolder() string {
	return filepath.Join(c.UploadFolder, "processed")
}

// MaxUploadBytes はアップロードの最大サイズをバイト単位で返します
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// デフォルト値付きで環境変数を取得
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// デフォルト値付きで環境変数を整数として取得
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
