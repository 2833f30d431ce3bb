package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	// DataDir 是 LeadVault 数据目录
	// 用于存储数据库、备份、上传文件等
	// 可以通过环境变量 LEADVAULT_DATA_DIR 配置
	// 默认：~/.local/share/leadvault
	DataDir string

	// DBPath 是 SQLite 数据库文件路径
	// 可以通过环境变量 LEADVAULT_DB_PATH 配置
	// 默认：<DataDir>/leadvault.db
	DBPath string

	// BackupDir 是备份快照根目录
	// 目录结构为 <BackupDir>/<class>/<name>/
	// 可以通过环境变量 LEADVAULT_BACKUP_DIR 配置
	// 默认：<DataDir>/backups
	BackupDir string

	// UploadDir 是上传文件目录，备份时整棵目录树会被复制进快照
	// 可以通过环境变量 LEADVAULT_UPLOAD_DIR 配置
	// 默认：<DataDir>/uploads
	UploadDir string

	// BackupSettingsPath 是可选的备份设置 YAML 文件
	// 用于在数据库设置之前提供初始值；为空或文件不存在时忽略
	// 可以通过环境变量 LEADVAULT_BACKUP_SETTINGS 配置
	BackupSettingsPath string

	Address string
}

func New() (*Config, error) {
	dataDir := getDataDir()
	cfg := &Config{
		DataDir:            dataDir,
		DBPath:             getPath("LEADVAULT_DB_PATH", dataDir, "leadvault.db"),
		BackupDir:          getPath("LEADVAULT_BACKUP_DIR", dataDir, "backups"),
		UploadDir:          getPath("LEADVAULT_UPLOAD_DIR", dataDir, "uploads"),
		BackupSettingsPath: os.Getenv("LEADVAULT_BACKUP_SETTINGS"),
		Address:            getAddress(),
	}
	return cfg, nil
}

// getDataDir 获取数据目录，优先使用环境变量
func getDataDir() string {
	// 1. 优先使用环境变量 LEADVAULT_DATA_DIR
	if dir := os.Getenv("LEADVAULT_DATA_DIR"); dir != "" {
		return dir
	}

	// 2. 使用用户主目录下的 .local/share/leadvault
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "leadvault")
	}

	// 3. 如果无法获取主目录，使用当前目录下的 data
	return filepath.Join(".", "data")
}

// getPath 获取路径配置，优先使用环境变量，否则使用数据目录下的默认子路径
func getPath(env, dataDir, sub string) string {
	if p := os.Getenv(env); p != "" {
		return p
	}
	return filepath.Join(dataDir, sub)
}

// getAddress 获取绑定地址，优先使用环境变量 LEADVAULT_ADDRESS
func getAddress() string {
	if addr := os.Getenv("LEADVAULT_ADDRESS"); addr != "" {
		return addr
	}

	return "0.0.0.0:7878"
}
