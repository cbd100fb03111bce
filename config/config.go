package config

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host    string `envconfig:"HOST"`
	Port    string `envconfig:"PORT"`
	Prefix  string `envconfig:"PREFIX"`
	Mode    Mode   `envconfig:"MODE"`
	Storage Storage
	Mysql   Mysql
	JWT     JWT
	Log     Log `mapstructure:"Log"`
}

type Storage struct {
	Home    string `envconfig:"STORAGE_HOME" mapstructure:"home"`         // 上传文件保存目录
	BaseURL string `envconfig:"STORAGE_BASE_URL" mapstructure:"base_url"` // 文件对外访问前缀
}

type Mysql struct {
	Host     string `envconfig:"MYSQL_HOST" mapstructure:"host"`
	Port     string `envconfig:"MYSQL_PORT" mapstructure:"port"`
	Username string `envconfig:"MYSQL_USERNAME" mapstructure:"username"`
	Password string `envconfig:"MYSQL_PASSWORD" mapstructure:"password"`
	DBName   string `envconfig:"MYSQL_DB_NAME" mapstructure:"db_name"`
}

type JWT struct {
	AccessSecret string `envconfig:"JWT_ACCESS_SECRET" mapstructure:"access_secret"`
	AccessExpire int64  `envconfig:"JWT_ACCESS_EXPIRE" mapstructure:"access_expire"` // 秒
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置，进程启动时调用一次
func Init() {
	Get()
}

// Get 获取全局配置实例，首次调用时完成加载
// 优先读取仓库根目录的 config.yaml，环境变量可覆盖其中的字段
func Get() *Config {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := searchConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}

		cfg := &Config{}
		// 配置文件缺失时回退到纯环境变量
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic(err)
			}
		}
		if err := envconfig.Process("", cfg); err != nil {
			panic(err)
		}

		applyDefaults(cfg)
		instance = cfg
	})
	return instance
}

func applyDefaults(cfg *Config) {
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "api"
	}
	if cfg.Mode != ModeRelease {
		cfg.Mode = ModeDebug
	}
	if cfg.Storage.Home == "" {
		cfg.Storage.Home = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.JWT.AccessSecret == "" {
		cfg.JWT.AccessSecret = "thesis-proposal-dev-secret"
	}
	if cfg.JWT.AccessExpire <= 0 {
		cfg.JWT.AccessExpire = 3600
	}
	cfg.Storage.BaseURL = strings.TrimSuffix(cfg.Storage.BaseURL, "/")
}
