package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host            string `yaml:"host" env:"SERVER_HOST"`
		Port            int    `yaml:"port" env:"SERVER_PORT"`
		Addr            string `yaml:"-"`                                       // 不从配置文件读取，而是在加载后计算
		PublicURL       string `yaml:"public_url" env:"SERVER_PUBLIC_URL"`      // 对外访问地址，用于swagger展示
		ReadTimeoutSec  int    `yaml:"read_timeout_sec" env:"SERVER_READ_TIMEOUT_SEC"`
		WriteTimeoutSec int    `yaml:"write_timeout_sec" env:"SERVER_WRITE_TIMEOUT_SEC"`
		IdleTimeoutSec  int    `yaml:"idle_timeout_sec" env:"SERVER_IDLE_TIMEOUT_SEC"`
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level" env:"LOG_LEVEL"`
		Format   string `yaml:"format" env:"LOG_FORMAT"`
		Output   string `yaml:"output" env:"LOG_OUTPUT"`
		FilePath string `yaml:"file_path" env:"LOG_FILE_PATH"`
	} `yaml:"log"`

	// DB 线索库（可选）。DSN和Host都为空时不启用，提交的评估只保存在会话中
	DB struct {
		Host            string `yaml:"host" env:"DATABASE_HOST"`
		Port            int    `yaml:"port" env:"DATABASE_PORT"`
		Username        string `yaml:"username" env:"DATABASE_USERNAME"`
		Password        string `yaml:"password" env:"DATABASE_PASSWORD"`
		Database        string `yaml:"database" env:"DATABASE_NAME"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-" env:"DB_DSN"`
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`

	Session struct {
		Backend    string `yaml:"backend" env:"SESSION_BACKEND"` // memory / redis
		TTLMin     int    `yaml:"ttl_min" env:"SESSION_TTL_MIN"` // 会话有效期（分钟），写入时顺延
		CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		Secure     bool   `yaml:"secure" env:"SESSION_SECURE"` // 仅HTTPS下发cookie
	} `yaml:"session"`

	Redis struct {
		Address   string `yaml:"address" env:"REDIS_ADDRESS"`
		Password  string `yaml:"password" env:"REDIS_PASSWORD"`
		DB        int    `yaml:"db" env:"REDIS_DB"`
		KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX"`
	} `yaml:"redis"`

	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec" env:"SCHEDULER_CHECK_INTERVAL_SEC"` // 调度器检查间隔（秒）
		SweepIntervalSec int `yaml:"sweep_interval_sec"`                                    // 过期会话清理间隔（秒）
		DigestHour       int `yaml:"digest_hour"`                                           // 每日线索统计的小时（0-23）
		DigestMinute     int `yaml:"digest_minute"`                                         // 每日线索统计的分钟（0-59）
	} `yaml:"scheduler"`
}

// Load 依次读取 .env、config.yaml 和环境变量，后者覆盖前者
func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	return LoadFile(getenv("CONFIG_FILE", "config.yaml"))
}

// LoadFile 从指定yaml文件加载配置，文件不存在时只使用环境变量和默认值
func LoadFile(path string) *Config {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading %s: %v, falling back to environment variables", path, err)
			cfg = Config{}
		} else {
			log.Printf("Loading configuration from %s", path)
		}
	} else {
		log.Println("配置文件不存在，从环境变量加载配置")
	}

	// 环境变量覆盖文件中的值（敏感信息一般只放在环境变量中）
	if err := env.Parse(&cfg); err != nil {
		log.Printf("解析环境变量失败: %v", err)
	}

	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	// 计算 Server.Addr 字段
	cfg.Server.Addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if cfg.Server.ReadTimeoutSec <= 0 {
		cfg.Server.ReadTimeoutSec = 15
	}
	if cfg.Server.WriteTimeoutSec <= 0 {
		cfg.Server.WriteTimeoutSec = 30
	}
	if cfg.Server.IdleTimeoutSec <= 0 {
		cfg.Server.IdleTimeoutSec = 60
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	cfg.Session.Backend = strings.ToLower(strings.TrimSpace(cfg.Session.Backend))
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "memory"
	}
	if cfg.Session.TTLMin <= 0 {
		cfg.Session.TTLMin = 120
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "lawwork_session"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "lawwork:session:"
	}

	if cfg.Scheduler.CheckIntervalSec <= 0 {
		cfg.Scheduler.CheckIntervalSec = 60
	}
	if cfg.Scheduler.SweepIntervalSec <= 0 {
		cfg.Scheduler.SweepIntervalSec = 300
	}

	// 计算 DB.DSN 字段
	if cfg.DB.DSN == "" && cfg.DB.Host != "" {
		// 设置默认值
		if cfg.DB.Charset == "" {
			cfg.DB.Charset = "utf8mb4"
		}
		if cfg.DB.Port <= 0 {
			cfg.DB.Port = 3306
		}

		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}

		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}
}

// LeadStoreEnabled 是否配置了线索库
func (c *Config) LeadStoreEnabled() bool {
	return c.DB.DSN != ""
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
