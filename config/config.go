package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/markshop/markshop/pkg/common"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(c.GetDataDir(), 0755)
	_ = os.MkdirAll(c.GetLogDir(), 0755)
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "MarkShop",
			Location: "Asia/Bangkok",
			Workdir:  "/var/markshop",
			Debug:    true,
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 5000,
			// the legacy storefront session key; override in production
			Secret: "mark-shop-secret-key-2026",
		},
		Database: DBConfig{
			Type: "sqlite",
			Host: "127.0.0.1",
			Port: 5432,
			Name: "shop",
			User: "postgres",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/markshop/logs/markshop.log",
		},
	}
}

func setEnvValue(name string, f func(v string)) {
	if v := os.Getenv(name); v != "" {
		f(v)
	}
}

// LoadConfig reads the yaml configuration file and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig()
	if cfile != "" && common.FileExists(cfile) {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "parse config %s error: %v\n", cfile, err)
			}
		}
	}

	setEnvValue("MKSHOP_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("MKSHOP_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("MKSHOP_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("MKSHOP_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("MKSHOP_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("MKSHOP_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("MKSHOP_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("MKSHOP_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("MKSHOP_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("MKSHOP_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("MKSHOP_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("MKSHOP_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	if cfg.Database.Name == "" {
		cfg.Database.Name = "shop"
	}
	if cfg.Logger.Mode == "" {
		cfg.Logger.Mode = "development"
	}
	return cfg
}
