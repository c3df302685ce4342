package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig holds system-level settings.
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig holds the admin API listener settings.
type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	JwtSecret string `yaml:"secret" json:"secret"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System SysConfig `yaml:"system" json:"system"`
	Web    WebConfig `yaml:"web" json:"web"`
	Logger LogConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "serviceapp",
		Location: "Europe/Stockholm",
		Workdir:  "/var/serviceapp",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      1816,
		JwtSecret: "9b6de5cc-serviceapp-0cc258131c17",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/serviceapp/serviceapp.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML config file and applies environment overrides.
// A missing file yields the default configuration.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("SERVICEAPP_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("SERVICEAPP_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("SERVICEAPP_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })
	setEnvValue("SERVICEAPP_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("SERVICEAPP_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("SERVICEAPP_WEB_SECRET", func(v string) { cfg.Web.JwtSecret = v })
	setEnvValue("SERVICEAPP_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("SERVICEAPP_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })
	setEnvValue("SERVICEAPP_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, "serviceapp.log")
	}
	return cfg
}
