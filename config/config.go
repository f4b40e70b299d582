package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appname       string `yaml:"appname" json:"appname"`
	Location      string `yaml:"location" json:"location"`
	Workdir       string `yaml:"workdir" json:"workdir"`
	AdminUsername string `yaml:"admin_username" json:"admin_username"`
	AdminPassword string `yaml:"admin_password" json:"admin_password"`
	Debug         bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Secret    string `yaml:"secret" json:"secret"`
	JwtExpiry int    `yaml:"jwt_expiry" json:"jwt_expiry"` // seconds
}

type DBConfig struct {
	Type string `yaml:"type" json:"type"` // mongodb or memory
	URI  string `yaml:"uri" json:"uri"`
	Name string `yaml:"name" json:"name"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Appname:       "Cargoshop",
		Location:      "America/Sao_Paulo",
		Workdir:       "/var/cargoshop",
		AdminUsername: "admin",
		AdminPassword: "cargoshop",
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      5000,
		Secret:    "9SsoGPUA8w3kzAfKQ",
		JwtExpiry: 3600,
	},
	Database: DBConfig{
		Type: "mongodb",
		URI:  "mongodb://127.0.0.1:27017",
		Name: "cargoshop",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/cargoshop/cargoshop.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

// LoadConfig reads the YAML config file if it exists, then applies
// environment overrides. A .env file in the working directory is loaded
// first so local deployments can keep secrets out of the config file.
func LoadConfig(cfile string) *AppConfig {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	setEnvValue("CARGOSHOP_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("CARGOSHOP_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("CARGOSHOP_ADMIN_USERNAME", func(v string) { cfg.System.AdminUsername = v })
	setEnvValue("CARGOSHOP_ADMIN_PASSWORD", func(v string) { cfg.System.AdminPassword = v })
	setEnvValue("CARGOSHOP_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("CARGOSHOP_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("CARGOSHOP_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("CARGOSHOP_WEB_JWT_EXPIRY", func(v string) { cfg.Web.JwtExpiry = cast.ToInt(v) })
	setEnvValue("CARGOSHOP_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("CARGOSHOP_DB_URI", func(v string) { cfg.Database.URI = v })
	setEnvValue("CARGOSHOP_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("CARGOSHOP_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	if cfg.Web.JwtExpiry <= 0 {
		cfg.Web.JwtExpiry = 3600
	}
	return &cfg
}
