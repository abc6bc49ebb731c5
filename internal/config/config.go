package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr" env:"TASKLEDGER_ADDR"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir" json:"data_dir" env:"TASKLEDGER_DATA_DIR"`
	// LogPath overrides the default location of the event log. Empty means
	// "tasks.log inside the data dir".
	LogPath string `yaml:"log_path" json:"log_path" env:"TASKLEDGER_LOG_PATH"`
}

type UIConfig struct {
	RefreshSeconds          int `yaml:"refresh_seconds" json:"refresh_seconds"`
	NotificationLeadMinutes int `yaml:"notification_lead_minutes" json:"notification_lead_minutes"`
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = ":8080"
	}
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		c.Storage.DataDir = "data"
	}
	if c.UI.RefreshSeconds <= 0 {
		c.UI.RefreshSeconds = 30
	}
	if c.UI.NotificationLeadMinutes < 0 {
		c.UI.NotificationLeadMinutes = 0
	}
}

// ResolvedLogPath is the event log location after defaults: an explicit
// log_path wins, otherwise the log sits next to the rest of the app data.
func (c *Config) ResolvedLogPath() string {
	if p := strings.TrimSpace(c.Storage.LogPath); p != "" {
		return p
	}
	return filepath.Join(c.Storage.DataDir, "tasks.log")
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
