package settings

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

// Settings configure the process around the search: logging and, for
// minigrepd, the HTTP listener. Search options never come from here.
type Settings struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	HttpPort int    `yaml:"http_port"`
	Root     string `yaml:"root"`
}

func Default() *Settings {
	return &Settings{
		Env:      EnvLocal,
		LogLevel: "info",
		LogFile:  "logs/minigrepd.log",
		HttpPort: 8080,
		Root:     ".",
	}
}

// LoadConfig reads YAML settings from path on top of the defaults.
func LoadConfig(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load uses path, falling back to CONFIG_PATH, and to the defaults when neither is set.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return Default(), nil
	}
	return LoadConfig(path)
}

// FromEnv builds the CLI settings. The CLI is quiet by default: only
// warnings and errors reach stderr unless MINIGREP_LOG_LEVEL says otherwise.
func FromEnv(lookup func(string) (string, bool)) *Settings {
	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.LogFile = "logs/minigrep.log"
	if v, ok := lookup("MINIGREP_ENV"); ok && v != "" {
		cfg.Env = strings.ToLower(v)
	}
	if v, ok := lookup("MINIGREP_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("MINIGREP_LOG_FILE"); ok && v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func (s *Settings) Validate() error {
	switch s.Env {
	case EnvLocal, EnvProd:
	default:
		return fmt.Errorf("unknown env %q: want %q or %q", s.Env, EnvLocal, EnvProd)
	}
	if s.HttpPort <= 0 || s.HttpPort > 65535 {
		return fmt.Errorf("http_port out of range: %d", s.HttpPort)
	}
	if s.Env == EnvProd && s.LogFile == "" {
		return fmt.Errorf("log_file is required in %s", EnvProd)
	}
	return nil
}
