package appconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultIP string `yaml:"defaultIP,omitempty" json:"defaultIP,omitempty"`
	Format    string `yaml:"format,omitempty" json:"format,omitempty"`
}

func (c Config) Normalize() Config {
	out := Config{
		DefaultIP: strings.TrimSpace(c.DefaultIP),
		Format:    strings.ToLower(strings.TrimSpace(c.Format)),
	}
	if !isValidFormat(out.Format) {
		out.Format = ""
	}
	return out
}

func isValidFormat(format string) bool {
	switch format {
	case "", "plain", "json", "tsv":
		return true
	default:
		return false
	}
}

type Store interface {
	Path() string
	Load() (Config, error)
	Save(cfg Config) error
}

type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("path is required")
	}
	return &FileStore{path: path}, nil
}

func NewDefaultStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, "sonosctl", "config.yaml")}, nil
}

func (s *FileStore) Path() string { return s.path }

type fileFormat struct {
	Version int    `yaml:"version"`
	Config  Config `yaml:"config"`
}

func (s *FileStore) Load() (Config, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var ff fileFormat
	if err := yaml.Unmarshal(raw, &ff); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return ff.Config.Normalize(), nil
}

func (s *FileStore) Save(cfg Config) error {
	cfg = cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	b, err := yaml.Marshal(fileFormat{Version: 1, Config: cfg})
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
