package configfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

// EnvPrefix is the prefix of environment overrides (UNITCONV_PRECISION, ...).
const EnvPrefix = "unitconv"

// LoadConfig loads unitconv.yaml from root, applies it on top of the defaults,
// then applies UNITCONV_* environment overrides. A .env file next to the
// config is loaded first; variables already set in the process win over it.
//
// An empty root skips the file and only applies the environment.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if root != "" {
		fileCfg, err := loadFile(root, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg

		if err := loadDotEnv(root); err != nil {
			return cfg, err
		}
	}

	return applyEnv(cfg)
}

func loadFile(root string, cfg domain.Config) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, cfg, y)
}

func loadDotEnv(root string) error {
	path := filepath.Join(root, ".env")
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &domain.OpError{
			Op:   "configfile.loaddotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func applyEnv(cfg domain.Config) (domain.Config, error) {
	var o envOverrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.loadenv",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return MapEnv(cfg, o)
}
