package configfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

var envKeys = []string{
	"UNITCONV_ON_INVALID",
	"UNITCONV_PRECISION",
	"UNITCONV_TEMPLATE",
	"UNITCONV_DEFAULT_DOMAIN",
}

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeConfig(t, root, "unitconv:\n  input:\n    on_invalid: zero\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Input.OnInvalid != domain.InputZero {
		t.Fatalf("expected on_invalid=zero, got=%s", cfg.Input.OnInvalid)
	}
	if cfg.Display.Precision != 4 {
		t.Fatalf("expected default precision=4, got=%d", cfg.Display.Precision)
	}
	if cfg.Display.Template != domain.DefaultResultTemplate {
		t.Fatalf("expected default template, got=%q", cfg.Display.Template)
	}
	if cfg.Defaults.Domain != domain.Temperature {
		t.Fatalf("expected default domain=temperature, got=%s", cfg.Defaults.Domain)
	}
	if cfg.Rounding[domain.Weight] != domain.RoundTo(2) {
		t.Fatalf("expected weight rounding to 2 places, got=%+v", cfg.Rounding[domain.Weight])
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeConfig(t, root, `unitconv:
  display:
    precision: 2
    template: "{{result}} {{to}}"
  defaults:
    domain: distance
  rounding:
    weight:
      enabled: false
    distance:
      places: 3
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Display.Precision != 2 || cfg.Display.Template != "{{result}} {{to}}" {
		t.Fatalf("unexpected display config %+v", cfg.Display)
	}
	if cfg.Defaults.Domain != domain.Distance {
		t.Fatalf("expected distance, got %s", cfg.Defaults.Domain)
	}
	if cfg.Rounding[domain.Weight].Enabled {
		t.Fatalf("expected weight rounding disabled")
	}
	if cfg.Rounding[domain.Distance] != domain.RoundTo(3) {
		t.Fatalf("expected distance rounding to 3 places, got %+v", cfg.Rounding[domain.Distance])
	}
	if cfg.Rounding[domain.Temperature].Enabled {
		t.Fatalf("expected temperature rounding untouched")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	path := writeConfig(t, root, "unitconv:\n  display: [\n")

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	clearEnv(t)
	cases := []struct {
		name    string
		content string
		field   string
	}{
		{"policy", "unitconv:\n  input:\n    on_invalid: ignore\n", "unitconv.input.on_invalid"},
		{"precision", "unitconv:\n  display:\n    precision: 42\n", "unitconv.display.precision"},
		{"domain", "unitconv:\n  defaults:\n    domain: volume\n", "unitconv.defaults.domain"},
		{"rounding key", "unitconv:\n  rounding:\n    volume:\n      places: 1\n", "unitconv.rounding[volume]"},
		{"places", "unitconv:\n  rounding:\n    weight:\n      places: -1\n", "places"},
		{"template", "unitconv:\n  display:\n    template: \"{{nope}}\"\n", "unitconv.display.template"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, c.content)

			_, err := LoadConfig(root)
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected field %q in error, got %v", c.field, err)
			}
		})
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeConfig(t, root, "unitconv:\n  display:\n    precision: 2\n")

	t.Setenv("UNITCONV_PRECISION", "6")
	t.Setenv("UNITCONV_ON_INVALID", "zero")
	t.Setenv("UNITCONV_DEFAULT_DOMAIN", "weight")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Display.Precision != 6 {
		t.Fatalf("expected env precision=6, got %d", cfg.Display.Precision)
	}
	if cfg.Input.OnInvalid != domain.InputZero {
		t.Fatalf("expected env policy zero, got %s", cfg.Input.OnInvalid)
	}
	if cfg.Defaults.Domain != domain.Weight {
		t.Fatalf("expected env domain weight, got %s", cfg.Defaults.Domain)
	}
}

func TestLoadConfig_EnvWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNITCONV_TEMPLATE", "{{result}}")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Display.Template != "{{result}}" {
		t.Fatalf("expected env template, got %q", cfg.Display.Template)
	}
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNITCONV_ON_INVALID", "maybe")

	_, err := LoadConfig("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}

	t.Setenv("UNITCONV_ON_INVALID", "")
	t.Setenv("UNITCONV_PRECISION", "many")
	_, err = LoadConfig("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for unparsable precision, got %v", err)
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	writeConfig(t, root, "unitconv: {}\n")
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("UNITCONV_PRECISION=1\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Display.Precision != 1 {
		t.Fatalf("expected .env precision=1, got %d", cfg.Display.Precision)
	}
}

func TestMapConfig_RoundingPlacesBounds(t *testing.T) {
	cases := []struct {
		name   string
		places int32
		rule   string
	}{
		{"negative", -1, "must be >= 0"},
		{"too large", 13, "must be <= 12"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			places := c.places
			var y yamlConfig
			y.UnitConv.Rounding = map[string]yamlRounding{"weight": {Places: &places}}

			_, err := MapConfig("unitconv.yaml", domain.DefaultConfig(), y)
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), "places") || !strings.Contains(err.Error(), c.rule) {
				t.Fatalf("expected places %q in error, got %v", c.rule, err)
			}
		})
	}
}

func TestValidateRounding_ReportsEntryPath(t *testing.T) {
	places := int32(-1)
	err := validateRounding("unitconv.yaml", "distance", yamlRounding{Places: &places})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unitconv.rounding.distance.places") {
		t.Fatalf("expected entry path in error, got %v", err)
	}

	ok := int32(3)
	if err := validateRounding("unitconv.yaml", "distance", yamlRounding{Places: &ok}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
