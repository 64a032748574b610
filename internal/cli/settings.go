package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bernardopiane/UnitConverter/internal/domain"
	"github.com/bernardopiane/UnitConverter/internal/infra/configfile"
	"github.com/bernardopiane/UnitConverter/internal/infra/logger"
	"github.com/bernardopiane/UnitConverter/internal/ports"
	"github.com/bernardopiane/UnitConverter/internal/usecase"
)

type appCtx struct {
	root string // empty when running on built-in defaults
	cfg  domain.Config

	engine  *domain.Engine
	convert *usecase.Convert
}

func loadApp(root string, log *slog.Logger) (*appCtx, error) {
	cfg, err := configfile.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	engine := domain.NewEngine(cfg.EngineOptions()...)
	uc := usecase.NewConvert(engine,
		usecase.WithInputPolicy(cfg.Input.OnInvalid),
		usecase.WithLogger(log),
	)

	return &appCtx{
		root:    root,
		cfg:     cfg,
		engine:  engine,
		convert: uc,
	}, nil
}

// resolveConfigRoot returns the directory holding unitconv.yaml. With no flag it
// searches upward from the working directory and returns "" when nothing is found.
func resolveConfigRoot(configFlag string) (string, error) {
	c := strings.TrimSpace(configFlag)
	if c != "" {
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", fmt.Errorf("invalid config path: %w", err)
		}
		if filepath.Base(abs) == configfile.FileName {
			abs = filepath.Dir(abs)
		}
		return abs, nil
	}

	var locator ports.ConfigLocator = configfile.NewFinder()
	root, err := locator.FindRoot(workingDir())
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}

// setupDebugLogger enables the file logger for one-shot commands when --debug is set.
func setupDebugLogger(g *globalFlags, root string) func() {
	if g == nil || !g.debug {
		return func() {}
	}
	if root == "" {
		root = workingDir()
	}
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: true})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	abs, err := filepath.Abs(wd)
	if err != nil {
		return wd
	}
	return abs
}
