package configfile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/bernardopiane/UnitConverter/internal/domain"
	"github.com/bernardopiane/UnitConverter/internal/ports"
)

// FileName is the configuration file searched for by Finder.
const FileName = "unitconv.yaml"

// Finder locates the configuration root by searching for unitconv.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "unitconv.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.ConfigFile
	if name == "" {
		name = FileName
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, name)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfile.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
