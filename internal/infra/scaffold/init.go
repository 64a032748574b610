package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bernardopiane/UnitConverter/internal/domain"
	"github.com/bernardopiane/UnitConverter/internal/ports"
)

// Initializer writes the default unitconv.yaml and the log directory under a root.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	logs := filepath.Join(root, ".unitconv", "logs")
	if err := os.MkdirAll(logs, 0o755); err != nil {
		return opErr("scaffold.mkdir", logs, err)
	}

	if err := ensureGitignore(root); err != nil {
		return opErr("scaffold.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return opErr("scaffold.mkdir", filepath.Dir(dst), err)
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return opErr("scaffold.read_template", p, err)
		}

		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return opErr("scaffold.write", dst, err)
		}
		return nil
	})
}

func ensureGitignore(root string) error {
	const header = "# unitconv"
	entries := []string{
		".unitconv/",
		".env",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func opErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
