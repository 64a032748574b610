package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".unitconv", "logs", "unitconv.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("convert.ok", "domain", "weight")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected path reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	for _, w := range []string{`"msg":"logger.initialized"`, `"msg":"convert.ok"`, `"domain":"weight"`, `"source"`} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected log to contain %s, got:\n%s", w, s)
		}
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden")
	_ = cleanup()

	b, _ := os.ReadFile(filepath.Join(root, ".unitconv", "logs", "unitconv.log"))
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("debug line written at info level")
	}
}

func TestSetup_FailureKeepsDiscardLogger(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, ".unitconv")
	if err := os.WriteFile(blocker, []byte("file, not dir"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	if _, err := Setup(Config{Root: root}); err == nil {
		t.Fatalf("expected error when logs dir cannot be created")
	}
	if L() == nil || Path() != "" {
		t.Fatalf("expected discard logger after failure")
	}
}
