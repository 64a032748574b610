package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindInvalidInput:
			return "Not a number"

		case domain.KindInvalidArgument:
			switch {
			case errors.Is(err, domain.ErrNegativeWeight):
				return "Weight cannot be negative"
			case errors.Is(err, domain.ErrOverflow):
				return "Result is out of range"
			case errors.Is(err, domain.ErrNotFinite):
				return "Value must be a finite number"
			}
			return "Invalid value"

		case domain.KindUnsupportedPair:
			return "Unsupported conversion"

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "configfile") {
				return "Config not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
