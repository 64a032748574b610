package tui

import "github.com/bernardopiane/UnitConverter/internal/domain"

// convertedMsg carries the outcome of one conversion. seq identifies the
// request so stale results can be dropped.
type convertedMsg struct {
	seq  int
	conv domain.Conversion
	err  error
}
