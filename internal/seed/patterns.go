package seed

import (
	"sort"

	"github.com/pkg/errors"

	"boardlife/internal/core"
)

// ErrUnknownPattern is returned by Pattern for unregistered names.
var ErrUnknownPattern = errors.New("unknown pattern")

var patterns = map[string][]string{}

// Register adds a named text grid to the pattern registry.
func Register(name string, rows []string) {
	if name == "" || rows == nil {
		return
	}
	patterns[name] = rows
}

// Pattern returns the live cells of a registered pattern.
func Pattern(name string) (core.CellSet, error) {
	rows, ok := patterns[name]
	if !ok {
		return core.CellSet{}, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return LoadRows(rows), nil
}

// Patterns lists the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("block", []string{
		"xx",
		"xx",
	})
	Register("blinker", []string{
		".x.",
		".x.",
		".x.",
	})
	Register("toad", []string{
		".xxx",
		"xxx.",
	})
	Register("beacon", []string{
		"xx..",
		"xx..",
		"..xx",
		"..xx",
	})
	Register("glider", []string{
		".x.",
		"..x",
		"xxx",
	})
}
