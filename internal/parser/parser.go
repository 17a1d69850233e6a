// Package parser reads bracket files into validated brackets.
package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
)

// Parser decodes a bracket from r. Seeds come from each team's position.
type Parser interface {
	Parse(r io.Reader) (*bracket.Bracket, error)
}

// FormatError reports input that does not have the expected shape.
type FormatError struct {
	Format   string
	Reason   string
	Expected int
	Actual   int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parser: %s: %s: expected %d, got %d", e.Format, e.Reason, e.Expected, e.Actual)
}

// ForPath picks the parser for a file by extension: YAML for .yaml/.yml, text otherwise.
func ForPath(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLParser{}
	default:
		return TextParser{}
	}
}

// Parse reads the bracket file at path and validates its structure.
func Parse(path string) (*bracket.Bracket, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open bracket: %w", err)
	}
	defer f.Close()

	b, err := ForPath(path).Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func seeded(names []string) []bracket.Team {
	teams := make([]bracket.Team, 0, len(names))
	for i, name := range names {
		teams = append(teams, bracket.Team{Name: strings.TrimSpace(name), Seed: i + 1})
	}
	return teams
}
