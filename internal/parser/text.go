package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
)

const (
	utf8BOM       = "\ufeff"
	linesPerBlock = 1 + bracket.TeamsPerDivision
	expectedLines = bracket.DivisionCount * linesPerBlock
)

// TextParser reads the plain format: four blocks of a division title followed
// by sixteen team names in seed order. Blank lines are ignored.
type TextParser struct{}

func (TextParser) Parse(r io.Reader) (*bracket.Bracket, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) != expectedLines {
		return nil, &FormatError{Format: "text", Reason: "non-blank line count", Expected: expectedLines, Actual: len(lines)}
	}

	title := cases.Title(language.English)
	divisions := make([]*bracket.Division, 0, bracket.DivisionCount)
	for i := 0; i < bracket.DivisionCount; i++ {
		block := lines[i*linesPerBlock : (i+1)*linesPerBlock]
		divisions = append(divisions, &bracket.Division{
			Name:  title.String(block[0]),
			Teams: seeded(block[1:]),
		})
	}
	return newBracket(divisions)
}

func nonBlankLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: read bracket: %w", err)
	}
	return lines, nil
}

// newBracket rejects repeated titles, which a map would otherwise silently collapse.
func newBracket(divisions []*bracket.Division) (*bracket.Bracket, error) {
	seen := make(map[string]bool, len(divisions))
	for _, d := range divisions {
		if seen[d.Name] {
			return nil, &bracket.StructuralError{Invariant: "unique division names", Expected: "distinct", Actual: d.Name}
		}
		seen[d.Name] = true
	}
	return bracket.New(divisions...), nil
}
