package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
)

type yamlBracket struct {
	Divisions []yamlDivision `yaml:"divisions"`
}

type yamlDivision struct {
	Name  string   `yaml:"name"`
	Teams []string `yaml:"teams"`
}

// YAMLParser reads `divisions: [{name, teams}]` with teams listed in seed order.
type YAMLParser struct{}

func (YAMLParser) Parse(r io.Reader) (*bracket.Bracket, error) {
	var doc yamlBracket
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FormatError{Format: "yaml", Reason: "division count", Expected: bracket.DivisionCount, Actual: 0}
		}
		return nil, fmt.Errorf("parser: decode yaml: %w", err)
	}

	divisions := make([]*bracket.Division, 0, len(doc.Divisions))
	for _, d := range doc.Divisions {
		divisions = append(divisions, &bracket.Division{Name: strings.TrimSpace(d.Name), Teams: seeded(d.Teams)})
	}
	return newBracket(divisions)
}
