package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
	"github.com/preston-bernstein/mascot-madness/internal/testutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTextParserReadsFourBlocks(t *testing.T) {
	b, err := TextParser{}.Parse(strings.NewReader(testutil.SampleBracketText()))
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	assert.Equal(t, testutil.SampleBracket(), b)
}

func TestTextParserTitleCasesAndStripsBOM(t *testing.T) {
	text := "\ufeff" + strings.Replace(testutil.SampleBracketText(), "MIDWEST", "midWEST", 1)
	text = strings.Replace(text, "West 3\n", "   West 3   \n\n\n", 1)

	b, err := TextParser{}.Parse(strings.NewReader(text))
	require.NoError(t, err)

	assert.Contains(t, b.Divisions, bracket.Midwest)
	assert.Contains(t, b.Divisions, bracket.West)
	assert.Equal(t, bracket.Team{Name: "West 3", Seed: 3}, b.Divisions[bracket.West].Teams[2])
}

func TestTextParserRejectsWrongLineCount(t *testing.T) {
	text := strings.Replace(testutil.SampleBracketText(), "East 16\n", "", 1)

	_, err := TextParser{}.Parse(strings.NewReader(text))
	var fErr *FormatError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, 68, fErr.Expected)
	assert.Equal(t, 67, fErr.Actual)
	assert.Equal(t, "parser: text: non-blank line count: expected 68, got 67", err.Error())
}

func TestTextParserRejectsRepeatedTitle(t *testing.T) {
	text := strings.Replace(testutil.SampleBracketText(), "EAST", "WEST", 1)

	_, err := TextParser{}.Parse(strings.NewReader(text))
	_, ok := bracket.AsStructuralError(err)
	assert.True(t, ok, "expected structural error, got %v", err)
}

func TestYAMLParser(t *testing.T) {
	b, err := YAMLParser{}.Parse(strings.NewReader(testutil.SampleBracketYAML()))
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleBracket(), b)
}

func TestYAMLParserErrors(t *testing.T) {
	_, err := YAMLParser{}.Parse(strings.NewReader(""))
	var fErr *FormatError
	assert.ErrorAs(t, err, &fErr)

	_, err = YAMLParser{}.Parse(strings.NewReader("divisions: [oops"))
	assert.Error(t, err)

	_, err = YAMLParser{}.Parse(strings.NewReader("regions: []"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestForPath(t *testing.T) {
	assert.IsType(t, YAMLParser{}, ForPath("bracket.yaml"))
	assert.IsType(t, YAMLParser{}, ForPath("BRACKET.YML"))
	assert.IsType(t, TextParser{}, ForPath("bracket.txt"))
	assert.IsType(t, TextParser{}, ForPath("bracket"))
}

func TestParseFiles(t *testing.T) {
	textPath := writeFile(t, "bracket.txt", testutil.SampleBracketText())
	fromText, err := Parse(textPath)
	require.NoError(t, err)

	yamlPath := writeFile(t, "bracket.yaml", testutil.SampleBracketYAML())
	fromYAML, err := Parse(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, fromText, fromYAML)
}

func TestParseValidatesStructure(t *testing.T) {
	text := strings.Replace(testutil.SampleBracketText(), "SOUTH", "NORTH", 1)
	path := writeFile(t, "bracket.txt", text)

	_, err := Parse(path)
	sErr, ok := bracket.AsStructuralError(err)
	require.True(t, ok, "expected structural error, got %v", err)
	assert.Equal(t, "division present", sErr.Invariant)
	assert.Contains(t, err.Error(), path)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
