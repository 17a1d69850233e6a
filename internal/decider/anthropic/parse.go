package anthropic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
)

var (
	errNoObject   = errors.New("anthropic: response contains no JSON object")
	errUnbalanced = errors.New("anthropic: response contains unbalanced JSON")
)

// extractObject returns the first balanced {...} in text. Braces inside JSON
// strings are ignored so narratives may contain them.
func extractObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errNoObject
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", errUnbalanced
}

// parseVerdict turns the model's text into an outcome. The winner is left as
// the model wrote it; reconciling it with the two teams happens downstream.
func parseVerdict(text string) (games.Outcome, error) {
	raw, err := extractObject(text)
	if err != nil {
		return games.Outcome{}, err
	}

	var v fightVerdict
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return games.Outcome{}, fmt.Errorf("anthropic: invalid verdict JSON: %w", err)
	}
	if strings.TrimSpace(v.Winner) == "" {
		return games.Outcome{}, errors.New("anthropic: verdict has no winner")
	}
	if strings.TrimSpace(v.Narrative) == "" {
		return games.Outcome{}, errors.New("anthropic: verdict has no narrative")
	}

	confidence := 0
	if v.WinProbability != "" {
		f, err := v.WinProbability.Float64()
		if err != nil {
			return games.Outcome{}, fmt.Errorf("anthropic: invalid win_probability %q: %w", v.WinProbability, err)
		}
		confidence = int(math.Trunc(f))
	}

	return games.Outcome{
		Winner:     strings.TrimSpace(v.Winner),
		Confidence: confidence,
		Narrative:  strings.TrimSpace(v.Narrative),
	}, nil
}
