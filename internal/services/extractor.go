package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrExtractionFailed = errors.New("no JSON object in model output")

// ExtractJSON parses the span from the first '{' to the last '}' of text as a
// JSON object. The span is greedy: prose or a second object between two
// blocks ends up inside the parse attempt and usually fails it.
func ExtractJSON(text string) (map[string]any, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrExtractionFailed
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if obj == nil {
		return nil, ErrExtractionFailed
	}

	return obj, nil
}

// stringField reads a scalar field leniently: models return "4/5" as well as 4.
func stringField(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", false
	}

	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return fmt.Sprintf("%t", val), true
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

// stringsField reads a list field; a lone string becomes a one-item list.
func stringsField(obj map[string]any, key string) ([]string, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}

	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case nil:
			default:
				b, _ := json.Marshal(s)
				out = append(out, string(b))
			}
		}
		return out, true
	case string:
		if strings.TrimSpace(val) == "" {
			return []string{}, true
		}
		return []string{val}, true
	default:
		return nil, false
	}
}
