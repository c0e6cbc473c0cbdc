package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_RoundTrip(t *testing.T) {
	objects := []map[string]any{
		{
			"score":             "72/100",
			"missing_keywords":  []any{"Docker", "Kubernetes"},
			"formatting_issues": []any{"No dates"},
			"summary":           "Solid backend profile.",
		},
		{
			"communication": "4/5",
			"technical":     "3/5",
			"confidence":    "4/5",
			"feedback":      "Clear answers {mostly}.",
			"improvements":  []any{},
		},
		{"nested": map[string]any{"inner": "value"}},
	}

	for _, obj := range objects {
		b, err := json.Marshal(obj)
		require.NoError(t, err)

		got, err := ExtractJSON("Here is the analysis:\n" + string(b) + "\nHope this helps.")
		require.NoError(t, err)
		assert.Equal(t, obj, got)
	}
}

func TestExtractJSON_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "prose only", input: "I could not analyse this resume."},
		{name: "closing before opening", input: "} nothing {"},
		{name: "only opening", input: "{ \"score\": \"50/100\""},
		{name: "invalid json", input: "{score: 50}"},
		{name: "unterminated", input: "{]"},
		{name: "extra closing brace", input: "{}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			require.ErrorIs(t, err, ErrExtractionFailed)
			assert.Nil(t, got)
		})
	}
}

func TestExtractJSON_GreedySpan(t *testing.T) {
	// Two objects: the span runs from the first '{' to the last '}' and fails.
	_, err := ExtractJSON(`{"score": "60/100"} and also {"score": "70/100"}`)
	require.ErrorIs(t, err, ErrExtractionFailed)

	// Trailing commentary with a stray brace is swallowed as well.
	_, err = ExtractJSON(`{"score": "60/100"} note: use {braces} carefully`)
	require.ErrorIs(t, err, ErrExtractionFailed)

	// Trailing prose without braces is fine.
	got, err := ExtractJSON("```json\n{\"score\": \"60/100\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "60/100", got["score"])
}

func TestStringField_Lenient(t *testing.T) {
	obj := map[string]any{"a": "4/5", "b": float64(4), "c": 3.5, "d": true, "e": nil}

	v, ok := stringField(obj, "a")
	assert.True(t, ok)
	assert.Equal(t, "4/5", v)

	v, _ = stringField(obj, "b")
	assert.Equal(t, "4", v)

	v, _ = stringField(obj, "c")
	assert.Equal(t, "3.5", v)

	v, _ = stringField(obj, "d")
	assert.Equal(t, "true", v)

	_, ok = stringField(obj, "e")
	assert.False(t, ok)

	_, ok = stringField(obj, "missing")
	assert.False(t, ok)
}

func TestStringsField_Lenient(t *testing.T) {
	obj := map[string]any{
		"list":   []any{"a", nil, float64(2)},
		"single": "Practice system design",
		"blank":  "  ",
		"number": float64(1),
	}

	v, ok := stringsField(obj, "list")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "2"}, v)

	v, ok = stringsField(obj, "single")
	assert.True(t, ok)
	assert.Equal(t, []string{"Practice system design"}, v)

	v, ok = stringsField(obj, "blank")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = stringsField(obj, "number")
	assert.False(t, ok)
}
