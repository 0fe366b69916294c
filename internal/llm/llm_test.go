package llm

import (
	"errors"
	"testing"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  error
	}{
		{
			name:     "raw array",
			input:    `[{"taskId": "1"}]`,
			expected: `[{"taskId": "1"}]`,
		},
		{
			name:     "array with surrounding prose",
			input:    "Here is the schedule:\n[{\"taskId\": \"1\"}]\nLet me know!",
			expected: `[{"taskId": "1"}]`,
		},
		{
			name:     "array in markdown fence",
			input:    "```json\n[{\"taskId\": \"1\"}, {\"taskId\": \"2\"}]\n```",
			expected: `[{"taskId": "1"}, {"taskId": "2"}]`,
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: "[]",
		},
		{
			name:    "no array markers",
			input:   "I could not produce a schedule today.",
			wantErr: ErrNoJSONArray,
		},
		{
			name:    "only opening bracket",
			input:   "[ oops",
			wantErr: ErrNoJSONArray,
		},
		{
			name:    "reversed markers",
			input:   "] then [",
			wantErr: ErrNoJSONArray,
		},
		{
			name:     "nested arrays keep outermost slice",
			input:    `result: [[1, 2], [3]] done`,
			expected: `[[1, 2], [3]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONArray(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractJSONArray() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ExtractJSONArray() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	if _, err := NewClient("copilot", "", ""); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestNewClient_OllamaRequiresModel(t *testing.T) {
	if _, err := NewClient("ollama", "", ""); err == nil {
		t.Error("expected error when ollama model is missing")
	}
}
