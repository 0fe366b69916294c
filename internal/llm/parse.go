package llm

import (
	"errors"
	"strings"
)

// ErrNoJSONArray is returned when a response contains no JSON array markers.
var ErrNoJSONArray = errors.New("response contains no JSON array")

// ExtractJSONArray locates the first '[' and the last ']' in a free-text
// response and returns the slice between them, inclusive. Anything outside
// the markers (prose, markdown fences) is discarded. The slice is not
// guaranteed to be valid JSON; callers must unmarshal and handle failure.
func ExtractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONArray
	}
	return s[start : end+1], nil
}
