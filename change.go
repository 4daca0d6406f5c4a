package lingo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Change is one localized edit between an original and a corrected text.
type Change struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// ParseChanges parses raw model output from the change-extraction task into
// a list of changes. The output is cleaned, the first array substring is
// located and repaired (see RepairJSONArray), and elements without usable
// "from" and "to" fields are discarded. Errors wrap ErrMalformedOutput;
// callers are expected to degrade to a fallback Change rather than surface
// them.
func ParseChanges(raw string) ([]Change, error) {
	cleaned := CleanOutput(raw)
	payload, ok := ExtractJSONArray(cleaned)
	if !ok {
		return nil, fmt.Errorf("no JSON array in model output: %w", ErrMalformedOutput)
	}
	payload = RepairJSONArray(payload)

	var elements []map[string]any
	if err := json.Unmarshal([]byte(payload), &elements); err != nil {
		return nil, fmt.Errorf("parse changes: %v: %w", err, ErrMalformedOutput)
	}

	var changes []Change
	for _, el := range elements {
		from, okFrom := coerceString(el["from"])
		to, okTo := coerceString(el["to"])
		if !okFrom || !okTo {
			continue
		}
		reason, _ := coerceString(el["reason"])
		changes = append(changes, Change{From: from, To: to, Reason: reason})
	}
	return changes, nil
}

// FallbackChange is the single whole-text change committed when structured
// extraction fails but the text demonstrably changed. reason is a generic,
// caller-localized "text was corrected" message.
func FallbackChange(original, corrected, reason string) Change {
	return Change{
		From:   strings.TrimSpace(original),
		To:     strings.TrimSpace(corrected),
		Reason: reason,
	}
}

// coerceString converts the loosely typed values local models emit for the
// change fields. Absent and null values are not usable; numbers and booleans
// are rendered rather than rejected.
func coerceString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}
