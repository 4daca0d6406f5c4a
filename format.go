package lingo

import "strings"

// Family identifies a class of backend models sharing a prompt-markup
// convention: either embedded chat tokens in the prompt string, or a separate
// system field on the API request.
type Family string

const (
	FamilyQwen    Family = "qwen"
	FamilyYi      Family = "yi"
	FamilyLlama   Family = "llama"
	FamilyMistral Family = "mistral"
	FamilyGemma   Family = "gemma"
	FamilyPhi     Family = "phi"
	FamilyAya     Family = "aya"
)

// classifyOrder fixes the priority of substring matches so classification is
// deterministic when an identifier mentions more than one family name.
var classifyOrder = []Family{
	FamilyQwen,
	FamilyYi,
	FamilyLlama,
	FamilyMistral,
	FamilyGemma,
	FamilyPhi,
	FamilyAya,
}

// Classify maps a model identifier (e.g. "qwen2.5:7b-instruct") to its
// family by case-insensitive substring match. Unmatched identifiers fall
// back to FamilyLlama.
func Classify(modelID string) Family {
	id := strings.ToLower(modelID)
	for _, f := range classifyOrder {
		if strings.Contains(id, string(f)) {
			return f
		}
	}
	return FamilyLlama
}

// ModelFormat holds the boundary tokens for families that embed chat roles
// directly in the prompt string.
type ModelFormat struct {
	SystemStart    string
	SystemEnd      string
	UserStart      string
	UserEnd        string
	AssistantStart string
}

// chatML is the markup shared by the Qwen and Yi families.
var chatML = ModelFormat{
	SystemStart:    "<|im_start|>system\n",
	SystemEnd:      "<|im_end|>\n",
	UserStart:      "<|im_start|>user\n",
	UserEnd:        "<|im_end|>\n",
	AssistantStart: "<|im_start|>assistant\n",
}

// FormatFor returns the embedded-markup descriptor for f, or nil for
// families that take system content as a separate API field.
func FormatFor(f Family) *ModelFormat {
	switch f {
	case FamilyQwen, FamilyYi:
		format := chatML
		return &format
	default:
		return nil
	}
}

// SupportsEmbeddedFormat reports whether f wraps prompts with embedded
// role markers.
func SupportsEmbeddedFormat(f Family) bool {
	return FormatFor(f) != nil
}
