package lingo

import "strings"

// LangAuto is the sentinel language code meaning "detect from the text".
// It must never appear literally in a prompt; builders substitute a generic
// phrase or the detected code before composing.
const LangAuto = "auto"

// languageNames maps ISO 639-1 codes to English display names used in
// prompts. Prompts address models in English regardless of the content
// language, which local models follow more reliably.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ar": "Arabic",
	"hi": "Hindi",
	"nl": "Dutch",
	"pl": "Polish",
	"tr": "Turkish",
	"sv": "Swedish",
	"da": "Danish",
	"fi": "Finnish",
	"cs": "Czech",
	"uk": "Ukrainian",
	"el": "Greek",
	"vi": "Vietnamese",
}

// DisplayName resolves a language code to its English display name.
// Unknown codes are returned as-is so prompts degrade gracefully rather
// than failing.
func DisplayName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// LanguageCodes returns the codes of the language table in no particular
// order. Collaborators (the detector, UI pickers) use it to stay in sync
// with the prompt builder's vocabulary.
func LanguageCodes() []string {
	codes := make([]string, 0, len(languageNames))
	for code := range languageNames {
		codes = append(codes, code)
	}
	return codes
}
