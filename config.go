package lingo

// Config is the settings collaborator consumed by the workflows and the
// composition root. Workflows re-read it at the start of every call, so a
// settings change takes effect on the next operation and never affects one
// already in flight.
type Config interface {
	// Host is the backend base URL.
	Host() string
	// TranslationModel is the model id used by the translation workflow.
	TranslationModel() string
	// CorrectionModel is the model id used by the correction workflow.
	CorrectionModel() string
	// UseStreaming selects streaming generation for primary operations.
	UseStreaming() bool
	// ExplanationLanguage is the language for change-extraction reasons:
	// LangAuto or an ISO 639-1 code.
	ExplanationLanguage() string
}
