package main

import (
	"github.com/fwojciec/lingo"
)

// Compile-time interface check.
var _ lingo.Config = (*flagConfig)(nil)

const (
	defaultHost           = "http://localhost:11434"
	defaultTranslateModel = "aya:8b"
	defaultCorrectModel   = "llama3.2"
)

// flagConfig implements lingo.Config from flag values with env fallbacks.
// All env var values are passed in as parameters; env is only read in run().
type flagConfig struct {
	host           string
	translateModel string
	correctModel   string
	explainLang    string
	noStream       bool
}

func newConfig(host, envHost, translateModel, envTranslateModel, correctModel, envCorrectModel, explainLang, envExplainLang string, noStream bool, envNoStream string) *flagConfig {
	return &flagConfig{
		host:           firstNonEmpty(host, envHost, defaultHost),
		translateModel: firstNonEmpty(translateModel, envTranslateModel, defaultTranslateModel),
		correctModel:   firstNonEmpty(correctModel, envCorrectModel, defaultCorrectModel),
		explainLang:    firstNonEmpty(explainLang, envExplainLang),
		noStream:       noStream || envNoStream == "1" || envNoStream == "true",
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Host returns the Ollama base URL.
func (c *flagConfig) Host() string { return c.host }

// TranslationModel returns the model used for translation requests.
func (c *flagConfig) TranslationModel() string { return c.translateModel }

// CorrectionModel returns the model used for correction requests.
func (c *flagConfig) CorrectionModel() string { return c.correctModel }

// UseStreaming reports whether generation uses the streaming endpoint.
func (c *flagConfig) UseStreaming() bool { return !c.noStream }

// ExplanationLanguage returns the preferred language for change
// explanations, lingo.LangAuto when unset.
func (c *flagConfig) ExplanationLanguage() string {
	if c.explainLang == "" {
		return lingo.LangAuto
	}
	return c.explainLang
}
