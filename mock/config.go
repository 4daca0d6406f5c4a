package mock

import "github.com/fwojciec/lingo"

// Interface compliance check.
var _ lingo.Config = (*Config)(nil)

// Config is a test double for lingo.Config built from plain fields rather
// than function fields: settings are static per test and a struct literal
// reads better than five closures.
type Config struct {
	HostValue            string
	TranslationModelName string
	CorrectionModelName  string
	Streaming            bool
	ExplainLang          string
}

// Host returns HostValue.
func (c *Config) Host() string { return c.HostValue }

// TranslationModel returns TranslationModelName.
func (c *Config) TranslationModel() string { return c.TranslationModelName }

// CorrectionModel returns CorrectionModelName.
func (c *Config) CorrectionModel() string { return c.CorrectionModelName }

// UseStreaming returns Streaming.
func (c *Config) UseStreaming() bool { return c.Streaming }

// ExplanationLanguage returns ExplainLang, defaulting to lingo.LangAuto
// when empty.
func (c *Config) ExplanationLanguage() string {
	if c.ExplainLang == "" {
		return lingo.LangAuto
	}
	return c.ExplainLang
}
