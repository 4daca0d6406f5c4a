package lingo

import "fmt"

// PromptResult is a wire-ready unit of work. Exactly one of two shapes:
// Prompt contains embedded role markers and System is empty, or Prompt is
// the raw user content and System carries the system instruction for
// submission as a separate API field.
type PromptResult struct {
	Prompt string
	System string
}

// Wrap shapes raw system and user text for the given model. Families with an
// embedded format get a single prompt string with all role markers inlined;
// the rest keep system and user content separate.
func Wrap(system, user, modelID string) PromptResult {
	f := FormatFor(Classify(modelID))
	if f == nil {
		return PromptResult{Prompt: user, System: system}
	}
	return PromptResult{
		Prompt: f.SystemStart + system + f.SystemEnd + f.UserStart + user + f.UserEnd + f.AssistantStart,
	}
}

// The output-only contract is repeated verbatim in every system prompt.
// Local models reliably "answer" or "define" short inputs instead of
// transforming them unless told not to in both places.
const outputContract = "Output only the resulting text. " +
	"Never add explanations, commentary, quotation marks or notes. " +
	"If the input is a single word, the output must be a single word or short phrase, never a definition."

// BuildTranslation composes the translation prompt for one request.
// sourceLang may be LangAuto, which renders as a generic phrase rather than
// the literal sentinel.
func BuildTranslation(text, sourceLang, targetLang, modelID string) PromptResult {
	source := "the detected language"
	if sourceLang != LangAuto {
		source = DisplayName(sourceLang)
	}
	target := DisplayName(targetLang)

	system := "You are a professional translator. " +
		"Translate the text you receive, preserving its meaning, tone and register. " +
		outputContract
	user := fmt.Sprintf("Translate the following text from %s to %s:\n\n%s", source, target, text)

	return Wrap(system, user, modelID)
}

// BuildCorrection composes the correction prompt for the given level.
// language is the detected language of the text, never LangAuto.
func BuildCorrection(text, language string, level Level, modelID string) PromptResult {
	name := DisplayName(language)

	var task string
	switch level {
	case LevelImprove:
		task = fmt.Sprintf("You are an expert %s editor. "+
			"Correct all spelling and grammar mistakes, and improve word choice and sentence flow. "+
			"Preserve the meaning of the text.", name)
	case LevelRewrite:
		task = fmt.Sprintf("You are an expert %s editor. "+
			"Rewrite the text in a clear, professional tone. "+
			"You may restructure sentences freely, but preserve the core message.", name)
	default:
		task = fmt.Sprintf("You are a careful %s proofreader. "+
			"Fix spelling, grammar and punctuation mistakes only. "+
			"Do not change the wording, style or tone of the text.", name)
	}

	return Wrap(task+" "+outputContract, text, modelID)
}

// BuildChangesExtraction composes the plain prompt for the change-extraction
// task. It deliberately bypasses Wrap: this task performs better against a
// bare instruction than against chat markup. Callers must skip the task
// entirely when original and corrected are identical after trimming.
func BuildChangesExtraction(original, corrected, textLang, explainLang string) string {
	return fmt.Sprintf(`Compare the original and the corrected %s text below and list every change that was made.

Original:
%s

Corrected:
%s

Respond with a JSON array only, no other text. Each element must be an object with the keys "from" (the original fragment), "to" (the corrected fragment) and "reason" (a short explanation of the change, written in %s). Respond with [] if the texts are identical.`,
		DisplayName(textLang), original, corrected, DisplayName(explainLang))
}
