package lingo

import "strings"

// controlTokens are the special tokens local models leak into their output
// when the prompt embeds chat markup or the template is mismatched. They are
// stripped wherever they appear; none of them is legitimate output for the
// translation or correction tasks.
var controlTokens = []string{
	"<|im_start|>system",
	"<|im_start|>user",
	"<|im_start|>assistant",
	"<|im_start|>",
	"<|im_end|>",
	"<|endoftext|>",
	"<|eot_id|>",
	"<|start_header_id|>",
	"<|end_header_id|>",
	"<start_of_turn>",
	"<end_of_turn>",
	"[INST]",
	"[/INST]",
	"<s>",
	"</s>",
}

// CleanOutput strips model control tokens and surrounding markdown code
// fences from raw generation output, and trims whitespace. It is applied to
// every intermediate streamed value as well as final results, so consumers
// never see raw tokens flash by.
func CleanOutput(s string) string {
	for _, tok := range controlTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return strings.TrimSpace(stripFences(s))
}

// stripFences removes a single pair of enclosing markdown code fences, with
// or without a language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := strings.TrimPrefix(s, "```")
	// Drop the language tag on the opening fence line, if any.
	if i := strings.IndexByte(rest, '\n'); i >= 0 && !strings.ContainsAny(rest[:i], " \t{[") {
		rest = rest[i+1:]
	} else {
		rest = strings.TrimPrefix(rest, "json")
	}
	if trimmed, ok := strings.CutSuffix(strings.TrimSpace(rest), "```"); ok {
		rest = trimmed
	}
	return strings.TrimSpace(rest)
}
