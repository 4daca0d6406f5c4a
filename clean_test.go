package lingo_test

import (
	"testing"

	"github.com/fwojciec/lingo"
	"github.com/stretchr/testify/assert"
)

func TestCleanOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Hello world", "Hello world"},
		{"trims whitespace", "  Hello world \n", "Hello world"},
		{"strips chatml end token", "Hello world<|im_end|>", "Hello world"},
		{"strips chatml role marker", "<|im_start|>assistant\nHello", "Hello"},
		{"strips llama tokens", "Hello<|eot_id|><|end_header_id|>", "Hello"},
		{"strips mistral markers", "[INST]Hello[/INST]", "Hello"},
		{"strips gemma turns", "<start_of_turn>Hello<end_of_turn>", "Hello"},
		{"strips sentence tokens", "<s>Hello</s>", "Hello"},
		{"strips endoftext", "Hello<|endoftext|>", "Hello"},
		{"token mid-stream", "Hel<|im_end|>lo", "Hello"},
		{"bare fence pair", "```\nHello\n```", "Hello"},
		{"json fence pair", "```json\n[{\"from\":\"a\"}]\n```", `[{"from":"a"}]`},
		{"fence without newline", "```[1, 2]```", "[1, 2]"},
		{"unterminated fence kept open", "```json\n[{\"from\":", `[{"from":`},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lingo.CleanOutput(tt.in))
		})
	}
}
