package lingo_test

import (
	"testing"

	"github.com/fwojciec/lingo"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		modelID string
		want    lingo.Family
	}{
		{"qwen2.5:7b", lingo.FamilyQwen},
		{"Qwen2.5:14b-instruct-q4_K_M", lingo.FamilyQwen},
		{"yi:9b", lingo.FamilyYi},
		{"llama3.2", lingo.FamilyLlama},
		{"llama3.2:3b-instruct", lingo.FamilyLlama},
		{"mistral:7b", lingo.FamilyMistral},
		{"gemma2:9b", lingo.FamilyGemma},
		{"phi3:mini", lingo.FamilyPhi},
		{"aya:8b", lingo.FamilyAya},
		{"some-unknown-model", lingo.FamilyLlama}, // fallback
		{"", lingo.FamilyLlama},
	}
	for _, tt := range tests {
		t.Run(tt.modelID, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lingo.Classify(tt.modelID))
		})
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	t.Run("embedded families carry all five tokens", func(t *testing.T) {
		t.Parallel()
		for _, f := range []lingo.Family{lingo.FamilyQwen, lingo.FamilyYi} {
			format := lingo.FormatFor(f)
			assert.NotNil(t, format)
			assert.NotEmpty(t, format.SystemStart)
			assert.NotEmpty(t, format.SystemEnd)
			assert.NotEmpty(t, format.UserStart)
			assert.NotEmpty(t, format.UserEnd)
			assert.NotEmpty(t, format.AssistantStart)
		}
	})

	t.Run("separate-system families return nil", func(t *testing.T) {
		t.Parallel()
		for _, f := range []lingo.Family{
			lingo.FamilyLlama, lingo.FamilyMistral, lingo.FamilyGemma,
			lingo.FamilyPhi, lingo.FamilyAya,
		} {
			assert.Nil(t, lingo.FormatFor(f), string(f))
		}
	})
}

func TestSupportsEmbeddedFormat(t *testing.T) {
	t.Parallel()
	assert.True(t, lingo.SupportsEmbeddedFormat(lingo.FamilyQwen))
	assert.True(t, lingo.SupportsEmbeddedFormat(lingo.FamilyYi))
	assert.False(t, lingo.SupportsEmbeddedFormat(lingo.FamilyLlama))
	assert.False(t, lingo.SupportsEmbeddedFormat(lingo.FamilyAya))
}
