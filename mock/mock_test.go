package mock_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fwojciec/lingo"
	"github.com/fwojciec/lingo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()
	t.Run("delegates to GenerateFn", func(t *testing.T) {
		t.Parallel()
		g := mock.Generator{
			GenerateFn: func(ctx context.Context, req lingo.GenerateRequest) (string, error) {
				assert.Equal(t, "llama3.2", req.Model)
				return "Hallo", nil
			},
		}
		got, err := g.Generate(context.Background(), lingo.GenerateRequest{Model: "llama3.2", Prompt: "p"})
		require.NoError(t, err)
		assert.Equal(t, "Hallo", got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("api error")
		g := mock.Generator{
			GenerateFn: func(ctx context.Context, req lingo.GenerateRequest) (string, error) {
				return "", wantErr
			},
		}
		_, err := g.Generate(context.Background(), lingo.GenerateRequest{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when GenerateFn not set", func(t *testing.T) {
		t.Parallel()
		g := mock.Generator{}
		assert.Panics(t, func() {
			_, _ = g.Generate(context.Background(), lingo.GenerateRequest{})
		})
	})
}

func TestGenerator_GenerateStream(t *testing.T) {
	t.Parallel()
	t.Run("delegates to GenerateStreamFn", func(t *testing.T) {
		t.Parallel()
		want := mock.Fragments("a")
		g := mock.Generator{
			GenerateStreamFn: func(ctx context.Context, req lingo.GenerateRequest) (lingo.Stream, error) {
				return want, nil
			},
		}
		got, err := g.GenerateStream(context.Background(), lingo.GenerateRequest{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("panics when GenerateStreamFn not set", func(t *testing.T) {
		t.Parallel()
		g := mock.Generator{}
		assert.Panics(t, func() {
			_, _ = g.GenerateStream(context.Background(), lingo.GenerateRequest{})
		})
	})
}

func TestGenerator_Probes(t *testing.T) {
	t.Parallel()
	t.Run("nil-safe defaults", func(t *testing.T) {
		t.Parallel()
		g := mock.Generator{}
		assert.True(t, g.CheckHealth(context.Background()))
		assert.Nil(t, g.ListModels(context.Background()))
		assert.NoError(t, g.GenerateJSON(context.Background(), lingo.GenerateRequest{}, nil))
	})

	t.Run("delegates when set", func(t *testing.T) {
		t.Parallel()
		g := mock.Generator{
			CheckHealthFn: func(ctx context.Context) bool { return false },
			ListModelsFn: func(ctx context.Context) []lingo.ModelInfo {
				return []lingo.ModelInfo{{Name: "llama3.2"}}
			},
		}
		assert.False(t, g.CheckHealth(context.Background()))
		assert.Len(t, g.ListModels(context.Background()), 1)
	})
}

func TestStream_Fragments(t *testing.T) {
	t.Parallel()

	s := mock.Fragments("Hello", "Hello world")

	got, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)

	got, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, "Hello world", got)

	_, err = s.Next()
	assert.ErrorIs(t, err, io.EOF)

	assert.NoError(t, s.Close(), "Close is nil-safe")
}

func TestDetector_Detect(t *testing.T) {
	t.Parallel()
	t.Run("delegates to DetectFn", func(t *testing.T) {
		t.Parallel()
		d := mock.Detector{DetectFn: func(text string) string { return "de" }}
		assert.Equal(t, "de", d.Detect("Hallo Welt"))
	})

	t.Run("defaults to en", func(t *testing.T) {
		t.Parallel()
		d := mock.Detector{}
		assert.Equal(t, "en", d.Detect("anything"))
	})
}

func TestConfig(t *testing.T) {
	t.Parallel()

	c := mock.Config{
		HostValue:            "http://localhost:11434",
		TranslationModelName: "aya:8b",
		CorrectionModelName:  "llama3.2",
		Streaming:            true,
		ExplainLang:          "de",
	}
	assert.Equal(t, "http://localhost:11434", c.Host())
	assert.Equal(t, "aya:8b", c.TranslationModel())
	assert.Equal(t, "llama3.2", c.CorrectionModel())
	assert.True(t, c.UseStreaming())
	assert.Equal(t, "de", c.ExplanationLanguage())

	empty := mock.Config{}
	assert.Equal(t, lingo.LangAuto, empty.ExplanationLanguage())
}
