package lingua_test

import (
	"testing"

	"github.com/fwojciec/lingo/lingua"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	d := lingua.New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "The quick brown fox jumps over the lazy dog.", "en"},
		{"german", "Der schnelle braune Fuchs springt über den faulen Hund.", "de"},
		{"spanish", "El rápido zorro marrón salta sobre el perro perezoso.", "es"},
		{"japanese", "吾輩は猫である。名前はまだ無い。", "ja"},
		{"polish", "Wszyscy ludzie rodzą się wolni i równi pod względem swej godności.", "pl"},
		{"empty", "", "en"},
		{"whitespace", "   \n\t", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}
