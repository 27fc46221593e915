package forage_test

import (
	"testing"

	"github.com/foragehq/forage"
	"github.com/stretchr/testify/assert"
)

func TestParseReactionsText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"bare number", "42", 42},
		{"number with label", "42 reactions", 42},
		{"thousands separator stripped", "1,234 reactions", 1234},
		{"first integer run wins", "12 likes and 3 loves", 12},
		{"empty text", "", 0},
		{"no digits", "reactions", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := forage.ParseReactionsText(tt.text)

			assert.Equal(t, tt.want, got.Total)
			assert.Zero(t, got.Like)
		})
	}
}
