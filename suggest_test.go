package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "බත්", 3},
		{"බත්", "", 3},
		{"බත්", "බත්", 0},
		{"බත", "බත්", 1},
		{"kitten", "sitting", 3},
		{"වතුර", "බත්", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, Distance(tt.b, tt.a), "Distance(%q, %q)", tt.b, tt.a)
	}
}

func TestClosest(t *testing.T) {
	vocab := []string{"බත්", "වතුර", "ගෙදර"}

	got, ok := Closest("වතුර", vocab)
	assert.True(t, ok)
	assert.Equal(t, "වතුර", got)

	got, ok = Closest("බත", vocab)
	assert.True(t, ok)
	assert.Equal(t, "බත්", got)

	got, ok = Closest("ලිපිය", vocab)
	assert.False(t, ok)
	assert.Equal(t, "ලිපිය", got)

	got, ok = Closest("x", nil)
	assert.False(t, ok)
	assert.Equal(t, "x", got)
}

func TestClosestTieKeepsOrder(t *testing.T) {
	got, ok := Closest("ab", []string{"xb", "ax"})
	assert.True(t, ok)
	assert.Equal(t, "xb", got)
}
