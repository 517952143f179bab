package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter than limit", in: "serum", n: 10, want: "serum"},
		{name: "exact length", in: "serum", n: 5, want: "serum"},
		{name: "cut", in: "hydrating serum", n: 9, want: "hydrating"},
		{name: "zero", in: "serum", n: 0, want: ""},
		{name: "multibyte", in: "crème légère", n: 5, want: "crème"},
		{name: "empty", in: "", n: 3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}
