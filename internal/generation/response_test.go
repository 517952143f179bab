package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "bare fence", in: "```\n{\"a\": 1}\n```\n", want: `{"a": 1}`},
		{name: "no fence", in: "  {\"a\": 1}  ", want: `{"a": 1}`},
		{name: "fence without newline", in: "```json{\"a\": 1}```", want: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestParseResponse(t *testing.T) {
	r, err := parseResponse(`{"description": "d", "labels": "Dry skin", "extra": true}`)
	require.NoError(t, err)
	require.NotNil(t, r.Description)
	require.NotNil(t, r.Labels)
	assert.Equal(t, "d", *r.Description)
	assert.Equal(t, "Dry skin", *r.Labels)

	r, err = parseResponse(`{}`)
	require.NoError(t, err)
	assert.Nil(t, r.Description)
	assert.Nil(t, r.Labels)
}

func TestParseResponse_Errors(t *testing.T) {
	for _, in := range []string{"", "not json", `{"description": "cut`, `"just a string"`, `{"labels": 3}`} {
		t.Run(in, func(t *testing.T) {
			_, err := parseResponse(in)
			assert.Error(t, err)
		})
	}
}
