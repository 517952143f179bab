package generation

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productdb/internal/observability"
)

type fakeCompleter struct {
	reply  string
	err    error
	calls  int
	system string
	user   string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	return f.reply, f.err
}

func (f *fakeCompleter) Close() error { return nil }

func newTestGenerator(client Completer) *Generator {
	return &Generator{
		Client:  client,
		Logger:  log.New(io.Discard),
		Metrics: observability.NewMetrics(),
	}
}

const (
	testTitle = "Niacinamide 10% + Zinc 1%"
	testRaw   = "Visibly reduces large pores and blemishes. Suitable for oily skin."
)

func TestGenerate_NoCredential(t *testing.T) {
	g := newTestGenerator(nil)

	desc, lbls := g.Generate(context.Background(), testTitle, testRaw)

	assert.Equal(t, testTitle+"\n\n"+testRaw, desc)
	assert.Equal(t, "large pores,oily skin", lbls)
	assert.Equal(t, 1.0, testutil.ToFloat64(g.Metrics.Fallbacks.WithLabelValues(observability.ReasonNoCredential)))
	assert.Equal(t, 0.0, testutil.ToFloat64(g.Metrics.Requests))
}

func TestGenerate_NoCredentialNeverEmpty(t *testing.T) {
	g := newTestGenerator(nil)

	desc, lbls := g.Generate(context.Background(), "Plain Soap", "")

	assert.Equal(t, "Plain Soap", desc)
	assert.Empty(t, lbls)
}

func TestGenerate_ValidResponse(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		wantDesc string
		wantLbls string
	}{
		{
			name:     "plain json",
			reply:    `{"description": "Balancing serum.\\nKey Benefits:\\n- Minimizes pores", "labels": "Large pores, Oily skin"}`,
			wantDesc: "Balancing serum.\nKey Benefits:\n- Minimizes pores",
			wantLbls: "large pores,oily skin",
		},
		{
			name:     "json code fence",
			reply:    "```json\n{\"description\": \"Balancing serum.\", \"labels\": \"Oily skin\"}\n```",
			wantDesc: "Balancing serum.",
			wantLbls: "oily skin",
		},
		{
			name:     "bare code fence",
			reply:    "```\n{\"description\": \"Balancing serum.\", \"labels\": \"Oily skin\"}\n```  ",
			wantDesc: "Balancing serum.",
			wantLbls: "oily skin",
		},
		{
			name:     "missing description uses title",
			reply:    `{"labels": "Oily skin"}`,
			wantDesc: testTitle,
			wantLbls: "oily skin",
		},
		{
			name:     "empty description uses title",
			reply:    `{"description": "", "labels": null}`,
			wantDesc: testTitle,
			wantLbls: "",
		},
		{
			name:     "missing labels",
			reply:    `{"description": "Balancing serum."}`,
			wantDesc: "Balancing serum.",
			wantLbls: "",
		},
		{
			name:     "free text labels dropped",
			reply:    `{"description": "Balancing serum.", "labels": "Oily skin, Redness, Glow"}`,
			wantDesc: "Balancing serum.",
			wantLbls: "oily skin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{reply: tt.reply}
			g := newTestGenerator(fake)

			desc, lbls := g.Generate(context.Background(), testTitle, testRaw)

			assert.Equal(t, tt.wantDesc, desc)
			assert.Equal(t, tt.wantLbls, lbls)
			assert.Equal(t, 1, fake.calls)
		})
	}
}

func TestGenerate_RequestErrorFallsBack(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection refused")}
	g := newTestGenerator(fake)

	desc, lbls := g.Generate(context.Background(), testTitle, testRaw)

	wantDesc, wantLbls := Fallback(testTitle, testRaw)
	assert.Equal(t, wantDesc, desc)
	assert.Equal(t, wantLbls, lbls)
	assert.Equal(t, 1.0, testutil.ToFloat64(g.Metrics.Fallbacks.WithLabelValues(observability.ReasonRequestError)))
}

func TestGenerate_MalformedMatchesRequestError(t *testing.T) {
	failed := newTestGenerator(&fakeCompleter{err: errors.New("503 overloaded")})
	wantDesc, wantLbls := failed.Generate(context.Background(), testTitle, testRaw)

	for _, reply := range []string{
		`{"description": "Balancing ser`,
		"Sure! Here is the product description you asked for.",
		"",
		`["Oily skin"]`,
		`{"description": 42, "labels": "Oily skin"}`,
		`{"description": "ok", "labels": ["Oily skin"]}`,
	} {
		t.Run(reply, func(t *testing.T) {
			g := newTestGenerator(&fakeCompleter{reply: reply})

			desc, lbls := g.Generate(context.Background(), testTitle, testRaw)

			assert.Equal(t, wantDesc, desc)
			assert.Equal(t, wantLbls, lbls)
			assert.Equal(t, 1.0, testutil.ToFloat64(g.Metrics.Fallbacks.WithLabelValues(observability.ReasonMalformed)))
		})
	}
}

func TestGenerate_Prompts(t *testing.T) {
	fake := &fakeCompleter{reply: `{"description": "x", "labels": ""}`}
	g := newTestGenerator(fake)
	raw := strings.Repeat("a", maxPromptText+100)

	g.Generate(context.Background(), testTitle, raw)

	assert.Contains(t, fake.system, "Post-inflammatory hyperpigmentation")
	assert.Contains(t, fake.system, "skincare copywriter")
	assert.True(t, strings.HasPrefix(fake.user, "Product title:\n"+testTitle+"\n\nRaw product info (scraped):\n"))
	assert.Contains(t, fake.user, strings.Repeat("a", maxPromptText)+"\n\nRespond with a JSON object only")
	assert.NotContains(t, fake.user, strings.Repeat("a", maxPromptText+1))
}

func TestFallback(t *testing.T) {
	raw := strings.Repeat("b", maxFallbackText+10) + " dry skin"

	desc, lbls := Fallback("Barrier Cream", raw)

	assert.Equal(t, "Barrier Cream\n\n"+strings.Repeat("b", maxFallbackText), desc)
	assert.Equal(t, "dry skin", lbls)
}

func TestNewCompleter_NoCredential(t *testing.T) {
	c, err := NewCompleter(context.Background(), ClientConfig{Provider: "anthropic"})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNewCompleter_Providers(t *testing.T) {
	c, err := NewCompleter(context.Background(), ClientConfig{Provider: "anthropic", APIKey: "k", Model: "m", MaxTokens: 10})
	require.NoError(t, err)
	assert.IsType(t, &ChatClient{}, c)

	c, err = NewCompleter(context.Background(), ClientConfig{Provider: "openai", APIKey: "k", Model: "m", MaxTokens: 10})
	require.NoError(t, err)
	assert.IsType(t, &ChatClient{}, c)

	_, err = NewCompleter(context.Background(), ClientConfig{Provider: "mistral", APIKey: "k"})
	assert.Error(t, err)
}
