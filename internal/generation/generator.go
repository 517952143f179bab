package generation

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"productdb/internal/labels"
	"productdb/internal/observability"
	"productdb/internal/textutil"
)

// maxFallbackText bounds the raw text copied into a fallback description.
const maxFallbackText = 1500

// Generator produces a description and labels for a product that has no
// curated reference entry. A nil Client means no credential is configured
// and only the keyword fallback is used.
type Generator struct {
	Client  Completer
	Logger  *log.Logger
	Metrics *observability.Metrics
}

// Generate returns (description, labels). It never fails: request errors and
// unusable replies degrade to Fallback.
func (g *Generator) Generate(ctx context.Context, title, rawText string) (string, string) {
	if g.Client == nil {
		g.Metrics.ObserveFallback(observability.ReasonNoCredential)
		return Fallback(title, rawText)
	}

	g.Metrics.ObserveRequest()
	text, err := g.Client.Complete(ctx, SystemPrompt(), UserPrompt(title, rawText))
	if err != nil {
		g.Logger.Warn("API error", "err", err)
		g.Metrics.ObserveFallback(observability.ReasonRequestError)
		return Fallback(title, rawText)
	}

	resp, err := parseResponse(text)
	if err != nil {
		g.Logger.Warn("Unusable generation response", "err", err)
		g.Metrics.ObserveFallback(observability.ReasonMalformed)
		return Fallback(title, rawText)
	}

	desc := title
	if resp.Description != nil && *resp.Description != "" {
		desc = *resp.Description
	}
	desc = strings.ReplaceAll(desc, `\n`, "\n")

	var list string
	if resp.Labels != nil {
		list = strings.TrimSpace(*resp.Labels)
	}
	if unknown := labels.Unknown(list); len(unknown) > 0 {
		g.Logger.Debug("Dropped labels outside the allowed set", "labels", unknown)
	}
	return desc, labels.Sanitize(list)
}

// Fallback derives content without any network I/O: the title followed by
// the start of the raw text, and keyword-matched labels.
func Fallback(title, rawText string) (string, string) {
	desc := title
	if rawText != "" {
		desc = title + "\n\n" + textutil.Truncate(rawText, maxFallbackText)
	}
	return desc, labels.Match(title, rawText)
}
