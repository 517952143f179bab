package main

import (
	"github.com/charmbracelet/log"

	"productdb/internal/model"
	"productdb/internal/observability"
)

func logSummary(logger *log.Logger, records []model.CatalogRecord, m *observability.Metrics) {
	var reference, generated int
	for _, r := range records {
		if r.Source == model.SourceReference {
			reference++
		} else {
			generated++
		}
	}

	totals, err := m.Totals()
	if err != nil {
		logger.Warn("Failed to gather metrics", "err", err)
	}
	fallback := func(reason string) int {
		return int(totals["catalog_generation_fallbacks_total{"+reason+"}"])
	}
	logger.Info("Run summary",
		"reference", reference,
		"generated", generated,
		"requests", int(totals["catalog_generation_requests_total"]),
		"no_credential", fallback(observability.ReasonNoCredential),
		"request_error", fallback(observability.ReasonRequestError),
		"malformed", fallback(observability.ReasonMalformed),
	)
}
