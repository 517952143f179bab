package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"productdb/internal/generation"
	"productdb/internal/labels"
	"productdb/internal/model"
	"productdb/internal/observability"
	"productdb/internal/textutil"
)

// Builder turns scraped rows into catalog records, preferring curated
// reference data and generating content for everything else.
type Builder struct {
	References map[string]model.ReferenceProduct
	Generator  *generation.Generator
	Logger     *log.Logger
	Metrics    *observability.Metrics
}

// Build processes rows one at a time, in order.
func (b *Builder) Build(ctx context.Context, rows []model.RawProduct) []model.CatalogRecord {
	records := make([]model.CatalogRecord, 0, len(rows))
	for i := range rows {
		b.Logger.Info(fmt.Sprintf("[%d/%d] %s...", i+1, len(rows), textutil.Truncate(rows[i].Title, 60)))
		rec := b.BuildRecord(ctx, &rows[i])
		b.Metrics.ObserveRow(rec.Source)
		records = append(records, rec)
	}
	return records
}

func (b *Builder) BuildRecord(ctx context.Context, row *model.RawProduct) model.CatalogRecord {
	asin := ExtractASIN(row.URL)
	if ref, ok := b.References[asin]; ok && asin != "" {
		if unknown := labels.Unknown(ref.Labels); len(unknown) > 0 {
			b.Logger.Warn("Reference labels outside the allowed set", "asin", asin, "labels", unknown)
		}
		return model.CatalogRecord{
			Name:        row.Title,
			Description: ref.Description,
			Labels:      strings.ToLower(ref.Labels),
			ImageLinks:  ref.ImageLinks,
			ProductLink: row.URL,
			Price:       ref.Price,
			Source:      model.SourceReference,
		}
	}

	desc, lbls := b.Generator.Generate(ctx, row.Title, RawText(row))
	return model.CatalogRecord{
		Name:        row.Title,
		Description: desc,
		Labels:      strings.ToLower(lbls),
		ImageLinks:  ImageURL(asin),
		ProductLink: row.URL,
		Price:       NormalizePrice(row.PriceText),
		Source:      model.SourceGenerated,
	}
}
