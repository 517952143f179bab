package repository

import (
	"productdb/internal/catalog"
	"productdb/internal/model"
)

// referenceMinFields is the column count of a complete reference row.
const referenceMinFields = 7

// ReferenceRepository reads the curated reference sheet.
type ReferenceRepository struct {
	Path string
}

// Load indexes the reference rows by the identifier found in their
// product_link. Short rows and rows without an identifier are skipped.
func (r *ReferenceRepository) Load() (map[string]model.ReferenceProduct, error) {
	idx, rows, err := readCSV(r.Path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(r.Path, idx, "description", "labels", "image_links", "product_link", "price"); err != nil {
		return nil, err
	}

	refs := make(map[string]model.ReferenceProduct)
	for _, row := range rows {
		if len(row) < referenceMinFields || idx["description"] >= len(row) {
			continue
		}
		asin := catalog.ExtractASIN(field(row, idx, "product_link"))
		if asin == "" {
			continue
		}
		refs[asin] = model.ReferenceProduct{
			Description: row[idx["description"]],
			Labels:      field(row, idx, "labels"),
			ImageLinks:  field(row, idx, "image_links"),
			Price:       field(row, idx, "price"),
		}
	}
	return refs, nil
}
