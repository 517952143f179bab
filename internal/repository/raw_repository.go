package repository

import "productdb/internal/model"

// RawRepository reads the scraped catalog.
type RawRepository struct {
	Path string
}

func (r *RawRepository) List() ([]model.RawProduct, error) {
	idx, rows, err := readCSV(r.Path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(r.Path, idx, "title", "url"); err != nil {
		return nil, err
	}

	list := make([]model.RawProduct, 0, len(rows))
	for _, row := range rows {
		list = append(list, model.RawProduct{
			Title:              field(row, idx, "title"),
			URL:                field(row, idx, "url"),
			ProductDescription: field(row, idx, "productDescription"),
			AdditionalInfo:     field(row, idx, "additionalInfo"),
			AboutProduct:       field(row, idx, "aboutProduct"),
			PriceText:          field(row, idx, "wholePriceBlockText"),
		})
	}
	return list, nil
}
