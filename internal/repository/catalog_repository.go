package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"productdb/internal/model"
)

// CatalogCSV writes the cleaned catalog. Rows are numbered from 1 in the
// order given; fields are quoted only when needed. Records end in "\n",
// not "\r\n".
type CatalogCSV struct {
	Path string
}

func (c *CatalogCSV) Save(records []model.CatalogRecord) error {
	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.CatalogColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1),
			r.Name,
			r.Description,
			r.Labels,
			r.ImageLinks,
			r.ProductLink,
			r.Price,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Path, err)
	}
	return f.Close()
}
