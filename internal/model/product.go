package model

// RawProduct is one scraped row of the raw catalog.
type RawProduct struct {
	Title              string
	URL                string
	ProductDescription string
	AdditionalInfo     string
	AboutProduct       string
	PriceText          string // wholePriceBlockText
}

// ReferenceProduct holds the curated fields of the reference sheet.
type ReferenceProduct struct {
	Description string
	Labels      string
	ImageLinks  string
	Price       string
}

type Source string

const (
	SourceReference Source = "reference"
	SourceGenerated Source = "generated"
)

// CatalogRecord is one row of the cleaned catalog. The id column is the
// record position and is assigned by the writers.
type CatalogRecord struct {
	Name        string
	Description string
	Labels      string
	ImageLinks  string
	ProductLink string
	Price       string
	Source      Source
}

// CatalogColumns is the header of the cleaned catalog and of the reference sheet.
var CatalogColumns = []string{"id", "name", "description", "labels", "image_links", "product_link", "price"}
