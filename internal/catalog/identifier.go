package catalog

import "regexp"

var reASIN = regexp.MustCompile(`/dp/([A-Z0-9]{9,10})`)

// ExtractASIN returns the product identifier embedded in an Amazon product
// URL ("/dp/<ASIN>"), or "" when the URL carries none.
func ExtractASIN(url string) string {
	if m := reASIN.FindStringSubmatch(url); len(m) > 1 {
		return m[1]
	}
	return ""
}

// ImageURL builds the default product image link for an identifier.
func ImageURL(asin string) string {
	if asin == "" {
		return ""
	}
	return "https://images-na.ssl-images-amazon.com/images/P/" + asin + ".01.jpg"
}
