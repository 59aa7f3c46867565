package utils

import (
	"regexp"
	"strings"

	"github.com/vietwoods/catalog-api/models"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug builds the public URL segment for a product from its English
// name and item number. Runs of characters outside [a-z0-9] collapse to a
// single hyphen and the item number is appended verbatim (lowercased only).
// Non-ASCII letters are dropped by the cleaner; that loss is intentional
// since English names are ASCII in practice.
func DeriveSlug(nameEN, itemNo string) string {
	s := strings.ToLower(nameEN)
	s = slugCleaner.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s + "-" + strings.ToLower(itemNo)
}

// ProductSlug derives the slug for a product record.
func ProductSlug(p models.Product) string {
	return DeriveSlug(p.Name.En, p.ItemNo)
}

// MatchSlug scans products in the order given and returns the first one
// whose derived slug equals slug. Slugs are not stored, so resolution is a
// linear scan; with a catalog of this size that is fine at page-render time.
func MatchSlug(products []models.Product, slug string) (models.Product, bool) {
	for _, p := range products {
		if ProductSlug(p) == slug {
			return p, true
		}
	}
	return models.Product{}, false
}
