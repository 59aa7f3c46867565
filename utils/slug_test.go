package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vietwoods/catalog-api/models"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name   string
		itemNo string
		want   string
	}{
		{"Minimalist Gold-Leg Bench", "VWF22A1091LX-9C", "minimalist-gold-leg-bench-vwf22a1091lx-9c"},
		{"S/2 Storage Ottoman", "VWF24A2064CG-18", "s-2-storage-ottoman-vwf24a2064cg-18"},
		{"  Spaced   Name  ", "AB1", "spaced-name-ab1"},
		// All-symbol names clean to nothing but still produce a valid slug.
		{"***", "X9", "-x9"},
		// Non-ASCII collapses to hyphens; accepted lossy behavior.
		{"Ghế Sồi", "VN1", "gh-s-i-vn1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveSlug(tt.name, tt.itemNo))
	}
}

func TestDeriveSlugDeterministic(t *testing.T) {
	a := DeriveSlug("Woven Rattan Tray", "VWF23B0012")
	b := DeriveSlug("Woven Rattan Tray", "VWF23B0012")
	assert.Equal(t, a, b)
}

func TestMatchSlug(t *testing.T) {
	products := []models.Product{
		{ItemNo: "VWF22A1091LX-9C", Name: models.LocalizedText{En: "Minimalist Gold-Leg Bench", Vi: "Ghế băng chân vàng"}},
		{ItemNo: "VWF24A2064CG-18", Name: models.LocalizedText{En: "S/2 Storage Ottoman", Vi: "Ghế đôn lưu trữ"}},
	}

	p, found := MatchSlug(products, "s-2-storage-ottoman-vwf24a2064cg-18")
	assert.True(t, found)
	assert.Equal(t, "VWF24A2064CG-18", p.ItemNo)

	_, found = MatchSlug(products, "no-such-product-xx0")
	assert.False(t, found)
}

func TestMatchSlugEmptySet(t *testing.T) {
	_, found := MatchSlug(nil, "anything-at-all")
	assert.False(t, found)
}
