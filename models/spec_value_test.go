package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseSpecLocalized(t *testing.T) {
	v := ParseSpec(map[string]any{"en": "Oak", "vi": "Sồi"})
	require.Equal(t, SpecLocalized, v.Kind)
	assert.Equal(t, "Sồi", v.Render("vi"))
	assert.Equal(t, "Oak", v.Render("en"))
}

func TestParseSpecList(t *testing.T) {
	v := ParseSpec([]any{
		map[string]any{"en": "A", "vi": "B"},
		map[string]any{"en": "C", "vi": "D"},
	})
	require.Equal(t, SpecList, v.Kind)
	assert.Equal(t, "A, C", v.Render("en"))
	assert.Equal(t, "B, D", v.Render("vi"))
}

func TestParseSpecGroup(t *testing.T) {
	// Ordered document, as decoded from the database.
	v := ParseSpec(bson.D{
		{Key: "ban_lon", Value: bson.D{
			{Key: "dai", Value: "120cm"},
			{Key: "cao", Value: "45cm"},
		}},
		{Key: "ban_nho", Value: "60cm"},
	})
	require.Equal(t, SpecGroup, v.Kind)
	assert.Equal(t, "Large Table: Length: 120cm; Height: 45cm; Small Table: 60cm", v.Render("en"))
	assert.Equal(t, "Bàn lớn: Dài: 120cm; Cao: 45cm; Bàn nhỏ: 60cm", v.Render("vi"))
}

func TestParseSpecScalars(t *testing.T) {
	assert.Equal(t, "plain", ParseSpec("plain").Render("en"))
	assert.Equal(t, "2.5", ParseSpec(2.5).Render("en"))
	assert.Equal(t, "7", ParseSpec(int32(7)).Render("vi"))
	assert.Equal(t, "", ParseSpec(nil).Render("en"))
	assert.True(t, ParseSpec(nil).IsZero())
}

func TestParseSpecTwoKeyNonLocalized(t *testing.T) {
	// Two keys that are not en/vi stay a group, not a localized pair.
	v := ParseSpec(map[string]any{"dai": "10", "rong": "20"})
	require.Equal(t, SpecGroup, v.Kind)
	assert.Equal(t, "Length: 10; Width: 20", v.Render("en"))
}

func TestSpecKeyLabelFallback(t *testing.T) {
	assert.Equal(t, "Seat Height", SpecKeyLabel("chieu_cao_mat_ngoi", "en"))
	assert.Equal(t, "Chiều cao mặt ngồi", SpecKeyLabel("chieu_cao_mat_ngoi", "vi"))
	// Unknown keys fall back to Title Case of the snake_case key.
	assert.Equal(t, "Custom Spec Field", SpecKeyLabel("custom_spec_field", "en"))
	assert.Equal(t, "Custom Spec Field", SpecKeyLabel("custom_spec_field", "vi"))
}

func TestSpecValueJSONRoundTrip(t *testing.T) {
	var v SpecValue
	input := []byte(`{"khung":{"en":"Steel","vi":"Thép"},"chan_ghe":["A","B"]}`)
	require.NoError(t, json.Unmarshal(input, &v))
	require.Equal(t, SpecGroup, v.Kind)
	assert.Equal(t, "Legs: A, B; Frame: Steel", v.Render("en"))

	out, err := json.Marshal(v)
	require.NoError(t, err)

	var v2 SpecValue
	require.NoError(t, json.Unmarshal(out, &v2))
	assert.Equal(t, v.Render("vi"), v2.Render("vi"))
}

func TestSpecValueNeverPanicsOnOddShapes(t *testing.T) {
	shapes := []any{
		true,
		[]any{nil, 1, []any{"nested"}},
		map[string]any{"en": 5, "vi": "x"}, // en not a string: group, not localized
		map[string]any{},
		bson.A{bson.D{{Key: "en", Value: "a"}, {Key: "vi", Value: "b"}}},
	}
	for _, s := range shapes {
		assert.NotPanics(t, func() {
			_ = ParseSpec(s).Render("en")
			_ = ParseSpec(s).Render("vi")
		})
	}
}

func TestLocalizedTextIn(t *testing.T) {
	lt := LocalizedText{En: "Oak", Vi: "Sồi"}
	assert.Equal(t, "Sồi", lt.In("vi"))
	assert.Equal(t, "Oak", lt.In("en"))
	assert.Equal(t, "Oak", lt.In("fr"), "unknown languages default to English")
}

func TestMainImage(t *testing.T) {
	p := Product{Images: []ProductImage{
		{URL: "a", DisplayOrder: 1},
		{URL: "b", IsMain: true, DisplayOrder: 2},
	}}
	img, ok := p.MainImage()
	require.True(t, ok)
	assert.Equal(t, "b", img.URL)

	// No main flag: fall back to the first image.
	p.Images[1].IsMain = false
	img, ok = p.MainImage()
	require.True(t, ok)
	assert.Equal(t, "a", img.URL)

	p.Images = nil
	_, ok = p.MainImage()
	assert.False(t, ok)
}
