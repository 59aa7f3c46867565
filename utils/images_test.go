package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vietwoods/catalog-api/models"
)

func TestRemoveImages(t *testing.T) {
	images := []models.ProductImage{
		{URL: "https://cdn/x/main.jpg", IsMain: true, DisplayOrder: 1},
		{URL: "https://cdn/x/view-2.jpg", DisplayOrder: 2},
		{URL: "https://cdn/x/view-3.jpg", DisplayOrder: 3},
	}

	kept, removed := RemoveImages(images, []string{
		"https://cdn/x/view-2.jpg",
		"https://cdn/other/not-ours.jpg",
	})

	assert.Len(t, kept, 2)
	assert.Equal(t, "https://cdn/x/main.jpg", kept[0].URL)
	assert.Equal(t, "https://cdn/x/view-3.jpg", kept[1].URL)
	assert.Equal(t, []string{"https://cdn/x/view-2.jpg"}, removed)
}

func TestRemoveImagesNoMatches(t *testing.T) {
	images := []models.ProductImage{{URL: "a"}}
	kept, removed := RemoveImages(images, []string{"b"})
	assert.Len(t, kept, 1)
	assert.Empty(t, removed)
}

func TestObjectNameFromGCSPublicURL(t *testing.T) {
	name, err := ObjectNameFromGCSPublicURL("bucket", "https://storage.googleapis.com/bucket/products/VWF1/main.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "products/VWF1/main.jpg", name)

	name, err = ObjectNameFromGCSPublicURL("bucket", "https://bucket.storage.googleapis.com/products/VWF1/view-2.png")
	assert.NoError(t, err)
	assert.Equal(t, "products/VWF1/view-2.png", name)

	_, err = ObjectNameFromGCSPublicURL("bucket", "https://storage.googleapis.com/other/whatever.jpg")
	assert.Error(t, err)

	_, err = ObjectNameFromGCSPublicURL("bucket", "https://example.com/whatever.jpg")
	assert.Error(t, err)
}
