package utils

import "github.com/vietwoods/catalog-api/models"

// RemoveImages filters out images whose URL appears in urls. URLs that don't
// belong to the product are ignored. Returns the kept images in their
// original order and the URLs that were actually removed.
func RemoveImages(images []models.ProductImage, urls []string) ([]models.ProductImage, []string) {
	removeSet := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		removeSet[u] = struct{}{}
	}

	kept := make([]models.ProductImage, 0, len(images))
	removed := make([]string, 0, len(urls))
	for _, img := range images {
		if _, drop := removeSet[img.URL]; drop {
			removed = append(removed, img.URL)
			continue
		}
		kept = append(kept, img)
	}
	return kept, removed
}
