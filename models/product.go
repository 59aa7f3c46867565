package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LocalizedText carries parallel English/Vietnamese variants of a value.
type LocalizedText struct {
	En string `bson:"en" json:"en"`
	Vi string `bson:"vi" json:"vi"`
}

// In returns the variant for the given language code, defaulting to English.
func (l LocalizedText) In(lang string) string {
	if lang == "vi" {
		return l.Vi
	}
	return l.En
}

// LocalizedLines holds bullet-line content per language (product descriptions).
type LocalizedLines struct {
	En []string `bson:"en,omitempty" json:"en,omitempty"`
	Vi []string `bson:"vi,omitempty" json:"vi,omitempty"`
}

func (l LocalizedLines) In(lang string) []string {
	if lang == "vi" {
		return l.Vi
	}
	return l.En
}

type ProductImage struct {
	URL          string `bson:"url" json:"url"`
	IsMain       bool   `bson:"isMain" json:"isMain"`
	DisplayOrder int    `bson:"displayOrder" json:"displayOrder"`
}

type Product struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemNo string        `bson:"itemNo" json:"itemNo"`
	// Category is the display label; CategoryID is set when the product
	// references a managed category record.
	Category   string        `bson:"category" json:"category"`
	CategoryID bson.ObjectID `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Name       LocalizedText `bson:"name" json:"name"`

	Description LocalizedLines `bson:"description,omitempty" json:"description,omitempty"`

	// Semi-structured specification fields. Shapes vary across records
	// (plain strings, en/vi pairs, lists, nested groups), so these are
	// parsed into the SpecValue variant rather than fixed structs.
	Material      SpecValue `bson:"material,omitempty" json:"material,omitempty"`
	Dimensions    SpecValue `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	SetComponents SpecValue `bson:"setComponents,omitempty" json:"setComponents,omitempty"`
	PackingSize   SpecValue `bson:"packingSize,omitempty" json:"packingSize,omitempty"`

	Images []ProductImage `bson:"images" json:"images"`

	// Logistics metadata, language-independent.
	Prices            string `bson:"prices,omitempty" json:"prices,omitempty"`
	MOQ               string `bson:"moq,omitempty" json:"moq,omitempty"`
	InnerPack         string `bson:"innerPack,omitempty" json:"innerPack,omitempty"`
	ContainerCapacity string `bson:"containerCapacity,omitempty" json:"containerCapacity,omitempty"`
	CartonCBM         string `bson:"cartonCBM,omitempty" json:"cartonCBM,omitempty"`
	PackagingType     string `bson:"packagingType,omitempty" json:"packagingType,omitempty"`
	Remark            string `bson:"remark,omitempty" json:"remark,omitempty"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MainImage returns the image flagged as main, falling back to the first
// image when none is flagged. ok is false for products without images.
func (p Product) MainImage() (ProductImage, bool) {
	for _, img := range p.Images {
		if img.IsMain {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}
	return ProductImage{}, false
}
