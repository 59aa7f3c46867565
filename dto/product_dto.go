package dto

import "github.com/vietwoods/catalog-api/models"

type CreateProductDTO struct {
	ItemNo   string               `json:"itemNo" binding:"required"`
	Category string               `json:"category" binding:"required"`
	Name     models.LocalizedText `json:"name" binding:"required"`

	Description   models.LocalizedLines `json:"description"`
	Material      models.SpecValue      `json:"material"`
	Dimensions    models.SpecValue      `json:"dimensions"`
	SetComponents models.SpecValue      `json:"setComponents"`
	PackingSize   models.SpecValue      `json:"packingSize"`

	Prices            string `json:"prices"`
	MOQ               string `json:"moq"`
	InnerPack         string `json:"innerPack"`
	ContainerCapacity string `json:"containerCapacity"`
	CartonCBM         string `json:"cartonCBM"`
	PackagingType     string `json:"packagingType"`
	Remark            string `json:"remark"`

	IsActive *bool `json:"isActive"`
}

// UpdateProductDTO — all fields are optional pointers; only supplied fields
// change.
type UpdateProductDTO struct {
	ItemNo   *string               `json:"itemNo,omitempty"`
	Category *string               `json:"category,omitempty"`
	Name     *models.LocalizedText `json:"name,omitempty"`

	Description   *models.LocalizedLines `json:"description,omitempty"`
	Material      *models.SpecValue      `json:"material,omitempty"`
	Dimensions    *models.SpecValue      `json:"dimensions,omitempty"`
	SetComponents *models.SpecValue      `json:"setComponents,omitempty"`
	PackingSize   *models.SpecValue      `json:"packingSize,omitempty"`

	Prices            *string `json:"prices,omitempty"`
	MOQ               *string `json:"moq,omitempty"`
	InnerPack         *string `json:"innerPack,omitempty"`
	ContainerCapacity *string `json:"containerCapacity,omitempty"`
	CartonCBM         *string `json:"cartonCBM,omitempty"`
	PackagingType     *string `json:"packagingType,omitempty"`
	Remark            *string `json:"remark,omitempty"`

	IsActive *bool `json:"isActive,omitempty"`

	RemovedImageUrls []string `json:"removedImageUrls,omitempty"`
}
