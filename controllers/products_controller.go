package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/vietwoods/catalog-api/database"
	"github.com/vietwoods/catalog-api/dto"
	"github.com/vietwoods/catalog-api/models"
	"github.com/vietwoods/catalog-api/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// productResponse adds the derived slug so clients can build product URLs
// without re-implementing the derivation.
type productResponse struct {
	models.Product
	Slug string `json:"slug"`
}

func toResponse(p models.Product) productResponse {
	return productResponse{Product: p, Slug: utils.ProductSlug(p)}
}

func fetchProducts(c *gin.Context, filter bson.M) ([]models.Product, error) {
	col := database.OpenCollection("products")
	ctx := c.Request.Context()

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, cursor.Err()
}

// GetProducts lists active products, optionally filtered by category label.
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{"isActive": true}
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		products, err := fetchProducts(c, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		items := make([]productResponse, 0, len(products))
		for _, p := range products {
			items = append(items, toResponse(p))
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetProductBySlug resolves a public product URL. Slugs are not stored:
// every active product's slug is derived on the fly and the first exact
// match wins. With ?lang=en|vi the response carries the specification
// fields rendered for that language.
func GetProductBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.Param("slug"))

		products, err := fetchProducts(c, bson.M{"isActive": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		product, found := utils.MatchSlug(products, slug)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		resp := gin.H{"product": toResponse(product)}
		if lang := c.Query("lang"); lang == "en" || lang == "vi" {
			resp["rendered"] = gin.H{
				"description":   product.Description.In(lang),
				"dimensions":    product.Dimensions.Render(lang),
				"material":      product.Material.Render(lang),
				"setComponents": product.SetComponents.Render(lang),
				"packingSize":   product.PackingSize.Render(lang),
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AdminListProducts includes inactive products for the back office.
func AdminListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		if b, err := utils.ParseBoolQuery(c.Query("isActive")); err == nil && b != nil {
			filter["isActive"] = *b
		}

		products, err := fetchProducts(c, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		items := make([]productResponse, 0, len(products))
		for _, p := range products {
			items = append(items, toResponse(p))
		}
		c.JSON(http.StatusOK, items)
	}
}

func AddProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if strings.TrimSpace(body.Name.En) == "" || strings.TrimSpace(body.Name.Vi) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name requires both en and vi"})
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		now := time.Now().UTC()
		product := models.Product{
			ItemNo:            strings.TrimSpace(body.ItemNo),
			Category:          strings.TrimSpace(body.Category),
			Name:              body.Name,
			Description:       body.Description,
			Material:          body.Material,
			Dimensions:        body.Dimensions,
			SetComponents:     body.SetComponents,
			PackingSize:       body.PackingSize,
			Images:            []models.ProductImage{},
			Prices:            body.Prices,
			MOQ:               body.MOQ,
			InnerPack:         body.InnerPack,
			ContainerCapacity: body.ContainerCapacity,
			CartonCBM:         body.CartonCBM,
			PackagingType:     body.PackagingType,
			Remark:            body.Remark,
			IsActive:          true,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if body.IsActive != nil {
			product.IsActive = *body.IsActive
		}

		// Link the managed category record when one matches the label.
		var cat models.Category
		catsCol := database.OpenCollection("categories")
		if err := catsCol.FindOne(ctx, bson.M{"name": product.Category}).Decode(&cat); err == nil {
			product.CategoryID = cat.Id
		}

		res, err := col.InsertOne(ctx, product)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "item number already exists", "field": "itemNo"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		product.ID = res.InsertedID.(bson.ObjectID)
		c.JSON(http.StatusCreated, toResponse(product))
	}
}

// UpdateProduct applies a partial update; only supplied fields change.
// Products are never hard-deleted, deactivation goes through isActive here.
func UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		prodID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		var body dto.UpdateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		var product models.Product
		if err := col.FindOne(ctx, bson.M{"_id": prodID}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		set := bson.M{}
		if body.ItemNo != nil {
			set["itemNo"] = strings.TrimSpace(*body.ItemNo)
		}
		if body.Category != nil {
			set["category"] = strings.TrimSpace(*body.Category)
		}
		if body.Name != nil {
			if strings.TrimSpace(body.Name.En) == "" || strings.TrimSpace(body.Name.Vi) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name requires both en and vi"})
				return
			}
			set["name"] = *body.Name
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.Material != nil {
			set["material"] = *body.Material
		}
		if body.Dimensions != nil {
			set["dimensions"] = *body.Dimensions
		}
		if body.SetComponents != nil {
			set["setComponents"] = *body.SetComponents
		}
		if body.PackingSize != nil {
			set["packingSize"] = *body.PackingSize
		}
		if body.Prices != nil {
			set["prices"] = *body.Prices
		}
		if body.MOQ != nil {
			set["moq"] = *body.MOQ
		}
		if body.InnerPack != nil {
			set["innerPack"] = *body.InnerPack
		}
		if body.ContainerCapacity != nil {
			set["containerCapacity"] = *body.ContainerCapacity
		}
		if body.CartonCBM != nil {
			set["cartonCBM"] = *body.CartonCBM
		}
		if body.PackagingType != nil {
			set["packagingType"] = *body.PackagingType
		}
		if body.Remark != nil {
			set["remark"] = *body.Remark
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}

		var removedURLs []string
		if len(body.RemovedImageUrls) > 0 {
			kept, removed := utils.RemoveImages(product.Images, body.RemovedImageUrls)
			set["images"] = kept
			removedURLs = removed
		}

		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}
		set["updatedAt"] = time.Now().UTC()

		if _, err := col.UpdateByID(ctx, prodID, bson.M{"$set": set}); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "item number already exists", "field": "itemNo"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// DB update went fine; removing the stored objects is best effort.
		if len(removedURLs) > 0 {
			gcs, bucket, err := utils.NewGCSClient(ctx)
			if err == nil {
				objects := make([]string, 0, len(removedURLs))
				for _, u := range removedURLs {
					if name, err := utils.ObjectNameFromGCSPublicURL(bucket, u); err == nil {
						objects = append(objects, name)
					}
				}
				if err := utils.DeleteGCSObjects(ctx, gcs, bucket, objects); err != nil {
					logrus.WithError(err).Warn("failed to delete removed product images")
				}
				_ = gcs.Close()
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// UploadProductImages appends uploaded files to a product's image list.
func UploadProductImages(v *utils.FileValidator, maxImages int) gin.HandlerFunc {
	return func(c *gin.Context) {
		prodID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no images provided"})
			return
		}

		for _, fh := range files {
			if _, err := v.ValidateFile(fh); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		var product models.Product
		if err := col.FindOne(ctx, bson.M{"_id": prodID}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		if len(product.Images)+len(files) > maxImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": "too many images", "max": maxImages})
			return
		}

		gcs, bucket, err := utils.NewGCSClient(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create storage client"})
			return
		}
		defer gcs.Close()

		uploaded, err := utils.UploadProductImages(ctx, gcs, bucket, product.ItemNo, product.Images, files)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		images := append(product.Images, uploaded...)
		_, err = col.UpdateByID(ctx, prodID, bson.M{"$set": bson.M{
			"images":    images,
			"updatedAt": time.Now().UTC(),
		}})
		if err != nil {
			// Roll back the stored objects so the bucket doesn't accumulate
			// orphans for a record that never pointed at them.
			objects := make([]string, 0, len(uploaded))
			for _, img := range uploaded {
				if name, err := utils.ObjectNameFromGCSPublicURL(bucket, img.URL); err == nil {
					objects = append(objects, name)
				}
			}
			_ = utils.DeleteGCSObjects(ctx, gcs, bucket, objects)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db update failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"images": images})
	}
}
