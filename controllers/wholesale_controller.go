package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/models"
	"gorm.io/gorm"
)

// --- Categories ---

// CategoryRequest represents the request body for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCategories handles GET /api/v1/wholesale/categories
func ListCategories(c *gin.Context) {
	db := config.GetDB()

	var categories []models.ProductCategory
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch categories",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

// CreateCategory handles POST /api/v1/wholesale/categories
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	category := models.ProductCategory{Name: strings.TrimSpace(req.Name)}
	if err := config.GetDB().Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create category",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    category,
	})
}

// UpdateCategory handles PUT /api/v1/wholesale/categories/:id
func UpdateCategory(c *gin.Context) {
	db := config.GetDB()

	var category models.ProductCategory
	if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CATEGORY_NOT_FOUND",
				"message": "Category not found",
			},
		})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	category.Name = strings.TrimSpace(req.Name)
	if err := db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update category",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    category,
	})
}

// DeleteCategory handles DELETE /api/v1/wholesale/categories/:id -
// removes the category with its shops and products in one transaction.
func DeleteCategory(c *gin.Context) {
	db := config.GetDB()
	categoryID := c.Param("id")

	var category models.ProductCategory
	if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CATEGORY_NOT_FOUND",
				"message": "Category not found",
			},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", categoryID).Delete(&models.WholesaleProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", categoryID).Delete(&models.Shop{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete category",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// --- Shops ---

// ShopRequest represents the request body for creating or renaming a shop
type ShopRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
}

// ListShops handles GET /api/v1/wholesale/shops - optionally filtered
// by ?category_id=
func ListShops(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Category").Order("name ASC")
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var shops []models.Shop
	if err := query.Find(&shops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch shops",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    shops,
	})
}

// CreateShop handles POST /api/v1/wholesale/shops
func CreateShop(c *gin.Context) {
	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var category models.ProductCategory
	if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CATEGORY_NOT_FOUND",
				"message": "Category not found",
			},
		})
		return
	}

	shop := models.Shop{Name: strings.TrimSpace(req.Name), CategoryID: category.ID}
	if err := db.Create(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create shop",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    shop,
	})
}

// UpdateShop handles PUT /api/v1/wholesale/shops/:id
func UpdateShop(c *gin.Context) {
	db := config.GetDB()

	var shop models.Shop
	if err := db.First(&shop, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SHOP_NOT_FOUND",
				"message": "Shop not found",
			},
		})
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	var category models.ProductCategory
	if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CATEGORY_NOT_FOUND",
				"message": "Category not found",
			},
		})
		return
	}

	shop.Name = strings.TrimSpace(req.Name)
	shop.CategoryID = category.ID
	if err := db.Save(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update shop",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    shop,
	})
}

// DeleteShop handles DELETE /api/v1/wholesale/shops/:id - detaches the
// shop's products rather than deleting them.
func DeleteShop(c *gin.Context) {
	db := config.GetDB()

	var shop models.Shop
	if err := db.First(&shop, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SHOP_NOT_FOUND",
				"message": "Shop not found",
			},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WholesaleProduct{}).Where("shop_id = ?", shop.ID).Update("shop_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&shop).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete shop",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// --- Products ---

// ProductRequest represents the request body for creating or updating
// a wholesale product.
type ProductRequest struct {
	NameEn        string   `json:"name_en" binding:"required"`
	NameAr        *string  `json:"name_ar"`
	NameKu        *string  `json:"name_ku"`
	DescriptionEn *string  `json:"description_en"`
	DescriptionAr *string  `json:"description_ar"`
	DescriptionKu *string  `json:"description_ku"`
	Price         *float64 `json:"price" binding:"required"`
	StockQuantity *int     `json:"stock_quantity"`
	CategoryID    *string  `json:"category_id"`
	ShopID        *string  `json:"shop_id"`
	IsActive      *bool    `json:"is_active"`
	ImageURL      *string  `json:"image_url"`
	ImageURLs     []string `json:"image_urls"`
}

// ListProducts handles GET /api/v1/wholesale/products - optional
// ?category_id= and ?shop_id= filters, inactive products included so
// the admin can re-enable them.
func ListProducts(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Category").Preload("Shop").
		Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("display_order ASC") }).
		Order("created_at DESC")
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if shopID := c.Query("shop_id"); shopID != "" {
		query = query.Where("shop_id = ?", shopID)
	}

	var products []models.WholesaleProduct
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch products",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// CreateProduct handles POST /api/v1/wholesale/products
func CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}
	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Price must be greater than or equal to 0",
			},
		})
		return
	}

	product := models.WholesaleProduct{
		NameEn:        strings.TrimSpace(req.NameEn),
		NameAr:        req.NameAr,
		NameKu:        req.NameKu,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionKu: req.DescriptionKu,
		Price:         *req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		ShopID:        req.ShopID,
		IsActive:      true,
		ImageURL:      req.ImageURL,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return replaceProductImages(tx, product.ID, req.ImageURLs)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create product",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// UpdateProduct handles PUT /api/v1/wholesale/products/:id - full
// update; the image gallery is replaced wholesale when image_urls is
// present, matching how the dashboard edits products.
func UpdateProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.WholesaleProduct
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}
	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Price must be greater than or equal to 0",
			},
		})
		return
	}

	product.NameEn = strings.TrimSpace(req.NameEn)
	product.NameAr = req.NameAr
	product.NameKu = req.NameKu
	product.DescriptionEn = req.DescriptionEn
	product.DescriptionAr = req.DescriptionAr
	product.DescriptionKu = req.DescriptionKu
	product.Price = *req.Price
	product.StockQuantity = req.StockQuantity
	product.CategoryID = req.CategoryID
	product.ShopID = req.ShopID
	product.ImageURL = req.ImageURL
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		if req.ImageURLs != nil {
			return replaceProductImages(tx, product.ID, req.ImageURLs)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update product",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// DeleteProduct handles DELETE /api/v1/wholesale/products/:id
func DeleteProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.WholesaleProduct
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete product",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

func replaceProductImages(tx *gorm.DB, productID string, urls []string) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	for i, url := range urls {
		img := models.ProductImage{ProductID: productID, ImageURL: url, DisplayOrder: i}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}
