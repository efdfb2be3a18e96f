package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trends-shop/models"
	"trends-shop/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// List godoc
// @Summary List products
// @Description List the whole product catalog, newest first
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /product/list [get]
func (ctrl *ProductController) List(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// Single godoc
// @Summary Get single product
// @Description Get one product by id
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.SingleProductRequest true "Product Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /product/single [post]
func (ctrl *ProductController) Single(c *gin.Context) {
	var req models.SingleProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.products.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// Add godoc
// @Summary Add product
// @Description Create a product with up to four images (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param price formData number true "Price"
// @Param category formData string true "Category"
// @Param subCategory formData string true "Sub category"
// @Param sizes formData string true "Sizes as JSON array"
// @Param bestseller formData boolean false "Bestseller flag"
// @Param image1 formData file false "Image 1"
// @Param image2 formData file false "Image 2"
// @Param image3 formData file false "Image 3"
// @Param image4 formData file false "Image 4"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /product/add [post]
func (ctrl *ProductController) Add(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	category := c.PostForm("category")
	subCategory := c.PostForm("subCategory")

	if name == "" || description == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, description and category are required"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	sizes := []string{}
	if raw := c.PostForm("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid sizes"})
			return
		}
	}

	bestseller := c.PostForm("bestseller") == "true"

	images := []*multipart.FileHeader{}
	for _, field := range []string{"image1", "image2", "image3", "image4"} {
		if file, err := c.FormFile(field); err == nil {
			images = append(images, file)
		}
	}

	product, err := ctrl.products.Create(c.Request.Context(), services.CreateProductInput{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		SubCategory: subCategory,
		Sizes:       sizes,
		Bestseller:  bestseller,
		Images:      images,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product Added", "product": product})
}

// Remove godoc
// @Summary Remove product
// @Description Delete a product from the catalog (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RemoveProductRequest true "Remove Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /product/remove [post]
func (ctrl *ProductController) Remove(c *gin.Context) {
	var req models.RemoveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.products.Remove(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Removed"})
}
