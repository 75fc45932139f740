package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	productdomain "github.com/novayra/storefront/internal/product/domain"
)

func (s *Server) AdminListProducts(c *gin.Context) {
	var req productdomain.AdminListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.productSvc.AdminList(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"products":   resp.Products,
		"categories": resp.Categories,
		"pagination": resp.PageInfo,
	})
}

func (s *Server) AdminGetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, productdomain.ErrNotFound)
		return
	}

	product, err := s.productSvc.AdminGet(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (s *Server) AdminCreateProduct(c *gin.Context) {
	var req productdomain.CreateRequest
	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		if file, err := c.FormFile("image"); err == nil {
			url, err := s.saveProductImage(c, file)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			req.ImageURL = &url
		}
	} else if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	product, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordActivity(c, "CREATE_PRODUCT", "products", product.ID.String(), map[string]any{
		"name":  product.Name,
		"price": product.Price,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

func (s *Server) AdminUpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, productdomain.ErrNotFound)
		return
	}

	var req productdomain.UpdateRequest
	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		if file, err := c.FormFile("image"); err == nil {
			url, err := s.saveProductImage(c, file)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			if existing, err := s.productSvc.AdminGet(c.Request.Context(), id); err == nil && existing.ImageURL != nil {
				s.removeUploadedImage(*existing.ImageURL)
			}
			req.ImageURL = &url
		}
	} else if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	product, err := s.productSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordActivity(c, "UPDATE_PRODUCT", "products", id.String(), map[string]any{
		"name": product.Name,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// AdminDeactivateProduct soft-deletes: the product disappears from the
// storefront but stays referenced by past orders.
func (s *Server) AdminDeactivateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, productdomain.ErrNotFound)
		return
	}

	if err := s.productSvc.Deactivate(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordActivity(c, "DELETE_PRODUCT", "products", id.String(), nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deactivated"})
}

type addImagesRequest struct {
	Images []productdomain.ImageRequest `json:"images"`
}

func (s *Server) AdminAddProductImages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, productdomain.ErrNotFound)
		return
	}

	var req addImagesRequest
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		files := form.File["images"]
		if len(files) > maxImagesPerUpload {
			files = files[:maxImagesPerUpload]
		}
		altTexts := form.Value["alt_texts"]
		for i, file := range files {
			url, err := s.saveProductImage(c, file)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			img := productdomain.ImageRequest{ImageURL: url}
			if i < len(altTexts) && altTexts[i] != "" {
				img.AltText = &altTexts[i]
			}
			req.Images = append(req.Images, img)
		}
	} else if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	images, err := s.productSvc.AddImages(c.Request.Context(), id, req.Images)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "images": images})
}

func (s *Server) AdminProductStats(c *gin.Context) {
	stats, err := s.productSvc.Stats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
