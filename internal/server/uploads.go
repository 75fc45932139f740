package server

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxImageSize       = 5 << 20
	maxImagesPerUpload = 5
)

var ErrInvalidImage = errors.New("only image files are allowed")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".svg":  true,
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// saveProductImage stores an uploaded file under the upload directory
// and returns the public URL path it will be served from.
func (s *Server) saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] || file.Size > maxImageSize {
		return "", ErrInvalidImage
	}

	dir := filepath.Join(s.cfg.UploadDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("product-%s%s", uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/products/" + name, nil
}

// removeUploadedImage deletes a replaced upload. Best effort: a stale
// file on disk is not worth failing the product update over.
func (s *Server) removeUploadedImage(imageURL string) {
	rel, ok := strings.CutPrefix(imageURL, "/uploads/")
	if !ok {
		return
	}

	path := filepath.Join(s.cfg.UploadDir, filepath.Clean(rel))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("failed to delete old product image",
			zap.String("path", path),
			zap.Error(err))
	}
}
