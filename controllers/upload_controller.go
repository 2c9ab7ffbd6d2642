package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/casacare/casacare-admin-api/services"
	"github.com/casacare/casacare-admin-api/utils"
)

// UploadImage handles POST /api/upload - accepts a multipart image and
// returns the stored file path
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "A file field is required",
		})
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Image storage is not configured",
		})
		return
	}

	path, err := imageService.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": uploadErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to store uploaded file",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Upload successful",
		"path":    path,
	})
}

// GetUploadedImage handles GET /api/uploads/:filename - serves images stored
// on local disk (the development/test storage backend)
func GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")

	// Prevent directory traversal
	if filename == "" || strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid filename",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := utils.AllowedImageFormats[ext]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Unsupported image type",
		})
		return
	}

	filePath := filepath.Join(utils.UploadDir, filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Image not found",
		})
		return
	}

	c.Header("Content-Type", utils.ContentTypeForFile(filename))
	c.Header("Cache-Control", "public, max-age=86400")
	c.File(filePath)
}
