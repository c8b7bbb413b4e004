package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/image"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

type ImageHandler struct {
	svc *application.ImageService
}

func NewImageHandler(svc *application.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// Upload godoc
// @Summary Attach an image to an item
// @Description Accepts one multipart file, re-encodes it into JPEG variants and appends it to the item's gallery.
// @Tags images
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param itemId path int true "Item ID"
// @Param file formData file true "Image file (max 10 MB)"
// @Success 201 {object} image.ItemImage
// @Failure 413 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /items/{itemId}/images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fileHeader.Size > application.MaxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: application.ErrImageTooLarge.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, application.MaxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read uploaded file"})
		return
	}

	img, err := h.svc.Upload(c.Request.Context(), middleware.UserID(c), itemID, fileHeader.Filename, data)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

// List godoc
// @Summary List an item's images in gallery order
// @Tags images
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {array} image.ItemImage
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{itemId}/images [get]
func (h *ImageHandler) List(c *gin.Context) {
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	images, err := h.svc.List(middleware.UserID(c), itemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if images == nil {
		images = []image.ItemImage{}
	}
	c.JSON(http.StatusOK, images)
}

// Reorder godoc
// @Summary Move an image to a new gallery position
// @Tags images
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param imageId path int true "Image ID"
// @Param request body image.ReorderImageInput true "Target zero-based position"
// @Success 200 {object} image.ItemImage
// @Failure 422 {object} response.ErrorResponse
// @Router /items/{itemId}/images/{imageId} [patch]
func (h *ImageHandler) Reorder(c *gin.Context) {
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	imageID, ok := uintParam(c, "imageId")
	if !ok {
		return
	}
	var input image.ReorderImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	img, err := h.svc.Reorder(middleware.UserID(c), itemID, imageID, input.Position)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

// Delete godoc
// @Summary Delete an image and its stored variants
// @Tags images
// @Security BearerAuth
// @Produce json
// @Param itemId path int true "Item ID"
// @Param imageId path int true "Image ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{itemId}/images/{imageId} [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	imageID, ok := uintParam(c, "imageId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), itemID, imageID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Image deleted"})
}

// Serve godoc
// @Summary Stream one JPEG variant of an image
// @Tags images
// @Produce jpeg
// @Param imageId path int true "Image ID"
// @Param variant path string true "original, medium or thumb"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse
// @Router /images/{imageId}/{variant} [get]
func (h *ImageHandler) Serve(c *gin.Context) {
	imageID, ok := uintParam(c, "imageId")
	if !ok {
		return
	}
	reader, err := h.svc.Open(c.Request.Context(), middleware.UserID(c), imageID, c.Param("variant"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Cache-Control", "private, max-age=3600")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		_ = c.Error(err)
	}
}
