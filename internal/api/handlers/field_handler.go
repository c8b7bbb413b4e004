package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

type FieldHandler struct {
	svc *application.FieldService
}

func NewFieldHandler(svc *application.FieldService) *FieldHandler {
	return &FieldHandler{svc: svc}
}

// List godoc
// @Summary List a collection's field definitions
// @Tags fields
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {array} field.Definition
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/fields [get]
func (h *FieldHandler) List(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	defs, err := h.svc.List(middleware.UserID(c), collectionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if defs == nil {
		defs = []field.Definition{}
	}
	c.JSON(http.StatusOK, defs)
}

// Create godoc
// @Summary Add a field definition to a collection
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param request body field.CreateFieldInput true "Field payload"
// @Success 201 {object} field.Definition
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /collections/{id}/fields [post]
func (h *FieldHandler) Create(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input field.CreateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.svc.Create(middleware.UserID(c), collectionID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, def)
}

// Update godoc
// @Summary Change a field definition
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param fieldId path int true "Field ID"
// @Param request body field.UpdateFieldInput true "Changes"
// @Success 200 {object} field.Definition
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/fields/{fieldId} [patch]
func (h *FieldHandler) Update(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := uintParam(c, "fieldId")
	if !ok {
		return
	}
	var input field.UpdateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.svc.Update(middleware.UserID(c), collectionID, fieldID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

// Delete godoc
// @Summary Remove a field definition
// @Tags fields
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Param fieldId path int true "Field ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/fields/{fieldId} [delete]
func (h *FieldHandler) Delete(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := uintParam(c, "fieldId")
	if !ok {
		return
	}
	if err := h.svc.Delete(middleware.UserID(c), collectionID, fieldID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Field deleted"})
}

// Reorder godoc
// @Summary Reorder a collection's fields
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param request body field.ReorderFieldsInput true "Complete ordered field id list"
// @Success 200 {array} field.Definition
// @Failure 422 {object} response.ErrorResponse
// @Router /collections/{id}/fields/reorder [put]
func (h *FieldHandler) Reorder(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input field.ReorderFieldsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	defs, err := h.svc.Reorder(middleware.UserID(c), collectionID, input.FieldIDs)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, defs)
}
