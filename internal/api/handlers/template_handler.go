package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/template"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

const maxTemplateYAMLBytes = 256 * 1024

type TemplateHandler struct {
	svc *application.TemplateService
}

func NewTemplateHandler(svc *application.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// List godoc
// @Summary List the caller's schema templates
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} template.SchemaTemplate
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.svc.List(middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if templates == nil {
		templates = []template.SchemaTemplate{}
	}
	c.JSON(http.StatusOK, templates)
}

// Get godoc
// @Summary Get a template with its ordered fields
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} template.TemplateResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	tpl, err := h.svc.Get(middleware.UserID(c), templateID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Create godoc
// @Summary Create a schema template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body template.CreateTemplateInput true "Template name and optional fields"
// @Success 201 {object} template.TemplateResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var input template.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	tpl, err := h.svc.Create(middleware.UserID(c), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// Update godoc
// @Summary Rename a template or replace its field set
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body template.UpdateTemplateInput true "Changes; fields, when present, replace all existing fields"
// @Success 200 {object} template.TemplateResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /templates/{id} [patch]
func (h *TemplateHandler) Update(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input template.UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	tpl, err := h.svc.Update(middleware.UserID(c), templateID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Delete godoc
// @Summary Delete a template
// @Description Collections created from the template keep their fields; only the template goes away.
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(middleware.UserID(c), templateID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Template deleted"})
}

type copyTemplateInput struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=200"`
}

// Copy godoc
// @Summary Duplicate a template with all of its fields
// @Description Without an explicit name the copy is called "<name> (Copy)", then "<name> (Copy 2)" and so on.
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body copyTemplateInput false "Optional name for the copy"
// @Success 201 {object} template.TemplateResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /templates/{id}/copy [post]
func (h *TemplateHandler) Copy(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input copyTemplateInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}
	tpl, err := h.svc.Copy(middleware.UserID(c), templateID, input.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// Export godoc
// @Summary Export a template as YAML
// @Tags templates
// @Security BearerAuth
// @Produce plain
// @Param id path int true "Template ID"
// @Success 200 {string} string "YAML document"
// @Failure 404 {object} response.ErrorResponse
// @Router /templates/{id}/export [get]
func (h *TemplateHandler) Export(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	data, err := h.svc.ExportYAML(middleware.UserID(c), templateID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", data)
}

// Import godoc
// @Summary Import a template from YAML
// @Tags templates
// @Security BearerAuth
// @Accept plain
// @Produce json
// @Success 201 {object} template.TemplateResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /templates/import [post]
func (h *TemplateHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxTemplateYAMLBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read request body"})
		return
	}
	tpl, err := h.svc.ImportYAML(middleware.UserID(c), data)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// CreateField godoc
// @Summary Append a field to a template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body template.TemplateFieldInput true "Field definition"
// @Success 201 {object} template.SchemaTemplateField
// @Failure 409 {object} response.ErrorResponse
// @Router /templates/{id}/fields [post]
func (h *TemplateHandler) CreateField(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input template.TemplateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.svc.CreateField(middleware.UserID(c), templateID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// UpdateField godoc
// @Summary Change a template field
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param fieldId path int true "Field ID"
// @Param request body template.UpdateTemplateFieldInput true "Changes"
// @Success 200 {object} template.SchemaTemplateField
// @Failure 409 {object} response.ErrorResponse
// @Router /templates/{id}/fields/{fieldId} [patch]
func (h *TemplateHandler) UpdateField(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := uintParam(c, "fieldId")
	if !ok {
		return
	}
	var input template.UpdateTemplateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.svc.UpdateField(middleware.UserID(c), templateID, fieldID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// DeleteField godoc
// @Summary Remove a field from a template
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Template ID"
// @Param fieldId path int true "Field ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /templates/{id}/fields/{fieldId} [delete]
func (h *TemplateHandler) DeleteField(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := uintParam(c, "fieldId")
	if !ok {
		return
	}
	if err := h.svc.DeleteField(middleware.UserID(c), templateID, fieldID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Field deleted"})
}

// ReorderFields godoc
// @Summary Reorder all fields of a template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body template.ReorderTemplateFieldsInput true "Complete permutation of field IDs"
// @Success 200 {array} template.SchemaTemplateField
// @Failure 422 {object} response.ErrorResponse
// @Router /templates/{id}/fields/reorder [put]
func (h *TemplateHandler) ReorderFields(c *gin.Context) {
	templateID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input template.ReorderTemplateFieldsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	fields, err := h.svc.ReorderFields(middleware.UserID(c), templateID, input.FieldIDs)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}
