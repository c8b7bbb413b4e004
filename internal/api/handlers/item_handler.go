package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

type ItemHandler struct {
	svc    *application.ItemService
	fields *application.FieldService
}

func NewItemHandler(svc *application.ItemService, fields *application.FieldService) *ItemHandler {
	return &ItemHandler{svc: svc, fields: fields}
}

func (h *ItemHandler) parseQuery(c *gin.Context, collectionID uint, ownerID uint) (item.ListQuery, bool) {
	defs, err := h.fields.ListVisible(ownerID, collectionID)
	if err != nil {
		writeServiceError(c, err)
		return item.ListQuery{}, false
	}

	q, err := application.ParseListQuery(
		defs,
		c.Query("search"),
		c.QueryArray("filter"),
		c.Query("sort"),
		intQuery(c, "offset", 0),
		intQuery(c, "limit", 0),
	)
	if err != nil {
		writeServiceError(c, err)
		return item.ListQuery{}, false
	}
	return q, true
}

// List godoc
// @Summary List items of one of the user's collections
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Param search query string false "Match against item name and notes"
// @Param filter query []string false "Metadata filters, Field=Value"
// @Param sort query string false "name, created_at or metadata:<field>, '-' prefix for descending"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Pagination limit (max 100)"
// @Success 200 {array} item.WithPrimaryImage
// @Failure 422 {object} response.ErrorResponse
// @Router /collections/{id}/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	userID := middleware.UserID(c)
	q, ok := h.parseQuery(c, collectionID, userID)
	if !ok {
		return
	}

	items, err := h.svc.List(userID, collectionID, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if items == nil {
		items = []item.WithPrimaryImage{}
	}
	c.JSON(http.StatusOK, items)
}

// ListPublic godoc
// @Summary List the published items of a public collection
// @Tags public
// @Produce json
// @Param id path int true "Collection ID"
// @Param search query string false "Match against item name and notes"
// @Param filter query []string false "Metadata filters, Field=Value"
// @Param sort query string false "Sort key"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Pagination limit (max 100)"
// @Success 200 {array} item.WithPrimaryImage
// @Failure 404 {object} response.ErrorResponse
// @Router /public/collections/{id}/items [get]
func (h *ItemHandler) ListPublic(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	q, ok := h.parseQuery(c, collectionID, middleware.UserID(c))
	if !ok {
		return
	}

	items, err := h.svc.ListPublic(collectionID, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if items == nil {
		items = []item.WithPrimaryImage{}
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get one item
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} item.WithPrimaryImage
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	it, err := h.svc.Get(middleware.UserID(c), collectionID, itemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// GetPublic godoc
// @Summary Get one published item of a public collection
// @Tags public
// @Produce json
// @Param id path int true "Collection ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} item.WithPrimaryImage
// @Failure 404 {object} response.ErrorResponse
// @Router /public/collections/{id}/items/{itemId} [get]
func (h *ItemHandler) GetPublic(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	it, err := h.svc.GetPublic(collectionID, itemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Create godoc
// @Summary Add an item to a collection
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param request body item.CreateItemInput true "Item payload with name-keyed metadata"
// @Success 201 {object} item.Item
// @Failure 422 {object} response.FieldErrorsResponse
// @Router /collections/{id}/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input item.CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	it, err := h.svc.Create(middleware.UserID(c), collectionID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// Update godoc
// @Summary Change an item
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param itemId path int true "Item ID"
// @Param request body item.UpdateItemInput true "Changes; metadata replaces the whole object"
// @Success 200 {object} item.Item
// @Failure 422 {object} response.FieldErrorsResponse
// @Router /collections/{id}/items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	var input item.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	it, err := h.svc.Update(middleware.UserID(c), collectionID, itemID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Delete godoc
// @Summary Delete an item
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	if err := h.svc.Delete(middleware.UserID(c), collectionID, itemID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Item deleted"})
}

// Search godoc
// @Summary Search published items across all public collections
// @Tags public
// @Produce json
// @Param q query string true "Search term"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Pagination limit (max 100)"
// @Success 200 {array} item.SearchResult
// @Failure 422 {object} response.ErrorResponse
// @Router /search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	results, err := h.svc.SearchPublic(c.Query("q"), intQuery(c, "offset", 0), intQuery(c, "limit", 0))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if results == nil {
		results = []item.SearchResult{}
	}
	c.JSON(http.StatusOK, results)
}
