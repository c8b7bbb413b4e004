package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

type CollectionHandler struct {
	svc *application.CollectionService
}

func NewCollectionHandler(svc *application.CollectionService) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// List godoc
// @Summary List the authenticated user's collections
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Success 200 {array} collection.WithCounts
// @Router /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.svc.ListOwned(middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if collections == nil {
		collections = []collection.WithCounts{}
	}
	c.JSON(http.StatusOK, collections)
}

// Create godoc
// @Summary Create a collection, optionally from a schema template
// @Tags collections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body collection.CreateCollectionInput true "Collection payload"
// @Success 201 {object} collection.Collection
// @Failure 404 {object} response.ErrorResponse
// @Router /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var input collection.CreateCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	col, err := h.svc.Create(middleware.UserID(c), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

// Get godoc
// @Summary Get one of the user's collections
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} collection.Collection
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	col, err := h.svc.GetOwned(middleware.UserID(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// Update godoc
// @Summary Update a collection
// @Tags collections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param request body collection.UpdateCollectionInput true "Changes"
// @Success 200 {object} collection.Collection
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id} [patch]
func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input collection.UpdateCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	col, err := h.svc.Update(middleware.UserID(c), id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// Delete godoc
// @Summary Delete a collection and everything in it
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(middleware.UserID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Collection deleted"})
}

// ListPublic godoc
// @Summary Browse all public collections
// @Tags public
// @Produce json
// @Success 200 {array} collection.WithCounts
// @Router /public/collections [get]
func (h *CollectionHandler) ListPublic(c *gin.Context) {
	collections, err := h.svc.ListPublic()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if collections == nil {
		collections = []collection.WithCounts{}
	}
	c.JSON(http.StatusOK, collections)
}

// Featured godoc
// @Summary Get the landing-page collection
// @Description Returns null when no collection is currently featured.
// @Tags public
// @Produce json
// @Success 200 {object} collection.WithCounts
// @Router /public/collections/featured [get]
func (h *CollectionHandler) Featured(c *gin.Context) {
	col, err := h.svc.Featured()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// FeaturedItems godoc
// @Summary List the curated items of the landing-page collection
// @Tags public
// @Produce json
// @Success 200 {array} item.SearchResult
// @Router /public/collections/featured/items [get]
func (h *CollectionHandler) FeaturedItems(c *gin.Context) {
	items, err := h.svc.FeaturedItems()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if items == nil {
		items = []item.SearchResult{}
	}
	c.JSON(http.StatusOK, items)
}

// GetPublic godoc
// @Summary Get a public collection
// @Tags public
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} collection.Collection
// @Failure 404 {object} response.ErrorResponse
// @Router /public/collections/{id} [get]
func (h *CollectionHandler) GetPublic(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	col, err := h.svc.GetVisible(middleware.UserID(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !col.IsPublic && col.OwnerID != middleware.UserID(c) {
		writeServiceError(c, application.ErrCollectionNotFound)
		return
	}
	c.JSON(http.StatusOK, col)
}
