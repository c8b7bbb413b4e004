package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/star"
)

type StarHandler struct {
	svc *application.StarService
}

func NewStarHandler(svc *application.StarService) *StarHandler {
	return &StarHandler{svc: svc}
}

// CollectionStatus godoc
// @Summary Get the caller's star status for a collection
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} star.StatusResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/star [get]
func (h *StarHandler) CollectionStatus(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	status, err := h.svc.CollectionStatus(middleware.UserID(c), collectionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// StarCollection godoc
// @Summary Star a collection
// @Description Idempotent: starring an already starred collection returns the current status.
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} star.StatusResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/star [put]
func (h *StarHandler) StarCollection(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	status, err := h.svc.StarCollection(middleware.UserID(c), collectionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UnstarCollection godoc
// @Summary Remove the caller's star from a collection
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} star.StatusResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/star [delete]
func (h *StarHandler) UnstarCollection(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	status, err := h.svc.UnstarCollection(middleware.UserID(c), collectionID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ItemStatus godoc
// @Summary Get the caller's star status for an item
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} star.StatusResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/items/{itemId}/star [get]
func (h *StarHandler) ItemStatus(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	status, err := h.svc.ItemStatus(middleware.UserID(c), collectionID, itemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// StarItem godoc
// @Summary Star an item
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} star.StatusResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/items/{itemId}/star [put]
func (h *StarHandler) StarItem(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	status, err := h.svc.StarItem(middleware.UserID(c), collectionID, itemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UnstarItem godoc
// @Summary Remove the caller's star from an item
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} star.StatusResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /collections/{id}/items/{itemId}/star [delete]
func (h *StarHandler) UnstarItem(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	status, err := h.svc.UnstarItem(middleware.UserID(c), collectionID, itemID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// StarredCollections godoc
// @Summary List the collections the caller has starred
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Success 200 {array} star.StarredCollection
// @Router /me/starred/collections [get]
func (h *StarHandler) StarredCollections(c *gin.Context) {
	starred, err := h.svc.ListStarredCollections(middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if starred == nil {
		starred = []star.StarredCollection{}
	}
	c.JSON(http.StatusOK, starred)
}

// StarredItems godoc
// @Summary List the items the caller has starred
// @Tags stars
// @Security BearerAuth
// @Produce json
// @Success 200 {array} star.StarredItem
// @Router /me/starred/items [get]
func (h *StarHandler) StarredItems(c *gin.Context) {
	starred, err := h.svc.ListStarredItems(middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if starred == nil {
		starred = []star.StarredItem{}
	}
	c.JSON(http.StatusOK, starred)
}
