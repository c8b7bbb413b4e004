package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

type AdminHandler struct {
	svc *application.AdminService
}

func NewAdminHandler(svc *application.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type adminLoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Exchange admin credentials for an admin token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body adminLoginInput true "Admin credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var input adminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	token, expiresIn, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}

// Stats godoc
// @Summary Platform-wide totals
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Success 200 {object} application.AdminStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary List registered users
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Pagination limit"
// @Success 200 {array} user.User
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(intQuery(c, "offset", 0), intQuery(c, "limit", 0))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}
	c.JSON(http.StatusOK, users)
}

type lockUserInput struct {
	Locked *bool `json:"locked" binding:"required"`
}

// SetUserLock godoc
// @Summary Lock or unlock a user account
// @Tags admin
// @Security AdminAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body lockUserInput true "Lock state"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id}/lock [patch]
func (h *AdminHandler) SetUserLock(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input lockUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	u, err := h.svc.SetUserLock(userID, *input.Locked)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser godoc
// @Summary Delete a user account with everything it owns
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(userID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}

// ListCollections godoc
// @Summary List all collections across all users
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Pagination limit"
// @Success 200 {array} collection.WithCounts
// @Router /admin/collections [get]
func (h *AdminHandler) ListCollections(c *gin.Context) {
	collections, err := h.svc.ListCollections(intQuery(c, "offset", 0), intQuery(c, "limit", 0))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if collections == nil {
		collections = []collection.WithCounts{}
	}
	c.JSON(http.StatusOK, collections)
}

// DeleteCollection godoc
// @Summary Delete any collection
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/collections/{id} [delete]
func (h *AdminHandler) DeleteCollection(c *gin.Context) {
	collectionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCollection(collectionID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Collection deleted"})
}

// ListItems godoc
// @Summary List all items across all collections
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Pagination limit"
// @Success 200 {array} item.SearchResult
// @Router /admin/items [get]
func (h *AdminHandler) ListItems(c *gin.Context) {
	items, err := h.svc.ListItems(intQuery(c, "offset", 0), intQuery(c, "limit", 0))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if items == nil {
		items = []item.SearchResult{}
	}
	c.JSON(http.StatusOK, items)
}

// DeleteItem godoc
// @Summary Delete any item
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/items/{id} [delete]
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	itemID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(itemID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Item deleted"})
}

type featuredCollectionInput struct {
	CollectionID *uint `json:"collection_id"`
}

// SetFeaturedCollection godoc
// @Summary Feature a public collection on the landing page
// @Description Passing a null collection_id clears the featured collection and the featured items.
// @Tags admin
// @Security AdminAuth
// @Accept json
// @Produce json
// @Param request body featuredCollectionInput true "Collection to feature, or null to clear"
// @Success 200 {object} response.MessageResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/featured [post]
func (h *AdminHandler) SetFeaturedCollection(c *gin.Context) {
	var input featuredCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.SetFeaturedCollection(input.CollectionID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Featured collection updated"})
}

// ListFeaturedItems godoc
// @Summary List the items currently featured on the landing page
// @Tags admin
// @Security AdminAuth
// @Produce json
// @Success 200 {array} item.WithPrimaryImage
// @Router /admin/featured/items [get]
func (h *AdminHandler) ListFeaturedItems(c *gin.Context) {
	items, err := h.svc.ListFeaturedItems()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if items == nil {
		items = []item.WithPrimaryImage{}
	}
	c.JSON(http.StatusOK, items)
}

type featuredItemsInput struct {
	ItemIDs []uint `json:"item_ids" binding:"required"`
}

// SetFeaturedItems godoc
// @Summary Pick the featured items from the featured collection
// @Tags admin
// @Security AdminAuth
// @Accept json
// @Produce json
// @Param request body featuredItemsInput true "Published item IDs from the featured collection"
// @Success 200 {object} response.MessageResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/featured/items [post]
func (h *AdminHandler) SetFeaturedItems(c *gin.Context) {
	var input featuredItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.SetFeaturedItems(input.ItemIDs); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Featured items updated"})
}
