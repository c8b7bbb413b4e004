package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/pkg/imaging"
	"github.com/Endogen/antique-catalogue-sub001/pkg/response"
)

func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(value), true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// writeServiceError maps application sentinel errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var queryErr *application.QueryError
	if errors.As(err, &queryErr) {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: queryErr.Message})
		return
	}
	var metaErr *application.MetadataError
	if errors.As(err, &metaErr) {
		detail := make([]response.FieldError, 0, len(metaErr.Errors))
		for _, fe := range metaErr.Errors {
			detail = append(detail, response.FieldError{Field: fe.Field, Message: fe.Message})
		}
		c.JSON(http.StatusUnprocessableEntity, response.FieldErrorsResponse{Detail: detail})
		return
	}

	switch {
	case errors.Is(err, application.ErrCollectionNotFound),
		errors.Is(err, application.ErrItemNotFound),
		errors.Is(err, application.ErrFieldNotFound),
		errors.Is(err, application.ErrImageNotFound),
		errors.Is(err, application.ErrTemplateNotFound),
		errors.Is(err, application.ErrTemplateFieldNotFound),
		errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrFeaturedItemsInvalid):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrUsernameTaken),
		errors.Is(err, application.ErrFieldNameTaken),
		errors.Is(err, application.ErrTemplateNameTaken),
		errors.Is(err, application.ErrTemplateFieldNameTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrRefreshInvalid),
		errors.Is(err, application.ErrAdminCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrEmailNotVerified),
		errors.Is(err, application.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrAdminNotConfigured):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrTokenInvalid),
		errors.Is(err, application.ErrUsernameTooLong),
		errors.Is(err, application.ErrUsernameInvalid),
		errors.Is(err, application.ErrUsernameNumeric),
		errors.Is(err, application.ErrUsernameEmpty),
		errors.Is(err, application.ErrOptionsRequired),
		errors.Is(err, application.ErrOptionsNotAllowed),
		errors.Is(err, application.ErrReorderIncomplete),
		errors.Is(err, application.ErrUnknownFieldType),
		errors.Is(err, application.ErrImageEmpty),
		errors.Is(err, application.ErrImageFilename),
		errors.Is(err, application.ErrPositionOutOfRange),
		errors.Is(err, application.ErrUnknownVariant),
		errors.Is(err, application.ErrTemplateYAMLInvalid),
		errors.Is(err, application.ErrFeaturedNotPublic),
		errors.Is(err, application.ErrNoFeaturedCollection),
		errors.Is(err, imaging.ErrUnsupportedFormat):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
