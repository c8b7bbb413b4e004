package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Endogen/antique-catalogue-sub001/internal/application"
)

type Handlers struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Collection *CollectionHandler
	Field      *FieldHandler
	Item       *ItemHandler
	Image      *ImageHandler
	Star       *StarHandler
	Template   *TemplateHandler
	Admin      *AdminHandler
	Activity   *ActivityHandler
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Profile:    NewProfileHandler(svc.Profile),
		Collection: NewCollectionHandler(svc.Collection),
		Field:      NewFieldHandler(svc.Field),
		Item:       NewItemHandler(svc.Item, svc.Field),
		Image:      NewImageHandler(svc.Image),
		Star:       NewStarHandler(svc.Star),
		Template:   NewTemplateHandler(svc.Template),
		Admin:      NewAdminHandler(svc.Admin),
		Activity:   NewActivityHandler(svc.Activity),
		Router:     router,
	}
}
