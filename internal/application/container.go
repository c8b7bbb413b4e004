package application

import "github.com/Endogen/antique-catalogue-sub001/internal/repository"

type Services struct {
	Auth       *AuthService
	Profile    *ProfileService
	Collection *CollectionService
	Field      *FieldService
	Item       *ItemService
	Image      *ImageService
	Star       *StarService
	Template   *TemplateService
	Admin      *AdminService
	Activity   *ActivityService
}

func New(repos *repository.Repos) *Services {
	activity := NewActivityService(repos)
	return &Services{
		Auth:       NewAuthService(repos, NewMailer()),
		Profile:    NewProfileService(repos, activity),
		Collection: NewCollectionService(repos, activity),
		Field:      NewFieldService(repos),
		Item:       NewItemService(repos, activity),
		Image:      NewImageService(repos, activity),
		Star:       NewStarService(repos, activity),
		Template:   NewTemplateService(repos, activity),
		Admin:      NewAdminService(repos),
		Activity:   activity,
	}
}
