package collection

type CreateCollectionInput struct {
	Name             string  `json:"name" binding:"required,min=1,max=200"`
	Description      *string `json:"description"`
	IsPublic         bool    `json:"is_public"`
	SchemaTemplateID *uint   `json:"schema_template_id"`
}

type UpdateCollectionInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}
