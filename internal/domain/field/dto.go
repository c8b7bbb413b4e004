package field

type CreateFieldInput struct {
	Name       string    `json:"name" binding:"required,min=1,max=200"`
	FieldType  FieldType `json:"field_type" binding:"required,oneof=text number date timestamp checkbox select"`
	IsRequired bool      `json:"is_required"`
	IsPrivate  bool      `json:"is_private"`
	Options    []string  `json:"options"`
}

type UpdateFieldInput struct {
	Name       *string    `json:"name" binding:"omitempty,min=1,max=200"`
	FieldType  *FieldType `json:"field_type" binding:"omitempty,oneof=text number date timestamp checkbox select"`
	IsRequired *bool      `json:"is_required"`
	IsPrivate  *bool      `json:"is_private"`
	Options    *[]string  `json:"options"`
}

type ReorderFieldsInput struct {
	FieldIDs []uint `json:"field_ids" binding:"required,min=1"`
}
