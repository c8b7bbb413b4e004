package item

type CreateItemInput struct {
	Name        string         `json:"name" binding:"required,min=1,max=200"`
	Notes       *string        `json:"notes"`
	Metadata    map[string]any `json:"metadata"`
	IsHighlight bool           `json:"is_highlight"`
	IsDraft     bool           `json:"is_draft"`
}

type UpdateItemInput struct {
	Name        *string         `json:"name" binding:"omitempty,min=1,max=200"`
	Notes       *string         `json:"notes"`
	Metadata    *map[string]any `json:"metadata"`
	IsHighlight *bool           `json:"is_highlight"`
	IsDraft     *bool           `json:"is_draft"`
}

// ListQuery gathers the list-endpoint parameters after parsing.
type ListQuery struct {
	Search  string
	Filters []MetadataFilter
	Sort    string
	Offset  int
	Limit   int
}

// MetadataFilter is one parsed Field=Value filter with its typed value.
type MetadataFilter struct {
	FieldName string
	Value     any
}
