package template

import (
	"time"

	"gorm.io/datatypes"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

type SchemaTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;index;uniqueIndex:uq_schema_templates_owner_name" json:"owner_id"`
	Name      string    `gorm:"size:200;not null;uniqueIndex:uq_schema_templates_owner_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SchemaTemplateField struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	SchemaTemplateID uint            `gorm:"not null;index;uniqueIndex:uq_template_fields_template_name" json:"schema_template_id"`
	Name             string          `gorm:"size:200;not null;uniqueIndex:uq_template_fields_template_name" json:"name"`
	FieldType        field.FieldType `gorm:"size:20;not null" json:"field_type"`
	IsRequired       bool            `gorm:"default:false;not null" json:"is_required"`
	IsPrivate        bool            `gorm:"default:false;not null" json:"is_private"`
	Options          datatypes.JSON  `json:"options,omitempty"`
	Position         int             `gorm:"not null" json:"position"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
