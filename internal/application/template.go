package application

import (
	"errors"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/template"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

var (
	ErrTemplateNameTaken      = errors.New("schema template name already exists")
	ErrTemplateFieldNotFound  = errors.New("template field not found")
	ErrTemplateFieldNameTaken = errors.New("a field with this name already exists in the template")
	ErrTemplateYAMLInvalid    = errors.New("template document is not valid YAML")
)

type TemplateService struct {
	Repos    *repository.Repos
	Activity *ActivityService
}

func NewTemplateService(repos *repository.Repos, activity *ActivityService) *TemplateService {
	return &TemplateService{Repos: repos, Activity: activity}
}

func (s *TemplateService) List(ownerID uint) ([]template.SchemaTemplate, error) {
	return s.Repos.Template.ListByOwner(ownerID)
}

func (s *TemplateService) Get(ownerID, templateID uint) (template.TemplateResponse, error) {
	tpl, err := s.Repos.Template.Get(ownerID, templateID)
	if err != nil {
		return template.TemplateResponse{}, ErrTemplateNotFound
	}
	fields, err := s.Repos.Template.ListFields(tpl.ID)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return template.TemplateResponse{SchemaTemplate: tpl, Fields: fields}, nil
}

func (s *TemplateService) Create(ownerID uint, input template.CreateTemplateInput) (template.TemplateResponse, error) {
	tpl, err := s.createWithFields(ownerID, input.Name, input.Fields)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	s.Activity.Record(ownerID, "schema_template.created", "schema_template", &tpl.ID, fmt.Sprintf("Created schema template %q", tpl.Name))
	return tpl, nil
}

func (s *TemplateService) createWithFields(ownerID uint, name string, fields []template.TemplateFieldInput) (template.TemplateResponse, error) {
	name = strings.TrimSpace(name)
	taken, err := s.Repos.Template.NameExists(ownerID, name)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	if taken {
		return template.TemplateResponse{}, ErrTemplateNameTaken
	}
	if err := checkTemplateFields(fields); err != nil {
		return template.TemplateResponse{}, err
	}

	tpl := template.SchemaTemplate{OwnerID: ownerID, Name: name}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Template.Create(&tpl); err != nil {
			return err
		}
		for i, f := range fields {
			rec := template.SchemaTemplateField{
				SchemaTemplateID: tpl.ID,
				Name:             f.Name,
				FieldType:        f.FieldType,
				IsRequired:       f.IsRequired,
				IsPrivate:        f.IsPrivate,
				Position:         i + 1,
			}
			if f.FieldType == field.TypeSelect {
				rec.Options = field.EncodeOptions(f.Options)
			}
			if err := tx.Template.CreateField(&rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}
	return s.Get(ownerID, tpl.ID)
}

func (s *TemplateService) Update(ownerID, templateID uint, input template.UpdateTemplateInput) (template.TemplateResponse, error) {
	tpl, err := s.Repos.Template.Get(ownerID, templateID)
	if err != nil {
		return template.TemplateResponse{}, ErrTemplateNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != tpl.Name {
			taken, err := s.Repos.Template.NameExists(ownerID, name)
			if err != nil {
				return template.TemplateResponse{}, err
			}
			if taken {
				return template.TemplateResponse{}, ErrTemplateNameTaken
			}
			tpl.Name = name
		}
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Template.Save(&tpl); err != nil {
			return err
		}
		if input.Fields == nil {
			return nil
		}
		if err := checkTemplateFields(*input.Fields); err != nil {
			return err
		}
		// full replacement: drop the old fields and write the new set
		existing, err := tx.Template.ListFields(tpl.ID)
		if err != nil {
			return err
		}
		for _, f := range existing {
			if err := tx.Template.DeleteField(f.ID); err != nil {
				return err
			}
		}
		for i, f := range *input.Fields {
			rec := template.SchemaTemplateField{
				SchemaTemplateID: tpl.ID,
				Name:             f.Name,
				FieldType:        f.FieldType,
				IsRequired:       f.IsRequired,
				IsPrivate:        f.IsPrivate,
				Position:         i + 1,
			}
			if f.FieldType == field.TypeSelect {
				rec.Options = field.EncodeOptions(f.Options)
			}
			if err := tx.Template.CreateField(&rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return template.TemplateResponse{}, err
	}
	if input.Name != nil || input.Fields != nil {
		s.Activity.Record(ownerID, "schema_template.updated", "schema_template", &tpl.ID, fmt.Sprintf("Updated schema template %q", tpl.Name))
	}
	return s.Get(ownerID, tpl.ID)
}

func (s *TemplateService) Delete(ownerID, templateID uint) error {
	tpl, err := s.Repos.Template.Get(ownerID, templateID)
	if err != nil {
		return ErrTemplateNotFound
	}
	if err := s.Repos.Template.Delete(tpl.ID); err != nil {
		return err
	}
	s.Activity.Record(ownerID, "schema_template.deleted", "schema_template", nil, fmt.Sprintf("Deleted schema template %q", tpl.Name))
	return nil
}

// Copy duplicates a template with all its fields. Without an explicit name
// the copy gets "<name> (Copy)", then "<name> (Copy 2)" and so on.
func (s *TemplateService) Copy(ownerID, templateID uint, name *string) (template.TemplateResponse, error) {
	src, err := s.Get(ownerID, templateID)
	if err != nil {
		return template.TemplateResponse{}, err
	}

	var copyName string
	if name != nil {
		copyName = strings.TrimSpace(*name)
		taken, err := s.Repos.Template.NameExists(ownerID, copyName)
		if err != nil {
			return template.TemplateResponse{}, err
		}
		if taken {
			return template.TemplateResponse{}, ErrTemplateNameTaken
		}
	} else {
		copyName, err = s.uniqueCopyName(ownerID, src.Name)
		if err != nil {
			return template.TemplateResponse{}, err
		}
	}

	inputs := make([]template.TemplateFieldInput, 0, len(src.Fields))
	for _, f := range src.Fields {
		inputs = append(inputs, template.TemplateFieldInput{
			Name:       f.Name,
			FieldType:  f.FieldType,
			IsRequired: f.IsRequired,
			IsPrivate:  f.IsPrivate,
			Options:    field.DecodeOptions(f.Options),
		})
	}
	copied, err := s.createWithFields(ownerID, copyName, inputs)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	s.Activity.Record(ownerID, "schema_template.copied", "schema_template", &copied.ID, fmt.Sprintf("Copied schema template %q to %q", src.Name, copied.Name))
	return copied, nil
}

func (s *TemplateService) uniqueCopyName(ownerID uint, sourceName string) (string, error) {
	candidate := fmt.Sprintf("%s (Copy)", sourceName)
	for index := 2; ; index++ {
		taken, err := s.Repos.Template.NameExists(ownerID, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s (Copy %d)", sourceName, index)
	}
}

// ExportYAML renders a template as a portable YAML document.
func (s *TemplateService) ExportYAML(ownerID, templateID uint) ([]byte, error) {
	tpl, err := s.Get(ownerID, templateID)
	if err != nil {
		return nil, err
	}

	doc := template.TemplateYAML{Name: tpl.Name}
	for _, f := range tpl.Fields {
		doc.Fields = append(doc.Fields, template.TemplateFieldInput{
			Name:       f.Name,
			FieldType:  f.FieldType,
			IsRequired: f.IsRequired,
			IsPrivate:  f.IsPrivate,
			Options:    field.DecodeOptions(f.Options),
		})
	}
	return yaml.Marshal(doc)
}

// ImportYAML creates a template from an exported document.
func (s *TemplateService) ImportYAML(ownerID uint, data []byte) (template.TemplateResponse, error) {
	var doc template.TemplateYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return template.TemplateResponse{}, ErrTemplateYAMLInvalid
	}
	if strings.TrimSpace(doc.Name) == "" {
		return template.TemplateResponse{}, ErrTemplateYAMLInvalid
	}
	tpl, err := s.createWithFields(ownerID, doc.Name, doc.Fields)
	if err != nil {
		return template.TemplateResponse{}, err
	}
	s.Activity.Record(ownerID, "schema_template.created", "schema_template", &tpl.ID, fmt.Sprintf("Created schema template %q", tpl.Name))
	return tpl, nil
}

func (s *TemplateService) CreateField(ownerID, templateID uint, input template.TemplateFieldInput) (template.SchemaTemplateField, error) {
	tpl, err := s.Repos.Template.Get(ownerID, templateID)
	if err != nil {
		return template.SchemaTemplateField{}, ErrTemplateNotFound
	}
	if !input.FieldType.Known() {
		return template.SchemaTemplateField{}, ErrUnknownFieldType
	}
	if err := checkOptions(input.FieldType, input.Options); err != nil {
		return template.SchemaTemplateField{}, err
	}
	taken, err := s.Repos.Template.FieldNameExists(tpl.ID, input.Name, 0)
	if err != nil {
		return template.SchemaTemplateField{}, err
	}
	if taken {
		return template.SchemaTemplateField{}, ErrTemplateFieldNameTaken
	}

	maxPos, err := s.Repos.Template.MaxFieldPosition(tpl.ID)
	if err != nil {
		return template.SchemaTemplateField{}, err
	}
	rec := template.SchemaTemplateField{
		SchemaTemplateID: tpl.ID,
		Name:             input.Name,
		FieldType:        input.FieldType,
		IsRequired:       input.IsRequired,
		IsPrivate:        input.IsPrivate,
		Position:         maxPos + 1,
	}
	if input.FieldType == field.TypeSelect {
		rec.Options = field.EncodeOptions(input.Options)
	}
	if err := s.Repos.Template.CreateField(&rec); err != nil {
		return template.SchemaTemplateField{}, err
	}
	return rec, nil
}

func (s *TemplateService) UpdateField(ownerID, templateID, fieldID uint, input template.UpdateTemplateFieldInput) (template.SchemaTemplateField, error) {
	tpl, err := s.Repos.Template.Get(ownerID, templateID)
	if err != nil {
		return template.SchemaTemplateField{}, ErrTemplateNotFound
	}
	rec, err := s.Repos.Template.GetField(tpl.ID, fieldID)
	if err != nil {
		return template.SchemaTemplateField{}, ErrTemplateFieldNotFound
	}

	if input.Name != nil && *input.Name != rec.Name {
		taken, err := s.Repos.Template.FieldNameExists(tpl.ID, *input.Name, rec.ID)
		if err != nil {
			return template.SchemaTemplateField{}, err
		}
		if taken {
			return template.SchemaTemplateField{}, ErrTemplateFieldNameTaken
		}
		rec.Name = *input.Name
	}
	if input.FieldType != nil {
		if !input.FieldType.Known() {
			return template.SchemaTemplateField{}, ErrUnknownFieldType
		}
		rec.FieldType = *input.FieldType
	}
	if input.IsRequired != nil {
		rec.IsRequired = *input.IsRequired
	}
	if input.IsPrivate != nil {
		rec.IsPrivate = *input.IsPrivate
	}
	if input.Options != nil {
		if err := checkOptions(rec.FieldType, *input.Options); err != nil {
			return template.SchemaTemplateField{}, err
		}
		rec.Options = field.EncodeOptions(*input.Options)
	}
	if rec.FieldType != field.TypeSelect {
		rec.Options = nil
	} else if len(field.DecodeOptions(rec.Options)) == 0 {
		return template.SchemaTemplateField{}, ErrOptionsRequired
	}

	if err := s.Repos.Template.SaveField(&rec); err != nil {
		return template.SchemaTemplateField{}, err
	}
	return rec, nil
}

func (s *TemplateService) DeleteField(ownerID, templateID, fieldID uint) error {
	tpl, err := s.Repos.Template.Get(ownerID, templateID)
	if err != nil {
		return ErrTemplateNotFound
	}
	rec, err := s.Repos.Template.GetField(tpl.ID, fieldID)
	if err != nil {
		return ErrTemplateFieldNotFound
	}
	return s.Repos.Template.DeleteField(rec.ID)
}

func (s *TemplateService) ReorderFields(ownerID, templateID uint, fieldIDs []uint) ([]template.SchemaTemplateField, error) {
	tpl, err := s.Repos.Template.Get(ownerID, templateID)
	if err != nil {
		return nil, ErrTemplateNotFound
	}
	existing, err := s.Repos.Template.ListFields(tpl.ID)
	if err != nil {
		return nil, err
	}

	want := make(map[uint]struct{}, len(existing))
	for _, f := range existing {
		want[f.ID] = struct{}{}
	}
	if len(existing) != len(fieldIDs) {
		return nil, ErrReorderIncomplete
	}
	for _, id := range fieldIDs {
		if _, ok := want[id]; !ok {
			return nil, ErrReorderIncomplete
		}
		delete(want, id)
	}

	if err := s.Repos.Template.UpdateFieldPositions(tpl.ID, fieldIDs); err != nil {
		return nil, err
	}
	return s.Repos.Template.ListFields(tpl.ID)
}

func checkTemplateFields(fields []template.TemplateFieldInput) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !f.FieldType.Known() {
			return ErrUnknownFieldType
		}
		if err := checkOptions(f.FieldType, f.Options); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if key == "" {
			return ErrTemplateFieldNameTaken
		}
		if _, dup := seen[key]; dup {
			return ErrTemplateFieldNameTaken
		}
		seen[key] = struct{}{}
	}
	return nil
}
