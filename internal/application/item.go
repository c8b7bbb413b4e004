package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/metadata"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

var ErrItemNotFound = errors.New("item not found")

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// QueryError reports a malformed list-endpoint parameter. The message is
// returned to the client verbatim.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string { return e.Message }

// MetadataError carries per-field validation failures for the 422 response.
type MetadataError struct {
	Errors []metadata.NamedError
}

func (e *MetadataError) Error() string { return "metadata validation failed" }

type ItemService struct {
	Repos    *repository.Repos
	Activity *ActivityService
}

func NewItemService(repos *repository.Repos, activity *ActivityService) *ItemService {
	return &ItemService{
		Repos:    repos,
		Activity: activity,
	}
}

// ParseListQuery turns the raw query parameters into a validated ListQuery.
// Filters arrive as repeated "Field=Value" strings and are coerced to the
// field's type so the JSON comparison matches stored values.
func ParseListQuery(defs []field.Definition, search string, rawFilters []string, sort string, offset, limit int) (item.ListQuery, error) {
	q := item.ListQuery{
		Search: strings.TrimSpace(search),
		Sort:   strings.TrimSpace(sort),
		Offset: offset,
		Limit:  limit,
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}

	byName := make(map[string]field.Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	for _, raw := range rawFilters {
		if raw == "" {
			continue
		}
		eq := strings.Index(raw, "=")
		if eq < 0 {
			return item.ListQuery{}, &QueryError{Message: "Filter must be in the format 'Field=Value'"}
		}
		name := strings.TrimSpace(raw[:eq])
		if name == "" {
			return item.ListQuery{}, &QueryError{Message: "Filter field name cannot be blank"}
		}
		def, ok := byName[name]
		if !ok {
			return item.ListQuery{}, &QueryError{Message: fmt.Sprintf("Unknown metadata field '%s'", name)}
		}
		value, err := parseFilterValue(def, raw[eq+1:])
		if err != nil {
			return item.ListQuery{}, err
		}
		q.Filters = append(q.Filters, item.MetadataFilter{FieldName: def.Name, Value: value})
	}

	if err := validateSort(byName, q.Sort); err != nil {
		return item.ListQuery{}, err
	}
	return q, nil
}

func parseFilterValue(def field.Definition, raw string) (any, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, &QueryError{Message: "Filter value cannot be blank"}
	}

	switch def.FieldType {
	case field.TypeText:
		return value, nil
	case field.TypeSelect:
		options := def.OptionList()
		if len(options) == 0 {
			return nil, &QueryError{Message: fmt.Sprintf("Select field '%s' is missing options", def.Name)}
		}
		for _, opt := range options {
			if opt == value {
				return value, nil
			}
		}
		return nil, &QueryError{Message: "Filter value must be one of: " + strings.Join(options, ", ")}
	case field.TypeDate:
		if _, err := time.ParseInLocation("2006-01-02", value, time.UTC); err != nil {
			return nil, &QueryError{Message: "Filter value must be a date (YYYY-MM-DD)"}
		}
		return value, nil
	case field.TypeTimestamp:
		if !metadata.LooksLikeTimestamp(value) {
			return nil, &QueryError{Message: "Filter value must be a timestamp (ISO 8601)"}
		}
		return value, nil
	case field.TypeNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, &QueryError{Message: "Filter value must be a number"}
		}
		return n, nil
	case field.TypeCheckbox:
		switch strings.ToLower(value) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, &QueryError{Message: "Filter value must be true or false"}
	}
	return nil, &QueryError{Message: fmt.Sprintf("Unsupported field type '%s'", def.FieldType)}
}

func validateSort(byName map[string]field.Definition, sort string) error {
	if sort == "" {
		return nil
	}
	key := strings.TrimPrefix(sort, "-")
	if key == "name" || key == "created_at" {
		return nil
	}
	if strings.HasPrefix(key, "metadata:") || strings.HasPrefix(key, "metadata.") {
		name := strings.TrimSpace(key[len("metadata:"):])
		if name == "" {
			return &QueryError{Message: "Metadata sort field cannot be blank"}
		}
		if _, ok := byName[name]; !ok {
			return &QueryError{Message: fmt.Sprintf("Unknown metadata field '%s'", name)}
		}
		return nil
	}
	return &QueryError{Message: "Sort must be 'name', 'created_at', or 'metadata:<field>'"}
}

// List returns the owner's items of one collection, drafts included.
func (s *ItemService) List(ownerID, collectionID uint, q item.ListQuery) ([]item.WithPrimaryImage, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return nil, ErrCollectionNotFound
	}
	return s.Repos.Item.List(collectionID, q, false)
}

// ListPublic returns a public collection's non-draft items with private
// metadata fields removed.
func (s *ItemService) ListPublic(collectionID uint, q item.ListQuery) ([]item.WithPrimaryImage, error) {
	col, err := s.Repos.Collection.GetPublic(collectionID)
	if err != nil {
		return nil, ErrCollectionNotFound
	}
	items, err := s.Repos.Item.List(col.ID, q, true)
	if err != nil {
		return nil, err
	}

	defs, err := s.Repos.Field.ListByCollection(col.ID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		stripped, err := stripPrivateMetadata(items[i].Metadata, defs)
		if err != nil {
			return nil, err
		}
		items[i].Metadata = stripped
	}
	return items, nil
}

func (s *ItemService) Get(ownerID, collectionID, itemID uint) (item.WithPrimaryImage, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return item.WithPrimaryImage{}, ErrCollectionNotFound
	}
	it, err := s.Repos.Item.Get(collectionID, itemID)
	if err != nil {
		return item.WithPrimaryImage{}, ErrItemNotFound
	}
	return s.withPrimaryImage(it)
}

// GetPublic returns one non-draft item of a public collection, private
// metadata removed.
func (s *ItemService) GetPublic(collectionID, itemID uint) (item.WithPrimaryImage, error) {
	col, err := s.Repos.Collection.GetPublic(collectionID)
	if err != nil {
		return item.WithPrimaryImage{}, ErrCollectionNotFound
	}
	it, err := s.Repos.Item.Get(col.ID, itemID)
	if err != nil || it.IsDraft {
		return item.WithPrimaryImage{}, ErrItemNotFound
	}

	defs, err := s.Repos.Field.ListByCollection(col.ID)
	if err != nil {
		return item.WithPrimaryImage{}, err
	}
	stripped, err := stripPrivateMetadata(it.Metadata, defs)
	if err != nil {
		return item.WithPrimaryImage{}, err
	}
	it.Metadata = stripped
	return s.withPrimaryImage(it)
}

func (s *ItemService) withPrimaryImage(it item.Item) (item.WithPrimaryImage, error) {
	imageID, err := s.Repos.Item.PrimaryImageID(it.ID)
	if err != nil {
		return item.WithPrimaryImage{}, err
	}
	return item.WithPrimaryImage{Item: it, PrimaryImageID: imageID}, nil
}

func (s *ItemService) Create(ownerID, collectionID uint, input item.CreateItemInput) (item.Item, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return item.Item{}, ErrCollectionNotFound
	}

	payload, err := s.normalizeMetadata(collectionID, input.Metadata)
	if err != nil {
		return item.Item{}, err
	}

	it := item.Item{
		CollectionID: collectionID,
		Name:         strings.TrimSpace(input.Name),
		Notes:        trimNotes(input.Notes),
		Metadata:     payload,
		IsHighlight:  input.IsHighlight,
		IsDraft:      input.IsDraft,
	}
	if err := s.Repos.Item.Create(&it); err != nil {
		return item.Item{}, err
	}
	s.Activity.Record(ownerID, "item.created", "item", &it.ID, fmt.Sprintf("Added item %q", it.Name))
	return it, nil
}

func (s *ItemService) Update(ownerID, collectionID, itemID uint, input item.UpdateItemInput) (item.Item, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return item.Item{}, ErrCollectionNotFound
	}
	it, err := s.Repos.Item.Get(collectionID, itemID)
	if err != nil {
		return item.Item{}, ErrItemNotFound
	}

	if input.Name != nil {
		it.Name = strings.TrimSpace(*input.Name)
	}
	if input.Notes != nil {
		it.Notes = trimNotes(input.Notes)
	}
	if input.Metadata != nil {
		payload, err := s.normalizeMetadata(collectionID, *input.Metadata)
		if err != nil {
			return item.Item{}, err
		}
		it.Metadata = payload
	}
	if input.IsHighlight != nil {
		it.IsHighlight = *input.IsHighlight
	}
	if input.IsDraft != nil {
		it.IsDraft = *input.IsDraft
	}

	if err := s.Repos.Item.Save(&it); err != nil {
		return item.Item{}, err
	}
	s.Activity.Record(ownerID, "item.updated", "item", &it.ID, fmt.Sprintf("Updated item %q", it.Name))
	return it, nil
}

func (s *ItemService) Delete(ownerID, collectionID, itemID uint) error {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return ErrCollectionNotFound
	}
	it, err := s.Repos.Item.Get(collectionID, itemID)
	if err != nil {
		return ErrItemNotFound
	}
	if err := s.Repos.Item.Delete(it.ID); err != nil {
		return err
	}
	s.Activity.Record(ownerID, "item.deleted", "item", nil, fmt.Sprintf("Deleted item %q", it.Name))
	return nil
}

// SearchPublic searches non-draft items across all public collections.
func (s *ItemService) SearchPublic(term string, offset, limit int) ([]item.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, &QueryError{Message: "Search term cannot be blank"}
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return s.Repos.Item.SearchPublic(term, offset, limit)
}

func (s *ItemService) normalizeMetadata(collectionID uint, raw map[string]any) (datatypes.JSON, error) {
	defs, err := s.Repos.Field.ListByCollection(collectionID)
	if err != nil {
		return nil, err
	}
	normalized, errs := metadata.ValidateStored(defs, raw)
	if len(errs) > 0 {
		return nil, &MetadataError{Errors: errs}
	}
	if normalized == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

func stripPrivateMetadata(raw datatypes.JSON, defs []field.Definition) (datatypes.JSON, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	private := make(map[string]struct{})
	for _, def := range defs {
		if def.IsPrivate {
			private[def.Name] = struct{}{}
		}
	}
	if len(private) == 0 {
		return raw, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	for name := range private {
		delete(payload, name)
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

func trimNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
