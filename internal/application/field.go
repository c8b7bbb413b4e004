package application

import (
	"errors"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

var (
	ErrFieldNotFound      = errors.New("field not found")
	ErrFieldNameTaken     = errors.New("a field with this name already exists in the collection")
	ErrOptionsRequired    = errors.New("select fields need at least one option")
	ErrOptionsNotAllowed  = errors.New("only select fields may carry options")
	ErrReorderIncomplete  = errors.New("reorder must list every field of the collection exactly once")
	ErrUnknownFieldType   = errors.New("unknown field type")
)

type FieldService struct {
	Repos *repository.Repos
}

func NewFieldService(repos *repository.Repos) *FieldService {
	return &FieldService{Repos: repos}
}

func (s *FieldService) List(ownerID, collectionID uint) ([]field.Definition, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return nil, ErrCollectionNotFound
	}
	return s.Repos.Field.ListByCollection(collectionID)
}

// ListVisible returns the fields of any collection the user may read,
// hiding private fields unless the caller owns the collection.
func (s *FieldService) ListVisible(userID, collectionID uint) ([]field.Definition, error) {
	col, err := s.Repos.Collection.GetByID(collectionID)
	if err != nil {
		return nil, ErrCollectionNotFound
	}
	if col.OwnerID != userID && !col.IsPublic {
		return nil, ErrCollectionNotFound
	}

	defs, err := s.Repos.Field.ListByCollection(collectionID)
	if err != nil {
		return nil, err
	}
	if col.OwnerID == userID {
		return defs, nil
	}
	visible := make([]field.Definition, 0, len(defs))
	for _, d := range defs {
		if !d.IsPrivate {
			visible = append(visible, d)
		}
	}
	return visible, nil
}

func (s *FieldService) Create(ownerID, collectionID uint, input field.CreateFieldInput) (field.Definition, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return field.Definition{}, ErrCollectionNotFound
	}
	if !input.FieldType.Known() {
		return field.Definition{}, ErrUnknownFieldType
	}
	if err := checkOptions(input.FieldType, input.Options); err != nil {
		return field.Definition{}, err
	}

	taken, err := s.Repos.Field.NameExists(collectionID, input.Name, 0)
	if err != nil {
		return field.Definition{}, err
	}
	if taken {
		return field.Definition{}, ErrFieldNameTaken
	}

	maxPos, err := s.Repos.Field.MaxPosition(collectionID)
	if err != nil {
		return field.Definition{}, err
	}

	def := field.Definition{
		CollectionID: collectionID,
		Name:         input.Name,
		FieldType:    input.FieldType,
		IsRequired:   input.IsRequired,
		IsPrivate:    input.IsPrivate,
		Position:     maxPos + 1,
	}
	if input.FieldType == field.TypeSelect {
		def.Options = field.EncodeOptions(input.Options)
	}

	if err := s.Repos.Field.Create(&def); err != nil {
		return field.Definition{}, err
	}
	return def, nil
}

func (s *FieldService) Update(ownerID, collectionID, fieldID uint, input field.UpdateFieldInput) (field.Definition, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return field.Definition{}, ErrCollectionNotFound
	}
	def, err := s.Repos.Field.Get(collectionID, fieldID)
	if err != nil {
		return field.Definition{}, ErrFieldNotFound
	}

	if input.Name != nil && *input.Name != def.Name {
		taken, err := s.Repos.Field.NameExists(collectionID, *input.Name, def.ID)
		if err != nil {
			return field.Definition{}, err
		}
		if taken {
			return field.Definition{}, ErrFieldNameTaken
		}
		def.Name = *input.Name
	}
	if input.FieldType != nil {
		if !input.FieldType.Known() {
			return field.Definition{}, ErrUnknownFieldType
		}
		def.FieldType = *input.FieldType
	}
	if input.IsRequired != nil {
		def.IsRequired = *input.IsRequired
	}
	if input.IsPrivate != nil {
		def.IsPrivate = *input.IsPrivate
	}
	if input.Options != nil {
		if err := checkOptions(def.FieldType, *input.Options); err != nil {
			return field.Definition{}, err
		}
		def.Options = field.EncodeOptions(*input.Options)
	}
	// Changing a field away from select drops its options.
	if def.FieldType != field.TypeSelect {
		def.Options = nil
	} else if len(def.OptionList()) == 0 {
		return field.Definition{}, ErrOptionsRequired
	}

	if err := s.Repos.Field.Save(&def); err != nil {
		return field.Definition{}, err
	}
	return def, nil
}

func (s *FieldService) Delete(ownerID, collectionID, fieldID uint) error {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return ErrCollectionNotFound
	}
	def, err := s.Repos.Field.Get(collectionID, fieldID)
	if err != nil {
		return ErrFieldNotFound
	}
	return s.Repos.Field.Delete(def.ID)
}

// Reorder rewrites all field positions to match the given id order. The list
// must be a permutation of the collection's field ids.
func (s *FieldService) Reorder(ownerID, collectionID uint, fieldIDs []uint) ([]field.Definition, error) {
	if _, err := s.Repos.Collection.GetForOwner(collectionID, ownerID); err != nil {
		return nil, ErrCollectionNotFound
	}
	defs, err := s.Repos.Field.ListByCollection(collectionID)
	if err != nil {
		return nil, err
	}
	if !samePermutation(defs, fieldIDs) {
		return nil, ErrReorderIncomplete
	}

	if err := s.Repos.Field.UpdatePositions(collectionID, fieldIDs); err != nil {
		return nil, err
	}
	return s.Repos.Field.ListByCollection(collectionID)
}

func checkOptions(t field.FieldType, options []string) error {
	if t == field.TypeSelect {
		if len(options) == 0 {
			return ErrOptionsRequired
		}
		return nil
	}
	if len(options) > 0 {
		return ErrOptionsNotAllowed
	}
	return nil
}

func samePermutation(defs []field.Definition, ids []uint) bool {
	if len(defs) != len(ids) {
		return false
	}
	want := make(map[uint]struct{}, len(defs))
	for _, d := range defs {
		want[d.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := want[id]; !ok {
			return false
		}
		delete(want, id)
	}
	return len(want) == 0
}
