package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/image"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/storage"
	"github.com/Endogen/antique-catalogue-sub001/pkg/imaging"
)

const MaxImageBytes = 10 * 1024 * 1024

var (
	ErrImageNotFound      = errors.New("image not found")
	ErrImageEmpty         = errors.New("image file is empty")
	ErrImageTooLarge      = errors.New("image exceeds 10MB limit")
	ErrImageFilename      = errors.New("image filename is required")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrUnknownVariant     = errors.New("unknown image variant")
)

type ImageService struct {
	Repos    *repository.Repos
	Activity *ActivityService
}

func NewImageService(repos *repository.Repos, activity *ActivityService) *ImageService {
	return &ImageService{
		Repos:    repos,
		Activity: activity,
	}
}

func (s *ImageService) itemWithCollection(itemID uint) (item.Item, collection.Collection, error) {
	it, err := s.Repos.Item.GetByID(itemID)
	if err != nil {
		return item.Item{}, collection.Collection{}, ErrItemNotFound
	}
	col, err := s.Repos.Collection.GetByID(it.CollectionID)
	if err != nil {
		return item.Item{}, collection.Collection{}, ErrItemNotFound
	}
	return it, col, nil
}

func (s *ImageService) ownedItem(ownerID, itemID uint) (item.Item, collection.Collection, error) {
	it, col, err := s.itemWithCollection(itemID)
	if err != nil || col.OwnerID != ownerID {
		return item.Item{}, collection.Collection{}, ErrItemNotFound
	}
	return it, col, nil
}

// Upload re-encodes the uploaded file into all JPEG variants and stores them
// in object storage under a fresh key before recording the database row.
func (s *ImageService) Upload(ctx context.Context, ownerID, itemID uint, filename string, data []byte) (image.ItemImage, error) {
	filename = path.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		return image.ItemImage{}, ErrImageFilename
	}
	if len(data) == 0 {
		return image.ItemImage{}, ErrImageEmpty
	}
	if len(data) > MaxImageBytes {
		return image.ItemImage{}, ErrImageTooLarge
	}

	it, col, err := s.ownedItem(ownerID, itemID)
	if err != nil {
		return image.ItemImage{}, err
	}

	variants, err := imaging.GenerateVariants(data)
	if err != nil {
		return image.ItemImage{}, err
	}

	maxPos, err := s.Repos.Image.MaxPosition(it.ID)
	if err != nil {
		return image.ItemImage{}, err
	}

	storageKey := fmt.Sprintf("%d/%d/%d/%s", col.OwnerID, col.ID, it.ID, uuid.NewString())
	for name, payload := range variants {
		objectName := imaging.VariantObjectName(storageKey, name)
		if err := storage.UploadObject(ctx, objectName, "image/jpeg", payload); err != nil {
			s.removeVariants(ctx, storageKey)
			return image.ItemImage{}, err
		}
	}

	img := image.ItemImage{
		ItemID:     it.ID,
		Filename:   filename,
		StorageKey: storageKey,
		Position:   maxPos + 1,
	}
	if err := s.Repos.Image.Create(&img); err != nil {
		s.removeVariants(ctx, storageKey)
		return image.ItemImage{}, err
	}

	s.Activity.Record(ownerID, "image.uploaded", "image", &img.ID, fmt.Sprintf("Uploaded image %q to item %q", img.Filename, it.Name))
	return img, nil
}

// List returns an item's images for any caller allowed to see the item.
// A zero userID means an anonymous caller.
func (s *ImageService) List(userID, itemID uint) ([]image.ItemImage, error) {
	it, col, err := s.itemWithCollection(itemID)
	if err != nil {
		return nil, err
	}
	if col.OwnerID != userID && (!col.IsPublic || it.IsDraft) {
		return nil, ErrItemNotFound
	}
	return s.Repos.Image.ListByItem(it.ID)
}

// Reorder moves one image to the given position and resequences the rest.
func (s *ImageService) Reorder(ownerID, itemID, imageID uint, position int) (image.ItemImage, error) {
	it, _, err := s.ownedItem(ownerID, itemID)
	if err != nil {
		return image.ItemImage{}, err
	}
	img, err := s.Repos.Image.Get(it.ID, imageID)
	if err != nil {
		return image.ItemImage{}, ErrImageNotFound
	}

	images, err := s.Repos.Image.ListByItem(it.ID)
	if err != nil {
		return image.ItemImage{}, err
	}
	if position < 0 || position > len(images)-1 {
		return image.ItemImage{}, ErrPositionOutOfRange
	}

	ordered := make([]uint, 0, len(images))
	for _, existing := range images {
		if existing.ID != img.ID {
			ordered = append(ordered, existing.ID)
		}
	}
	ordered = append(ordered, 0)
	copy(ordered[position+1:], ordered[position:])
	ordered[position] = img.ID

	if err := s.Repos.Image.UpdatePositions(it.ID, ordered); err != nil {
		return image.ItemImage{}, err
	}
	img.Position = position
	return img, nil
}

func (s *ImageService) Delete(ctx context.Context, ownerID, itemID, imageID uint) error {
	it, _, err := s.ownedItem(ownerID, itemID)
	if err != nil {
		return err
	}
	img, err := s.Repos.Image.Get(it.ID, imageID)
	if err != nil {
		return ErrImageNotFound
	}

	s.removeVariants(ctx, img.StorageKey)
	if err := s.Repos.Image.Delete(img.ID); err != nil {
		return err
	}
	s.Activity.Record(ownerID, "image.deleted", "image", nil, fmt.Sprintf("Deleted image %q from item %q", img.Filename, it.Name))
	return nil
}

// Open streams one stored variant for any caller allowed to see the item.
func (s *ImageService) Open(ctx context.Context, userID, imageID uint, variant string) (io.ReadCloser, error) {
	if !imaging.ValidVariant(variant) {
		return nil, ErrUnknownVariant
	}

	img, err := s.Repos.Image.GetByID(imageID)
	if err != nil {
		return nil, ErrImageNotFound
	}
	it, col, err := s.itemWithCollection(img.ItemID)
	if err != nil {
		return nil, ErrImageNotFound
	}
	if col.OwnerID != userID && (!col.IsPublic || it.IsDraft) {
		return nil, ErrImageNotFound
	}

	rc, err := storage.OpenObject(ctx, imaging.VariantObjectName(img.StorageKey, variant))
	if err != nil {
		return nil, ErrImageNotFound
	}
	return rc, nil
}

func (s *ImageService) removeVariants(ctx context.Context, storageKey string) {
	for _, name := range imaging.VariantNames() {
		_ = storage.DeleteObject(ctx, imaging.VariantObjectName(storageKey, name))
	}
}
