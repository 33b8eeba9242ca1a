package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/willowworks/batrack/internal/model"
	"github.com/willowworks/batrack/internal/repository"
	"github.com/willowworks/batrack/internal/validation"
)

// BatService owns the listing lifecycle. Record writes and image-file writes
// are not transactional; create stores the image first and deletion removes
// the image before the record, accepting the small partial-failure window.
type BatService struct {
	batRepository repository.BatRepository
	uploads       *UploadService
}

func NewBatService(batRepository repository.BatRepository, uploads *UploadService) *BatService {
	return &BatService{
		batRepository: batRepository,
		uploads:       uploads,
	}
}

// Create persists a listing owned by ownerID. The image must already be in
// storage; imagePath is required.
func (s *BatService) Create(ownerID string, fields *validation.BatFields, imagePath string) (*model.Bat, error) {
	if imagePath == "" {
		return nil, errors.New("image is required")
	}

	bat := &model.Bat{
		ID:              uuid.New().String(),
		UserID:          ownerID,
		BrandName:       fields.BrandName,
		Price:           fields.Price,
		Description:     fields.Description,
		BrandAmbassador: fields.BrandAmbassador,
		ImagePath:       imagePath,
		CreatedAt:       time.Now(),
	}

	err := s.batRepository.Create(bat)
	if err != nil {
		return nil, fmt.Errorf("failed to create bat: %w", err)
	}

	slog.Info("bat created", "bat_id", bat.ID, "user_id", ownerID, "brand", bat.BrandName)
	return bat, nil
}

// Bats returns every listing, newest first.
func (s *BatService) Bats() ([]*model.Bat, error) {
	return s.batRepository.All()
}

func (s *BatService) ByID(id string) (*model.Bat, error) {
	return s.batRepository.ByID(id)
}

// Update changes the mutable fields of a listing. Brand name, image and
// owner stay as created.
func (s *BatService) Update(id string, price float64, description, brandAmbassador string) (*model.Bat, error) {
	bat, err := s.batRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	bat.Price = price
	bat.Description = description
	bat.BrandAmbassador = brandAmbassador

	err = s.batRepository.Update(bat)
	if err != nil {
		return nil, fmt.Errorf("failed to update bat: %w", err)
	}

	return bat, nil
}

// Delete removes the backing image and then the record. Image removal is
// best effort: a storage failure is logged but does not keep the record
// alive.
func (s *BatService) Delete(id string) error {
	bat, err := s.batRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.uploads.Remove(bat.ImagePath)
	if err != nil {
		slog.Warn("failed to remove bat image, deleting record anyway", "error", err, "bat_id", id, "path", bat.ImagePath)
	}

	err = s.batRepository.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete bat: %w", err)
	}

	slog.Info("bat deleted", "bat_id", id)
	return nil
}

// ImageURL returns the serving URL for a listing's image.
func (s *BatService) ImageURL(bat *model.Bat) string {
	return s.uploads.URL(bat.ImagePath)
}
