package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lingolist/internal/domain"
	"lingolist/internal/repository"

	"go.uber.org/zap"
)

// Translating is the translation boundary CaptureService needs.
// Implemented by TranslationService.
type Translating interface {
	Translate(ctx context.Context, text, targetLang string) (*domain.Translation, error)
}

// CaptureService records recognized objects and translates them.
type CaptureService struct {
	captureRepo repository.CaptureRepository
	translation Translating
	logger      *zap.Logger
}

// NewCaptureService creates a new capture service
func NewCaptureService(captureRepo repository.CaptureRepository, translation Translating, logger *zap.Logger) *CaptureService {
	return &CaptureService{
		captureRepo: captureRepo,
		translation: translation,
		logger:      logger,
	}
}

// Create stores a capture and translates its object name. Capturing the
// same object for the same language twice returns the existing capture
// instead of creating a duplicate. If translation fails the capture
// stays in pending_translation and the failure is returned; a retry
// hits the same id and picks the pending row up where it left off.
func (s *CaptureService) Create(ctx context.Context, ownerID, objectName, targetLang string, accuracy *float64, mimeType string, sizeBytes int64) (*domain.Capture, error) {
	if ownerID == "" || targetLang == "" {
		return nil, fmt.Errorf("owner id and target language are required: %w", domain.ErrInvalidArgument)
	}
	if domain.Slug(objectName) == "" {
		return nil, fmt.Errorf("object name is required: %w", domain.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	capture := &domain.Capture{
		OwnerID:        ownerID,
		CaptureID:      domain.NewCaptureID(objectName, targetLang, ownerID),
		ObjectName:     domain.Slug(objectName),
		TargetLang:     targetLang,
		Accuracy:       accuracy,
		ImageMimeType:  mimeType,
		ImageSizeBytes: sizeBytes,
		Status:         domain.CaptureStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.captureRepo.Insert(capture); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, getErr := s.captureRepo.Get(ownerID, capture.CaptureID)
			if getErr != nil {
				return nil, getErr
			}
			if existing.Status == domain.CaptureStatusTranslated {
				return existing, nil
			}
			// The earlier attempt never got its translation; finish the
			// job now instead of handing back a pending row forever.
			return s.translate(ctx, existing)
		}
		return nil, err
	}

	capture, err := s.translate(ctx, capture)
	if err != nil {
		return nil, err
	}

	s.logger.Info("capture created",
		zap.String("owner_id", ownerID),
		zap.String("capture_id", capture.CaptureID),
	)
	return capture, nil
}

func (s *CaptureService) translate(ctx context.Context, capture *domain.Capture) (*domain.Capture, error) {
	tr, err := s.translation.Translate(ctx, capture.ObjectName, capture.TargetLang)
	if err != nil {
		s.logger.Error("capture translation failed",
			zap.String("capture_id", capture.CaptureID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.captureRepo.SetTranslation(capture.OwnerID, capture.CaptureID, tr.WordID, tr.TranslatedWord, domain.CaptureStatusTranslated, now); err != nil {
		return nil, err
	}

	capture.WordID = tr.WordID
	capture.TranslatedWord = tr.TranslatedWord
	capture.Status = domain.CaptureStatusTranslated
	capture.UpdatedAt = now
	return capture, nil
}

// Get returns one capture
func (s *CaptureService) Get(ownerID, captureID string) (*domain.Capture, error) {
	return s.captureRepo.Get(ownerID, captureID)
}

// Delete removes a capture
func (s *CaptureService) Delete(ownerID, captureID string) error {
	return s.captureRepo.Delete(ownerID, captureID)
}

// List returns all captures of the owner, newest first
func (s *CaptureService) List(ownerID string) ([]domain.Capture, error) {
	return s.captureRepo.ListByOwner(ownerID)
}
