package service

import (
	"errors"
	"fmt"
	"time"

	"lingolist/internal/domain"
	"lingolist/internal/repository"

	"go.uber.org/zap"
)

// FlashcardService cuts study cards from translated captures.
type FlashcardService struct {
	flashcardRepo repository.FlashcardRepository
	captureRepo   repository.CaptureRepository
	logger        *zap.Logger
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(flashcardRepo repository.FlashcardRepository, captureRepo repository.CaptureRepository, logger *zap.Logger) *FlashcardService {
	return &FlashcardService{
		flashcardRepo: flashcardRepo,
		captureRepo:   captureRepo,
		logger:        logger,
	}
}

// Create makes a flashcard from a translated capture, denormalizing the
// word fields onto the card. The id is deterministic per capture, so
// creating twice returns the existing card. A capture still awaiting
// its translation cannot become a card.
func (s *FlashcardService) Create(ownerID, captureID, description string) (*domain.Flashcard, error) {
	if ownerID == "" || captureID == "" {
		return nil, fmt.Errorf("owner id and capture id are required: %w", domain.ErrInvalidArgument)
	}

	capture, err := s.captureRepo.Get(ownerID, captureID)
	if err != nil {
		return nil, err
	}
	if capture.WordID == "" || capture.TranslatedWord == "" {
		return nil, fmt.Errorf("capture %q is not translated: %w", captureID, domain.ErrInvalidArgument)
	}

	card := &domain.Flashcard{
		OwnerID:        ownerID,
		FlashcardID:    domain.NewFlashcardID(captureID),
		CaptureID:      captureID,
		WordID:         capture.WordID,
		OriginalText:   capture.ObjectName,
		TranslatedText: capture.TranslatedWord,
		TargetLang:     capture.TargetLang,
		Description:    description,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.flashcardRepo.Insert(card); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.flashcardRepo.Get(ownerID, card.FlashcardID)
		}
		return nil, err
	}

	s.logger.Info("flashcard created",
		zap.String("owner_id", ownerID),
		zap.String("flashcard_id", card.FlashcardID),
	)
	return card, nil
}

// List returns all flashcards of the owner, newest first
func (s *FlashcardService) List(ownerID string) ([]domain.Flashcard, error) {
	return s.flashcardRepo.ListByOwner(ownerID)
}

// Delete removes a flashcard
func (s *FlashcardService) Delete(ownerID, flashcardID string) error {
	return s.flashcardRepo.Delete(ownerID, flashcardID)
}
