package service

import (
	"errors"
	"fmt"
	"time"

	"lingolist/internal/domain"
	"lingolist/internal/repository"

	"go.uber.org/zap"
)

// MaxTargetLists bounds one multi-list add request.
const MaxTargetLists = 5

// LanguageListEnsurer provides get-or-create of per-language lists.
// Implemented by ListService.
type LanguageListEnsurer interface {
	EnsureLanguageList(ownerID, targetLang string) (*domain.List, bool, error)
}

// InsertService adds one vocabulary item to several lists at once, with
// independent per-target outcomes.
type InsertService struct {
	listRepo    repository.ListRepository
	itemRepo    repository.ItemRepository
	captureRepo repository.CaptureRepository
	wordRepo    repository.WordRepository
	langLists   LanguageListEnsurer
	logger      *zap.Logger
}

// NewInsertService creates a new multi-list insert service
func NewInsertService(
	listRepo repository.ListRepository,
	itemRepo repository.ItemRepository,
	captureRepo repository.CaptureRepository,
	wordRepo repository.WordRepository,
	langLists LanguageListEnsurer,
	logger *zap.Logger,
) *InsertService {
	return &InsertService{
		listRepo:    listRepo,
		itemRepo:    itemRepo,
		captureRepo: captureRepo,
		wordRepo:    wordRepo,
		langLists:   langLists,
		logger:      logger,
	}
}

// AddItem resolves the word and its target language once, maintains the
// owner's language list best-effort, then attempts each requested list
// independently. Per-target failures are reported in the result, never
// returned as an error; only argument validation and the up-front
// lookups can fail the whole call.
func (s *InsertService) AddItem(ownerID, wordID, captureID string, targetListIDs []string) (*domain.MultiAddResult, error) {
	if ownerID == "" || wordID == "" || captureID == "" {
		return nil, fmt.Errorf("owner id, word id and capture id are required: %w", domain.ErrInvalidArgument)
	}
	if len(targetListIDs) == 0 || len(targetListIDs) > MaxTargetLists {
		return nil, fmt.Errorf("between 1 and %d target lists allowed, got %d: %w",
			MaxTargetLists, len(targetListIDs), domain.ErrInvalidArgument)
	}

	capture, err := s.captureRepo.Get(ownerID, captureID)
	if err != nil {
		return nil, err
	}
	targetLang := capture.TargetLang

	word, err := s.wordRepo.Get(wordID)
	if err != nil {
		return nil, err
	}
	translated, ok := word.Translations[targetLang]
	if !ok {
		return nil, fmt.Errorf("word %q has no %s translation: %w", wordID, targetLang, domain.ErrNotFound)
	}

	item := domain.Item{
		OwnerID:        ownerID,
		WordID:         wordID,
		OriginalWord:   word.OriginalWord,
		TranslatedWord: translated,
		TranslatedLang: targetLang,
		CaptureID:      captureID,
		AddedAt:        time.Now().UTC(),
	}

	// Language-list maintenance is best-effort: a failure here is
	// logged and must not abort the requested lists.
	langItemAdded := false
	langList, _, err := s.langLists.EnsureLanguageList(ownerID, targetLang)
	if err != nil {
		s.logger.Warn("failed to ensure language list",
			zap.String("owner_id", ownerID),
			zap.String("target_lang", targetLang),
			zap.Error(err),
		)
	} else {
		status := s.addToList(langList.ListID, item)
		langItemAdded = status == domain.AddOutcomeSuccess
		if !langItemAdded {
			s.logger.Info("item not added to language list",
				zap.String("list_id", langList.ListID),
				zap.String("status", status),
			)
		}
	}

	result := &domain.MultiAddResult{LangItemAdded: langItemAdded}
	for _, listID := range targetListIDs {
		status := s.addToList(listID, item)
		result.Outcomes = append(result.Outcomes, domain.ListOutcome{ListID: listID, Status: status})
		if status == domain.AddOutcomeSuccess {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
	}

	s.logger.Info("multi-list add finished",
		zap.String("owner_id", ownerID),
		zap.String("word_id", wordID),
		zap.Int("success", result.SuccessCount),
		zap.Int("failed", result.FailedCount),
		zap.Bool("lang_item_added", langItemAdded),
	)
	return result, nil
}

func (s *InsertService) addToList(listID string, item domain.Item) string {
	item.ListID = listID

	if _, err := s.listRepo.Get(item.OwnerID, listID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AddOutcomeNotFound
		}
		s.logger.Error("list lookup failed", zap.String("list_id", listID), zap.Error(err))
		return domain.AddOutcomeFailed
	}

	if err := s.itemRepo.Insert(&item); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.AddOutcomeDuplicate
		}
		s.logger.Error("item insert failed", zap.String("list_id", listID), zap.Error(err))
		return domain.AddOutcomeFailed
	}

	if err := s.listRepo.IncrementWordCount(item.OwnerID, listID, 1, item.AddedAt); err != nil {
		// The item row landed; the counter is cached and self-heals on
		// the next item read.
		s.logger.Warn("failed to increment word count",
			zap.String("list_id", listID),
			zap.Error(err),
		)
	}
	return domain.AddOutcomeSuccess
}
