package service

import (
	"context"
	"fmt"
	"strings"

	"lingolist/internal/domain"
	"lingolist/internal/repository"
	"lingolist/internal/translator"

	"go.uber.org/zap"
)

// TranslationService answers (text, targetLang) lookups from the shared
// word cache, falling through to the remote provider on a miss.
type TranslationService struct {
	wordRepo repository.WordRepository
	provider translator.Provider
	logger   *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(wordRepo repository.WordRepository, provider translator.Provider, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		wordRepo: wordRepo,
		provider: provider,
		logger:   logger,
	}
}

// Translate returns the translation of text into targetLang, serving
// from the cache when the word already carries that language.
func (s *TranslationService) Translate(ctx context.Context, text, targetLang string) (*domain.Translation, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || targetLang == "" {
		return nil, fmt.Errorf("text and target language are required: %w", domain.ErrInvalidArgument)
	}

	wordID := domain.NewWordID(text)
	word, err := s.wordRepo.FindByOriginal(text)
	if err != nil {
		return nil, err
	}
	if word != nil {
		wordID = word.WordID
		if cached, ok := word.Translations[targetLang]; ok {
			return &domain.Translation{
				WordID:         wordID,
				OriginalWord:   text,
				TranslatedWord: cached,
				TargetLang:     targetLang,
				Cached:         true,
			}, nil
		}
	}

	translated, err := s.provider.Translate(ctx, text, targetLang)
	if err != nil {
		s.logger.Error("remote translation failed",
			zap.String("text", text),
			zap.String("target_lang", targetLang),
			zap.Error(err),
		)
		return nil, fmt.Errorf("translate %q: %w", text, domain.ErrExternalFailure)
	}

	if err := s.wordRepo.Upsert(wordID, text, targetLang, translated); err != nil {
		return nil, err
	}

	return &domain.Translation{
		WordID:         wordID,
		OriginalWord:   text,
		TranslatedWord: translated,
		TargetLang:     targetLang,
	}, nil
}
