package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lingolist/internal/assets"
	"lingolist/internal/domain"
	"lingolist/internal/repository"

	"go.uber.org/zap"
)

// ListService handles list and item business logic, including the
// per-language aggregation lists.
type ListService struct {
	listRepo  repository.ListRepository
	itemRepo  repository.ItemRepository
	shareRepo repository.SharedCodeRepository
	assets    assets.Store
	logger    *zap.Logger
}

// NewListService creates a new list service
func NewListService(
	listRepo repository.ListRepository,
	itemRepo repository.ItemRepository,
	shareRepo repository.SharedCodeRepository,
	assetStore assets.Store,
	logger *zap.Logger,
) *ListService {
	return &ListService{
		listRepo:  listRepo,
		itemRepo:  itemRepo,
		shareRepo: shareRepo,
		assets:    assetStore,
		logger:    logger,
	}
}

// Create makes a new list for the owner. The id is derived from the
// normalized name, so two names that normalize the same collide with
// ErrAlreadyExists. An optional cover image is uploaded first.
func (s *ListService) Create(ctx context.Context, ownerID, listName string, cover []byte, coverType string) (*domain.List, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id is required: %w", domain.ErrInvalidArgument)
	}
	if domain.Slug(listName) == "" {
		return nil, fmt.Errorf("list name is required: %w", domain.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	list := &domain.List{
		OwnerID:    ownerID,
		ListID:     domain.NewListID(listName, ownerID),
		ListName:   listName,
		Visibility: domain.VisibilityPrivate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if len(cover) > 0 {
		uploaded, err := s.assets.Upload(ctx, cover, coverType)
		if err != nil {
			return nil, fmt.Errorf("upload cover image: %w", domain.ErrExternalFailure)
		}
		list.CoverURL = uploaded.URL
		list.CoverAssetID = uploaded.AssetID
	}

	if err := s.listRepo.Insert(list); err != nil {
		// The cover went up before the insert; do not leave it orphaned
		// when the list never materializes.
		if list.CoverAssetID != "" {
			if delErr := s.assets.Delete(ctx, list.CoverAssetID); delErr != nil {
				s.logger.Warn("failed to delete orphaned cover asset",
					zap.String("asset_id", list.CoverAssetID),
					zap.Error(delErr),
				)
			}
		}
		return nil, err
	}

	s.logger.Info("list created",
		zap.String("owner_id", ownerID),
		zap.String("list_id", list.ListID),
	)
	return list, nil
}

// Get returns one list
func (s *ListService) Get(ownerID, listID string) (*domain.List, error) {
	return s.listRepo.Get(ownerID, listID)
}

// List returns all lists of the owner
func (s *ListService) List(ownerID string) ([]domain.List, error) {
	return s.listRepo.ListByOwner(ownerID)
}

// Rename changes the display name of a list
func (s *ListService) Rename(ownerID, listID, listName string) error {
	if domain.Slug(listName) == "" {
		return fmt.Errorf("list name is required: %w", domain.ErrInvalidArgument)
	}
	return s.listRepo.Rename(ownerID, listID, listName, time.Now().UTC())
}

// Items returns all items of a list. The cached word count is
// reconciled against the real item count while we have it.
func (s *ListService) Items(ownerID, listID string) ([]domain.Item, error) {
	list, err := s.listRepo.Get(ownerID, listID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByList(ownerID, listID)
	if err != nil {
		return nil, err
	}

	if list.WordCount != len(items) {
		s.logger.Warn("word count drifted, reconciling",
			zap.String("list_id", listID),
			zap.Int("cached", list.WordCount),
			zap.Int("actual", len(items)),
		)
		if err := s.listRepo.SetWordCount(ownerID, listID, len(items), time.Now().UTC()); err != nil {
			s.logger.Error("failed to reconcile word count", zap.String("list_id", listID), zap.Error(err))
		}
	}

	return items, nil
}

// RemoveItem deletes one item and decrements the cached counter
// atomically.
func (s *ListService) RemoveItem(ownerID, listID, wordID string) error {
	if _, err := s.listRepo.Get(ownerID, listID); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ownerID, listID, wordID); err != nil {
		return err
	}
	if err := s.listRepo.IncrementWordCount(ownerID, listID, -1, time.Now().UTC()); err != nil {
		// The item is gone; the counter is a cached value and will be
		// reconciled on the next read.
		s.logger.Warn("failed to decrement word count",
			zap.String("list_id", listID),
			zap.Error(err),
		)
	}
	return nil
}

// SetCoverImage uploads a new cover and records it on the list. The
// previous asset, if any, is deleted best-effort.
func (s *ListService) SetCoverImage(ctx context.Context, ownerID, listID string, cover []byte, coverType string) (*domain.List, error) {
	if len(cover) == 0 {
		return nil, fmt.Errorf("cover image is required: %w", domain.ErrInvalidArgument)
	}

	list, err := s.listRepo.Get(ownerID, listID)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.assets.Upload(ctx, cover, coverType)
	if err != nil {
		s.logger.Error("cover upload failed", zap.String("list_id", listID), zap.Error(err))
		return nil, fmt.Errorf("upload cover image: %w", domain.ErrExternalFailure)
	}

	now := time.Now().UTC()
	if err := s.listRepo.SetCover(ownerID, listID, uploaded.URL, uploaded.AssetID, now); err != nil {
		return nil, err
	}

	if list.CoverAssetID != "" {
		if err := s.assets.Delete(ctx, list.CoverAssetID); err != nil {
			s.logger.Warn("failed to delete replaced cover asset",
				zap.String("asset_id", list.CoverAssetID),
				zap.Error(err),
			)
		}
	}

	list.CoverURL = uploaded.URL
	list.CoverAssetID = uploaded.AssetID
	list.UpdatedAt = now
	return list, nil
}

// Delete removes a list and cascades: items first (so a racing item
// write cannot resurrect the list), then the cover asset, then every
// share token is soft-deleted, then the list row itself.
func (s *ListService) Delete(ctx context.Context, ownerID, listID string) error {
	list, err := s.listRepo.Get(ownerID, listID)
	if err != nil {
		return err
	}

	if err := s.itemRepo.DeleteAll(ownerID, listID); err != nil {
		return err
	}

	if list.CoverAssetID != "" {
		if err := s.assets.Delete(ctx, list.CoverAssetID); err != nil {
			s.logger.Error("failed to delete cover asset",
				zap.String("asset_id", list.CoverAssetID),
				zap.Error(err),
			)
			return fmt.Errorf("delete cover asset: %w", domain.ErrExternalFailure)
		}
	}

	if err := s.shareRepo.SoftDeleteByList(ownerID, listID); err != nil {
		return err
	}

	if err := s.listRepo.Delete(ownerID, listID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	s.logger.Info("list deleted",
		zap.String("owner_id", ownerID),
		zap.String("list_id", listID),
	)
	return nil
}

// EnsureLanguageList returns the owner's aggregation list for the
// target language, creating it on first use. The id is deterministic,
// so concurrent first-callers cannot produce a duplicate; the insert is
// conditional and the loser simply reads the winner's row.
func (s *ListService) EnsureLanguageList(ownerID, targetLang string) (*domain.List, bool, error) {
	if ownerID == "" || targetLang == "" {
		return nil, false, fmt.Errorf("owner id and target language are required: %w", domain.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	list := &domain.List{
		OwnerID:     ownerID,
		ListID:      domain.LanguageListID(targetLang, ownerID),
		ListName:    "Language: " + targetLang,
		Description: "Words translated to " + targetLang,
		Languages:   []string{targetLang},
		Visibility:  domain.VisibilityPrivate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.listRepo.InsertIfAbsent(list)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info("language list created",
			zap.String("owner_id", ownerID),
			zap.String("target_lang", targetLang),
		)
		return list, true, nil
	}

	existing, err := s.listRepo.Get(ownerID, list.ListID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
