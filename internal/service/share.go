package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"lingolist/internal/domain"
	"lingolist/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// shareCodeBytes gives a 12-character base64url token. The token is
// pure randomness: it cannot be decoded back to owner or list ids.
const shareCodeBytes = 9

// ShareService issues, resolves and imports share tokens.
type ShareService struct {
	shareRepo repository.SharedCodeRepository
	listRepo  repository.ListRepository
	itemRepo  repository.ItemRepository
	baseURL   string
	logger    *zap.Logger
}

// NewShareService creates a new share service
func NewShareService(
	shareRepo repository.SharedCodeRepository,
	listRepo repository.ListRepository,
	itemRepo repository.ItemRepository,
	baseURL string,
	logger *zap.Logger,
) *ShareService {
	return &ShareService{
		shareRepo: shareRepo,
		listRepo:  listRepo,
		itemRepo:  itemRepo,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Issue generates an opaque token for a list, persists the mapping and
// flips the list public.
func (s *ShareService) Issue(ownerID, listID string) (*domain.SharedCode, error) {
	if ownerID == "" || listID == "" {
		return nil, fmt.Errorf("owner id and list id are required: %w", domain.ErrInvalidArgument)
	}

	if _, err := s.listRepo.Get(ownerID, listID); err != nil {
		return nil, err
	}

	code, err := newShareCode()
	if err != nil {
		return nil, fmt.Errorf("generate share code: %w", err)
	}

	now := time.Now().UTC()
	sc := &domain.SharedCode{
		SharedID:   uuid.NewString(),
		SharedCode: code,
		OwnerID:    ownerID,
		ListID:     listID,
		ShareURL:   s.baseURL + "/shared/" + code,
		CreatedAt:  now,
	}
	if err := s.shareRepo.Insert(sc); err != nil {
		return nil, err
	}

	if err := s.listRepo.SetVisibility(ownerID, listID, domain.VisibilityPublic, now); err != nil {
		return nil, err
	}

	s.logger.Info("share code issued",
		zap.String("owner_id", ownerID),
		zap.String("list_id", listID),
	)
	return sc, nil
}

// Resolve looks a token up in the registry and returns the list
// snapshot with its items. Deleted tokens and vanished lists both
// surface as ErrNotFound.
func (s *ShareService) Resolve(sharedCode string) (*domain.SharedList, error) {
	if sharedCode == "" {
		return nil, fmt.Errorf("shared code is required: %w", domain.ErrInvalidArgument)
	}

	sc, err := s.shareRepo.GetByCode(sharedCode)
	if err != nil {
		return nil, err
	}

	list, err := s.listRepo.Get(sc.OwnerID, sc.ListID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByList(sc.OwnerID, sc.ListID)
	if err != nil {
		return nil, err
	}

	return &domain.SharedList{OwnerID: sc.OwnerID, List: list, Items: items}, nil
}

// Import clones a shared list into the importing owner's namespace:
// first the list document, then every item as a denormalized snapshot
// in one batch. Later changes to the source never reach the copy.
func (s *ShareService) Import(importerID, sharedCode string) (*domain.ImportResult, error) {
	if importerID == "" {
		return nil, fmt.Errorf("importer id is required: %w", domain.ErrInvalidArgument)
	}

	shared, err := s.Resolve(sharedCode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newListID := domain.ImportedListID(shared.List.ListID)
	newList := &domain.List{
		OwnerID:      importerID,
		ListID:       newListID,
		ListName:     shared.List.ListName + " (Imported)",
		Description:  shared.List.Description,
		Languages:    shared.List.Languages,
		Visibility:   domain.VisibilityPrivate,
		Imported:     true,
		ImportedFrom: shared.OwnerID,
		WordCount:    len(shared.Items),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.listRepo.Insert(newList); err != nil {
		return nil, err
	}

	copies := make([]domain.Item, 0, len(shared.Items))
	for _, src := range shared.Items {
		copies = append(copies, domain.Item{
			OwnerID:        importerID,
			ListID:         newListID,
			WordID:         src.WordID,
			OriginalWord:   src.OriginalWord,
			TranslatedWord: src.TranslatedWord,
			TranslatedLang: src.TranslatedLang,
			Note:           src.Note,
			AddedAt:        now,
		})
	}
	if err := s.itemRepo.InsertBatch(copies); err != nil {
		// The list document is already written; the recount below
		// cannot run, so surface the partial import to the caller.
		return nil, fmt.Errorf("copy shared items: %w", err)
	}

	// The list write and the item batch are two separate round trips.
	// Recompute the counter from the rows that actually landed.
	count, err := s.itemRepo.Count(importerID, newListID)
	if err != nil {
		s.logger.Warn("failed to recount imported items", zap.String("list_id", newListID), zap.Error(err))
	} else if count != newList.WordCount {
		if err := s.listRepo.SetWordCount(importerID, newListID, count, time.Now().UTC()); err != nil {
			s.logger.Warn("failed to reconcile imported word count", zap.String("list_id", newListID), zap.Error(err))
		}
	}

	s.logger.Info("shared list imported",
		zap.String("importer_id", importerID),
		zap.String("list_id", newListID),
		zap.Int("item_count", len(copies)),
	)
	return &domain.ImportResult{ImportedListID: newListID, ItemCount: len(copies)}, nil
}

func newShareCode() (string, error) {
	b := make([]byte, shareCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
