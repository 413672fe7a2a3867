package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"moviecards/internal/rental/domain/entities"
	"moviecards/internal/rental/ports/repositories"
	"moviecards/pkg/logger"
)

const (
	methodCardAdd    = "CardService.Add"
	methodCardUpdate = "CardService.Update"
	methodCardRemove = "CardService.Remove"
)

const (
	errCtxAddCard    = "failed to add card"
	errCtxUpdateCard = "failed to update card"
	errCtxRemoveCard = "failed to remove card"
)

// CardService keeps card CNPs and ids unique.
type CardService struct {
	repo   repositories.RecordStore[entities.Card]
	unique uniqueness[entities.Card]
}

// NewCardService creates a CardService over repo.
func NewCardService(repo repositories.RecordStore[entities.Card]) *CardService {
	return &CardService{
		repo: repo,
		unique: uniqueness[entities.Card]{
			sameKey:       func(a, b entities.Card) bool { return a.CNP() == b.CNP() },
			errKeyExists:  entities.ErrCardCNPExists,
			errIDExists:   entities.ErrCardIDExists,
			errDiffKey:    entities.ErrDifferentCardCNPExists,
			errDiffID:     entities.ErrDifferentCardIDExists,
			errNoneOthers: entities.ErrCardNotFound,
		},
	}
}

// Add stores card unless its CNP or id is already taken.
func (s *CardService) Add(ctx context.Context, card entities.Card) error {
	log := logger.Log(ctx).With(zap.String("method", methodCardAdd))

	if err := s.unique.checkAdd(s.repo.GetAll(), card); err != nil {
		log.Warn(ctx, msgConflict, zap.Uint32("id", card.ID()), zap.Error(err))
		return err
	}

	if err := s.repo.Add(ctx, card); err != nil {
		log.Error(ctx, errCtxAddCard, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxAddCard, err)
	}

	log.Info(ctx, msgRecordAdded, zap.Uint32("id", card.ID()))
	return nil
}

// Update replaces the card at index unless another card holds its CNP or id.
func (s *CardService) Update(ctx context.Context, index int, card entities.Card) error {
	log := logger.Log(ctx).With(zap.String("method", methodCardUpdate), zap.Int("index", index))

	if err := s.unique.checkUpdate(s.repo.GetAll(), index, card); err != nil {
		log.Warn(ctx, msgConflict, zap.Uint32("id", card.ID()), zap.Error(err))
		return err
	}

	if err := s.repo.Update(ctx, index, card); err != nil {
		log.Error(ctx, errCtxUpdateCard, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdateCard, err)
	}

	log.Info(ctx, msgRecordUpdated, zap.Uint32("id", card.ID()))
	return nil
}

// Remove deletes the card at index.
func (s *CardService) Remove(ctx context.Context, index int) error {
	log := logger.Log(ctx).With(zap.String("method", methodCardRemove), zap.Int("index", index))

	if err := s.repo.Remove(ctx, index); err != nil {
		log.Warn(ctx, errCtxRemoveCard, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRemoveCard, err)
	}

	log.Info(ctx, msgRecordRemoved)
	return nil
}

func (s *CardService) Get(index int) (entities.Card, error) {
	return s.repo.Get(index)
}

func (s *CardService) GetAll() []entities.Card {
	return s.repo.GetAll()
}
