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
	methodReservationAdd    = "ReservationService.Add"
	methodReservationUpdate = "ReservationService.Update"
	methodReservationRemove = "ReservationService.Remove"
)

const (
	errCtxAddReservation    = "failed to add reservation"
	errCtxUpdateReservation = "failed to update reservation"
	errCtxRemoveReservation = "failed to remove reservation"
)

// ReservationService keeps reservation ids unique. Movie and card ids are
// stored as given.
type ReservationService struct {
	repo   repositories.RecordStore[entities.Reservation]
	unique uniqueness[entities.Reservation]
}

func NewReservationService(repo repositories.RecordStore[entities.Reservation]) *ReservationService {
	return &ReservationService{
		repo: repo,
		unique: uniqueness[entities.Reservation]{
			errIDExists:   entities.ErrReservationIDExists,
			errDiffID:     entities.ErrDifferentReservationIDExists,
			errNoneOthers: entities.ErrReservationNotFound,
		},
	}
}

func (s *ReservationService) Add(ctx context.Context, reservation entities.Reservation) error {
	log := logger.Log(ctx).With(zap.String("method", methodReservationAdd))

	if err := s.unique.checkAdd(s.repo.GetAll(), reservation); err != nil {
		log.Warn(ctx, msgConflict, zap.Uint32("id", reservation.ID()), zap.Error(err))
		return err
	}

	if err := s.repo.Add(ctx, reservation); err != nil {
		log.Error(ctx, errCtxAddReservation, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxAddReservation, err)
	}

	log.Info(ctx, msgRecordAdded,
		zap.Uint32("id", reservation.ID()),
		zap.Uint32("movie_id", reservation.MovieID()))
	return nil
}

func (s *ReservationService) Update(ctx context.Context, index int, reservation entities.Reservation) error {
	log := logger.Log(ctx).With(zap.String("method", methodReservationUpdate), zap.Int("index", index))

	if err := s.unique.checkUpdate(s.repo.GetAll(), index, reservation); err != nil {
		log.Warn(ctx, msgConflict, zap.Uint32("id", reservation.ID()), zap.Error(err))
		return err
	}

	if err := s.repo.Update(ctx, index, reservation); err != nil {
		log.Error(ctx, errCtxUpdateReservation, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdateReservation, err)
	}

	log.Info(ctx, msgRecordUpdated, zap.Uint32("id", reservation.ID()))
	return nil
}

func (s *ReservationService) Remove(ctx context.Context, index int) error {
	log := logger.Log(ctx).With(zap.String("method", methodReservationRemove), zap.Int("index", index))

	if err := s.repo.Remove(ctx, index); err != nil {
		log.Warn(ctx, errCtxRemoveReservation, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRemoveReservation, err)
	}

	log.Info(ctx, msgRecordRemoved)
	return nil
}

func (s *ReservationService) Get(index int) (entities.Reservation, error) {
	return s.repo.Get(index)
}

func (s *ReservationService) GetAll() []entities.Reservation {
	return s.repo.GetAll()
}
