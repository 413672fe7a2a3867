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
	methodMovieAdd    = "MovieService.Add"
	methodMovieUpdate = "MovieService.Update"
	methodMovieRemove = "MovieService.Remove"
)

const (
	errCtxAddMovie    = "failed to add movie"
	errCtxUpdateMovie = "failed to update movie"
	errCtxRemoveMovie = "failed to remove movie"
)

// MovieService keeps movie titles and ids unique.
type MovieService struct {
	repo   repositories.RecordStore[entities.Movie]
	unique uniqueness[entities.Movie]
}

// NewMovieService creates a MovieService over repo.
func NewMovieService(repo repositories.RecordStore[entities.Movie]) *MovieService {
	return &MovieService{
		repo: repo,
		unique: uniqueness[entities.Movie]{
			sameKey:       func(a, b entities.Movie) bool { return a.Title() == b.Title() },
			errKeyExists:  entities.ErrMovieTitleExists,
			errIDExists:   entities.ErrMovieIDExists,
			errDiffKey:    entities.ErrDifferentMovieTitleExists,
			errDiffID:     entities.ErrDifferentMovieIDExists,
			errNoneOthers: entities.ErrMovieNotFound,
		},
	}
}

// Add stores movie unless its title or id is already taken.
func (s *MovieService) Add(ctx context.Context, movie entities.Movie) error {
	log := logger.Log(ctx).With(zap.String("method", methodMovieAdd))

	if err := s.unique.checkAdd(s.repo.GetAll(), movie); err != nil {
		log.Warn(ctx, msgConflict, zap.Uint32("id", movie.ID()), zap.Error(err))
		return err
	}

	if err := s.repo.Add(ctx, movie); err != nil {
		log.Error(ctx, errCtxAddMovie, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxAddMovie, err)
	}

	log.Info(ctx, msgRecordAdded, zap.Uint32("id", movie.ID()))
	return nil
}

// Update replaces the movie at index unless another movie holds its title or id.
func (s *MovieService) Update(ctx context.Context, index int, movie entities.Movie) error {
	log := logger.Log(ctx).With(zap.String("method", methodMovieUpdate), zap.Int("index", index))

	if err := s.unique.checkUpdate(s.repo.GetAll(), index, movie); err != nil {
		log.Warn(ctx, msgConflict, zap.Uint32("id", movie.ID()), zap.Error(err))
		return err
	}

	if err := s.repo.Update(ctx, index, movie); err != nil {
		log.Error(ctx, errCtxUpdateMovie, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdateMovie, err)
	}

	log.Info(ctx, msgRecordUpdated, zap.Uint32("id", movie.ID()))
	return nil
}

// Remove deletes the movie at index.
func (s *MovieService) Remove(ctx context.Context, index int) error {
	log := logger.Log(ctx).With(zap.String("method", methodMovieRemove), zap.Int("index", index))

	if err := s.repo.Remove(ctx, index); err != nil {
		log.Warn(ctx, errCtxRemoveMovie, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRemoveMovie, err)
	}

	log.Info(ctx, msgRecordRemoved)
	return nil
}

func (s *MovieService) Get(index int) (entities.Movie, error) {
	return s.repo.Get(index)
}

func (s *MovieService) GetAll() []entities.Movie {
	return s.repo.GetAll()
}
