// Package main is the entry point of the movie rental data manager.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"moviecards/internal/rental/adapters/flatfile"
	"moviecards/internal/rental/adapters/redislist"
	"moviecards/internal/rental/adapters/store"
	"moviecards/internal/rental/app"
	"moviecards/internal/rental/config"
	"moviecards/internal/rental/domain/entities"
	"moviecards/internal/rental/ports/repositories"
	"moviecards/pkg/db/redis"
	"moviecards/pkg/logger"
	"moviecards/pkg/shutdown"
)

const (
	EnvLoggerMode  = "RENTAL_LOGGER_MODE"
	EnvLoggerLevel = "RENTAL_LOGGER_LEVEL"
	EnvRunID       = "RENTAL_RUN_ID"
)

const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitRedis            = "failed to connect to redis"
	ErrLoadStore            = "failed to load store"
	ErrSampleData           = "sample operation rejected"
	ErrShutdown             = "failed to persist stores"
	ErrReleaseResources     = "failed to release resources"
)

// Sync errors zap reports for terminals; they are harmless.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

const (
	LogStarted       = "movie rental started"
	LogInitStorage   = "initializing storage"
	LogLoadingStores = "loading stores"
	LogSampleData    = "running sample operations"
	LogSampleAdded   = "sample added"
	LogStoreSummary  = "store contents"
	LogClosingRedis  = "closing redis connection"
	LogDone          = "movie rental finished"
)

type stores struct {
	cards        *store.Store[entities.Card]
	movies       *store.Store[entities.Movie]
	reservations *store.Store[entities.Reservation]
}

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}
	logger.SetGlobalLogger(log)

	ctx := logger.NewRunContext(context.Background(), os.Getenv(EnvRunID))

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogStarted,
			zap.String("backend", cfg.Storage.Backend),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitStorage)
		var (
			s       stores
			closers []shutdown.Hook
		)
		if cfg.Storage.UseRedis() {
			client, err := redis.NewClient(ctx, cfg.Redis.ToClientConfig())
			if err != nil {
				log.Error(ctx, ErrInitRedis, zap.Error(err))
				exitCode = 1
				return
			}
			closers = append(closers, func(context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return client.Close()
			})
			s = newStores(
				redislist.New(client.RawClient(), cfg.Redis.KeyPrefix, "cards"),
				redislist.New(client.RawClient(), cfg.Redis.KeyPrefix, "movies"),
				redislist.New(client.RawClient(), cfg.Redis.KeyPrefix, "reservations"),
			)
		} else {
			s = newStores(
				flatfile.New(cfg.Storage.CardsPath()),
				flatfile.New(cfg.Storage.MoviesPath()),
				flatfile.New(cfg.Storage.ReservationsPath()),
			)
		}

		log.Info(ctx, LogLoadingStores)
		if err := s.load(ctx); err != nil {
			log.Error(ctx, ErrLoadStore, zap.Error(err))
			if err := shutdown.Run(ctx, cfg.Shutdown.GetTimeout(), closers...); err != nil {
				log.Error(ctx, ErrReleaseResources, zap.Error(err))
			}
			exitCode = 1
			return
		}

		log.Info(ctx, LogSampleData)
		runSample(ctx, log,
			app.NewCardService(s.cards),
			app.NewMovieService(s.movies),
			app.NewReservationService(s.reservations))

		log.Info(ctx, LogStoreSummary,
			zap.Int("cards", s.cards.Len()),
			zap.Int("movies", s.movies.Len()),
			zap.Int("reservations", s.reservations.Len()))

		hooks := append([]shutdown.Hook{s.cards.Save, s.movies.Save, s.reservations.Save}, closers...)
		if err := shutdown.Run(ctx, cfg.Shutdown.GetTimeout(), hooks...); err != nil {
			log.Error(ctx, ErrShutdown, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func newStores(cards, movies, reservations repositories.LineStorage) stores {
	return stores{
		cards:        store.New(cards, entities.CardFromCSV, "cards"),
		movies:       store.New(movies, entities.MovieFromCSV, "movies"),
		reservations: store.New(reservations, entities.ReservationFromCSV, "reservations"),
	}
}

func (s stores) load(ctx context.Context) error {
	return errors.Join(
		s.cards.Load(ctx),
		s.movies.Load(ctx),
		s.reservations.Load(ctx),
	)
}

// runSample adds one record of each kind. Conflicts with what is already
// stored are logged and skipped.
func runSample(ctx context.Context, log *logger.Logger, cards *app.CardService, movies *app.MovieService, reservations *app.ReservationService) {
	birthday, birthdayErr := entities.NewDate(26, 4, 2000)
	registered, registeredErr := entities.NewDate(30, 5, 2003)
	showing, showingErr := entities.NewDate(14, 2, 2024)

	var card entities.Card
	err := errors.Join(birthdayErr, registeredErr)
	if err == nil {
		card, err = entities.NewCard(1, "Adrian", "Placinta", "1234567890123", birthday, registered, 0)
	}
	if err == nil {
		err = cards.Add(ctx, card)
	}
	logSample(ctx, log, "card", err)

	movie, err := entities.NewMovie(1, "Casablanca", 1942, 30, true)
	if err == nil {
		err = movies.Add(ctx, movie)
	}
	logSample(ctx, log, "movie", err)

	cardID := card.ID()
	err = showingErr
	var reservation entities.Reservation
	if err == nil {
		reservation, err = entities.NewReservation(1, movie.ID(), &cardID, showing, "19:30")
	}
	if err == nil {
		err = reservations.Add(ctx, reservation)
	}
	logSample(ctx, log, "reservation", err)
}

func logSample(ctx context.Context, log *logger.Logger, kind string, err error) {
	if err != nil {
		log.Warn(ctx, ErrSampleData, zap.String("kind", kind), zap.Error(err))
		return
	}
	log.Info(ctx, LogSampleAdded, zap.String("kind", kind))
}
