package fx

import (
	"database/sql"

	"regatta-tracker/internal/classifier"
	"regatta-tracker/internal/config"
	"regatta-tracker/internal/database"
	"regatta-tracker/internal/db"
	"regatta-tracker/internal/dispatch"
	"regatta-tracker/internal/logger"
	"regatta-tracker/internal/match"
	"regatta-tracker/internal/notify"
	"regatta-tracker/internal/repository"
	"regatta-tracker/internal/server"
	"regatta-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideClassifier(cfg *config.Config, log zerolog.Logger) (classifier.Classifier, error) {
	return classifier.NewONNX(cfg.ModelPath, log)
}

func ProvideMatcher(cfg *config.Config) match.Matcher {
	return match.NewRatioMatcher(cfg.SimilarityCutoff)
}

func ProvideQueue(cfg *config.Config) *dispatch.Queue {
	return dispatch.NewQueue(cfg.QueueSize)
}

func ProvidePool(queue *dispatch.Queue, finishes *service.FinishService, cfg *config.Config, log zerolog.Logger) *dispatch.Pool {
	return dispatch.NewPool(queue, finishes, cfg.WorkerCount, log)
}

func ProvideServer(
	competitions *service.CompetitionService,
	competitors *service.CompetitorService,
	races *service.RaceService,
	positions *service.PositionService,
	finishes *service.FinishService,
	recognition *service.RecognitionService,
	log zerolog.Logger,
) *server.Server {
	return server.New(competitions, competitors, races, positions, finishes, recognition, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewCompetitionRepository),
	fx.Provide(repository.NewCompetitorRepository),
	fx.Provide(repository.NewRaceRepository),
	fx.Provide(repository.NewPositionRepository),
	// capabilities
	fx.Provide(ProvideClassifier),
	fx.Provide(ProvideMatcher),
	fx.Provide(notify.New),
	// dispatch
	fx.Provide(ProvideQueue),
	fx.Provide(ProvidePool),
	// svc
	fx.Provide(service.NewCompetitionService),
	fx.Provide(service.NewCompetitorService),
	fx.Provide(service.NewRaceService),
	fx.Provide(service.NewPositionService),
	fx.Provide(service.NewRecognitionService),
	fx.Provide(service.NewRankingService),
	fx.Provide(service.NewFinishService),
	// server
	fx.Provide(ProvideServer),
)
