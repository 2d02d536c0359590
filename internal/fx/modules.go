package fx

import (
	"woodo-statistic/internal/achievement"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/config"
	"woodo-statistic/internal/logger"
	"woodo-statistic/internal/server"
	"woodo-statistic/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvidePolicy(cfg *config.Config, log zerolog.Logger) (achievement.Policy, error) {
	return achievement.LoadPolicy(cfg.PolicyFile, log)
}

func ProvideHandler(scoutSvc *service.ScoutService, playerSvc *service.PlayerService, scoutServer *server.ScoutServer, cfg *config.Config, log zerolog.Logger) *server.Handler {
	return server.NewHandler(scoutSvc, playerSvc, scoutServer, cfg.CORSOrigins, log)
}

// ApplyLogLevel switches every logger to LOG_LEVEL once config is loaded.
func ApplyLogLevel(cfg *config.Config, log zerolog.Logger) {
	if err := logger.SetGlobalLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Msg("falling back to info log level")
	}
}

var Module = fx.Options(
	logger.Module,
	fx.Provide(config.Load),
	fx.Invoke(ApplyLogLevel),
	// policy
	fx.Provide(ProvidePolicy),
	fx.Provide(achievement.NewEngine),
	// api client
	fx.Provide(
		fx.Annotate(
			api.NewW3CClient,
			fx.As(new(service.Source)),
			fx.As(new(service.MatchSearcher)),
			fx.As(new(service.PlayerFetcher)),
		),
	),
	// svc
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewScoutService),
	fx.Provide(service.NewPlayerService),
	// server
	fx.Provide(
		fx.Annotate(
			server.NewScoutServer,
			fx.From(new(*service.ScoutService), new(*service.PlayerService)),
		),
	),
	fx.Provide(ProvideHandler),
)
