package service

import (
	"context"
	"fmt"
	"time"
	"woodo-statistic/internal/achievement"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/config"
	"woodo-statistic/internal/constants"
	"woodo-statistic/internal/domain"
	"woodo-statistic/internal/herostats"
	"woodo-statistic/internal/replay"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Source is the upstream ladder data the scout reads.
type Source interface {
	MatchSearcher
	GetOngoingMatch(ctx context.Context, battleTag string) (*api.OngoingMatchResponse, error)
	GetPlayer(ctx context.Context, battleTag string) (*api.PlayerResponse, error)
	GetRaceStats(ctx context.Context, battleTag string, season int) ([]api.RaceStatItem, error)
	GetHeroStats(ctx context.Context, battleTag string, season int) (*api.HeroStatsResponse, error)
}

type ScoutService struct {
	source         Source
	matches        *MatchService
	engine         *achievement.Engine
	currentSeason  int
	previousSeason int
	matchTarget    int
	now            func() time.Time
	logger         zerolog.Logger
}

func NewScoutService(source Source, matches *MatchService, engine *achievement.Engine, cfg *config.Config, logger zerolog.Logger) *ScoutService {
	return &ScoutService{
		source:         source,
		matches:        matches,
		engine:         engine,
		currentSeason:  cfg.CurrentSeason,
		previousSeason: cfg.PreviousSeason,
		matchTarget:    cfg.RecentMatchTarget,
		now:            time.Now,
		logger:         logger,
	}
}

// Scout reports on the opponents of battleTag's live match. Only a failed
// live lookup is an error; any other upstream failure degrades one
// opponent's report and is listed in its warnings.
func (s *ScoutService) Scout(ctx context.Context, battleTag string) (*domain.ScoutResult, error) {
	if err := domain.ValidateBattleTag(battleTag); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("battle_tag", battleTag).Msg("checking live match")

	liveCtx, liveCancel := context.WithTimeout(ctx, constants.LiveLookupTimeout)
	ongoing, err := s.source.GetOngoingMatch(liveCtx, battleTag)
	liveCancel()
	if err != nil {
		s.logger.Error().Err(err).Str("battle_tag", battleTag).Msg("live match lookup failed")
		return nil, fmt.Errorf("failed to look up live match: %w", err)
	}

	result, err := s.newResult(battleTag)
	if err != nil {
		return nil, err
	}
	if ongoing == nil {
		s.logger.Debug().Str("battle_tag", battleTag).Msg("player not in game")
		return result, nil
	}

	result.Status = domain.StatusInGame
	result.Match = liveMatchFrom(ongoing)
	opponents := opponentsOf(result.Match, battleTag)

	s.logger.Info().Str("battle_tag", battleTag).Str("match_id", result.Match.MatchID).Int("opponent_count", len(opponents)).Msg("player in game, scouting opponents")

	result.Opponents, err = s.reportAll(ctx, opponents, s.matchTarget)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Demo scouts the fixed demo opponent through the same report path as Scout.
func (s *ScoutService) Demo(ctx context.Context) (*domain.ScoutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	result, err := s.newResult(constants.DemoRequesterID)
	if err != nil {
		return nil, err
	}
	result.Status = domain.StatusInGame
	result.Match = demoMatch(result.CheckedAt)

	s.logger.Info().Str("battle_tag", constants.DemoBattleTag).Msg("building demo report")

	result.Opponents, err = s.reportAll(ctx, opponentsOf(result.Match, constants.DemoRequesterID), constants.DemoMatchTarget)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ScoutService) newResult(battleTag string) (*domain.ScoutResult, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}
	return &domain.ScoutResult{
		ID:        id,
		BattleTag: battleTag,
		Status:    domain.StatusNotInGame,
		Opponents: []domain.OpponentReport{},
		CheckedAt: s.now().UTC(),
	}, nil
}

// reportAll builds one report per opponent in parallel. Reports never fail;
// only an abandoned ctx aborts the batch.
func (s *ScoutService) reportAll(ctx context.Context, opponents []domain.LiveParticipant, target int) ([]domain.OpponentReport, error) {
	reports := make([]domain.OpponentReport, len(opponents))

	var g errgroup.Group
	for i, opp := range opponents {
		g.Go(func() error {
			reports[i] = s.buildReport(ctx, opp, target)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scout abandoned: %w", err)
	}
	return reports, nil
}

// buildReport fetches every section of one opponent's report independently.
// A failed fetch leaves its section empty and adds a warning.
func (s *ScoutService) buildReport(ctx context.Context, opp domain.LiveParticipant, target int) domain.OpponentReport {
	log := s.logger.With().Str("opponent", opp.BattleTag).Logger()

	var (
		player                  *api.PlayerResponse
		raceStats               []api.RaceStatItem
		heroesCur, heroesPrev   *api.HeroStatsResponse
		recent                  []domain.MatchRecord
		playerErr, raceErr      error
		heroCurErr, heroPrevErr error
		matchesErr              error
	)

	var g errgroup.Group
	g.Go(func() error {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()
		player, playerErr = s.source.GetPlayer(apiCtx, opp.BattleTag)
		return nil
	})
	g.Go(func() error {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()
		raceStats, raceErr = s.source.GetRaceStats(apiCtx, opp.BattleTag, s.currentSeason)
		return nil
	})
	g.Go(func() error {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()
		heroesCur, heroCurErr = s.source.GetHeroStats(apiCtx, opp.BattleTag, s.currentSeason)
		return nil
	})
	g.Go(func() error {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()
		heroesPrev, heroPrevErr = s.source.GetHeroStats(apiCtx, opp.BattleTag, s.previousSeason)
		return nil
	})
	g.Go(func() error {
		recent, matchesErr = s.matches.RecentMatches(ctx, opp.BattleTag, target)
		return nil
	})
	_ = g.Wait()

	report := domain.OpponentReport{
		BattleTag:     opp.BattleTag,
		Race:          opp.Race,
		WinLosses:     []domain.RaceWinLoss{},
		RaceStats:     []domain.RaceWinLoss{},
		RecentMatches: []domain.MatchRecord{},
	}
	warn := func(section string, err error) {
		log.Warn().Err(err).Str("section", section).Msg("opponent section unavailable")
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s unavailable: %v", section, err))
	}

	if playerErr != nil {
		warn("player profile", playerErr)
	} else if player != nil {
		report.WinLosses = winLossesFrom(player.WinLosses)
	}

	if raceErr != nil {
		warn("race stats", raceErr)
	} else {
		report.RaceStats = raceStatsFrom(raceStats)
	}

	if heroCurErr != nil {
		warn(fmt.Sprintf("season %d hero stats", s.currentSeason), heroCurErr)
	}
	if heroPrevErr != nil {
		warn(fmt.Sprintf("season %d hero stats", s.previousSeason), heroPrevErr)
	}
	report.HeroStats = herostats.Merge(herostats.FromDocument(heroesCur), herostats.FromDocument(heroesPrev))

	if matchesErr != nil {
		warn("recent matches", matchesErr)
	} else {
		report.RecentMatches = recent
	}

	races := report.WinLosses
	if len(races) == 0 {
		races = report.RaceStats
	}
	report.Achievements = s.engine.Evaluate(report.RecentMatches, report.HeroStats, races, s.now())

	if analyses := replay.EstimateAll(report.RecentMatches); len(analyses) > 0 {
		profile := replay.Summarize(analyses)
		report.ReplayProfile = &profile
	}

	if report.Race == domain.RaceUnknown {
		report.Race = mainRace(races)
	}

	log.Debug().
		Int("match_count", len(report.RecentMatches)).
		Int("hero_count", len(report.HeroStats)).
		Int("achievement_count", len(report.Achievements)).
		Int("warning_count", len(report.Warnings)).
		Msg("opponent report built")
	return report
}

func winLossesFrom(items []api.WinLossItem) []domain.RaceWinLoss {
	out := make([]domain.RaceWinLoss, 0, len(items))
	for _, wl := range items {
		out = append(out, domain.NewRaceWinLoss(domain.RaceFromCode(wl.Race), wl.Wins, wl.Losses))
	}
	return out
}

func raceStatsFrom(items []api.RaceStatItem) []domain.RaceWinLoss {
	out := make([]domain.RaceWinLoss, 0, len(items))
	for _, rs := range items {
		out = append(out, domain.NewRaceWinLoss(domain.RaceFromCode(rs.Race), rs.Wins, rs.Losses))
	}
	return out
}

// mainRace is the race with the most games, RaceUnknown when none were played.
func mainRace(races []domain.RaceWinLoss) domain.Race {
	best, bestGames := domain.RaceUnknown, 0
	for _, wl := range races {
		if wl.Race != domain.RaceUnknown && wl.Games > bestGames {
			best, bestGames = wl.Race, wl.Games
		}
	}
	return best
}
