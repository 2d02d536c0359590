package service

import (
	"context"
	"errors"
	"fmt"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/constants"
	"woodo-statistic/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type PlayerFetcher interface {
	GetPlayer(ctx context.Context, battleTag string) (*api.PlayerResponse, error)
}

type PlayerService struct {
	players PlayerFetcher
	matches *MatchService
	logger  zerolog.Logger
}

func NewPlayerService(players PlayerFetcher, matches *MatchService, logger zerolog.Logger) *PlayerService {
	return &PlayerService{players: players, matches: matches, logger: logger}
}

// GetPlayerStats returns the ladder profile and the most recent matches of
// battleTag. An unknown player is ErrNotFound; otherwise a missing half is
// reported as a warning and only two failures are an error.
func (s *PlayerService) GetPlayerStats(ctx context.Context, battleTag string) (*domain.PlayerStats, error) {
	if err := domain.ValidateBattleTag(battleTag); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("battle_tag", battleTag).Msg("getting player stats")

	var (
		profile    *api.PlayerResponse
		recent     []domain.MatchRecord
		profileErr error
		matchesErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()
		profile, profileErr = s.players.GetPlayer(apiCtx, battleTag)
		return nil
	})
	g.Go(func() error {
		recent, matchesErr = s.matches.RecentMatches(ctx, battleTag, constants.PlayerStatsMatchTarget)
		return nil
	})
	_ = g.Wait()

	if errors.Is(profileErr, domain.ErrNotFound) {
		return nil, fmt.Errorf("player %s: %w", battleTag, domain.ErrNotFound)
	}
	if profileErr != nil && matchesErr != nil {
		s.logger.Error().Err(profileErr).Str("battle_tag", battleTag).Msg("failed to fetch player stats")
		return nil, fmt.Errorf("failed to fetch player stats: %w", errors.Join(profileErr, matchesErr))
	}

	stats := &domain.PlayerStats{
		BattleTag:     battleTag,
		WinLosses:     []domain.RaceWinLoss{},
		RecentMatches: []domain.MatchRecord{},
	}
	if profileErr != nil {
		s.logger.Warn().Err(profileErr).Str("battle_tag", battleTag).Msg("player profile unavailable")
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("player profile unavailable: %v", profileErr))
	} else if profile != nil {
		stats.Name = profile.Name
		stats.WinLosses = winLossesFrom(profile.WinLosses)
	}
	if matchesErr != nil {
		s.logger.Warn().Err(matchesErr).Str("battle_tag", battleTag).Msg("recent matches unavailable")
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("recent matches unavailable: %v", matchesErr))
	} else {
		stats.RecentMatches = recent
	}

	s.logger.Info().Str("battle_tag", battleTag).Int("match_count", len(stats.RecentMatches)).Msg("player stats fetched successfully")
	return stats, nil
}
