package service

import (
	"context"
	"errors"
	"fmt"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/config"
	"woodo-statistic/internal/constants"
	"woodo-statistic/internal/domain"
	"woodo-statistic/internal/normalize"

	"github.com/rs/zerolog"
)

type MatchSearcher interface {
	SearchMatches(ctx context.Context, battleTag string, season, offset, pageSize int) ([]api.RawMatch, error)
}

// MatchService assembles a recent-match window that can span the current and
// the previous ladder season.
type MatchService struct {
	searcher       MatchSearcher
	currentSeason  int
	previousSeason int
	logger         zerolog.Logger
}

func NewMatchService(searcher MatchSearcher, cfg *config.Config, logger zerolog.Logger) *MatchService {
	return &MatchService{
		searcher:       searcher,
		currentSeason:  cfg.CurrentSeason,
		previousSeason: cfg.PreviousSeason,
		logger:         logger,
	}
}

// RecentMatches returns up to target matches, most recent first. The previous
// season is only asked for the shortfall of the current one. A season that
// fails to load counts as empty; only when both fail is an error returned.
func (s *MatchService) RecentMatches(ctx context.Context, battleTag string, target int) ([]domain.MatchRecord, error) {
	if target <= 0 {
		return []domain.MatchRecord{}, nil
	}

	primary, primaryErr := s.fetchSeason(ctx, battleTag, s.currentSeason, target)
	if primaryErr != nil {
		s.logger.Warn().Err(primaryErr).Str("battle_tag", battleTag).Int("season", s.currentSeason).Msg("current season matches unavailable")
	}

	unique := Assemble(primary, nil, target)
	if len(unique) >= target {
		s.logger.Debug().Str("battle_tag", battleTag).Int("match_count", len(unique)).Msg("recent matches filled from current season")
		return unique, nil
	}

	shortfall := target - len(unique)
	secondary, secondaryErr := s.fetchSeason(ctx, battleTag, s.previousSeason, shortfall)
	if secondaryErr != nil {
		s.logger.Warn().Err(secondaryErr).Str("battle_tag", battleTag).Int("season", s.previousSeason).Msg("previous season matches unavailable")
	}

	if primaryErr != nil && secondaryErr != nil {
		return nil, fmt.Errorf("failed to fetch recent matches: %w", errors.Join(primaryErr, secondaryErr))
	}

	matches := Assemble(primary, secondary, target)
	s.logger.Debug().
		Str("battle_tag", battleTag).
		Int("current_season_count", len(primary)).
		Int("previous_season_count", len(secondary)).
		Int("match_count", len(matches)).
		Msg("recent matches assembled")
	return matches, nil
}

func (s *MatchService) fetchSeason(ctx context.Context, battleTag string, season, pageSize int) ([]domain.MatchRecord, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	raws, err := s.searcher.SearchMatches(apiCtx, battleTag, season, 0, pageSize)
	if err != nil {
		return nil, fmt.Errorf("season %d: %w", season, err)
	}
	return normalize.NormalizeAll(raws, battleTag), nil
}

// Assemble concatenates primary then secondary without re-sorting, drops
// repeated match ids keeping the first, and stops at target. Records without
// an id are never treated as duplicates.
func Assemble(primary, secondary []domain.MatchRecord, target int) []domain.MatchRecord {
	if target <= 0 {
		return []domain.MatchRecord{}
	}
	out := make([]domain.MatchRecord, 0, min(target, len(primary)+len(secondary)))
	seen := make(map[string]struct{}, cap(out))

	for _, part := range [][]domain.MatchRecord{primary, secondary} {
		for _, m := range part {
			if len(out) >= target {
				return out
			}
			if m.MatchID != "" {
				if _, dup := seen[m.MatchID]; dup {
					continue
				}
				seen[m.MatchID] = struct{}{}
			}
			out = append(out, m)
		}
	}
	return out
}
