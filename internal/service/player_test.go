package service

import (
	"context"
	"errors"
	"testing"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/constants"
	"woodo-statistic/internal/domain"

	"github.com/rs/zerolog"
)

func newTestPlayerService(src *fakeSource) *PlayerService {
	return NewPlayerService(src, NewMatchService(src, testConfig, zerolog.Nop()), zerolog.Nop())
}

func TestGetPlayerStats(t *testing.T) {
	src := newFakeSource()
	src.players[opponent] = &api.PlayerResponse{
		BattleTag: opponent,
		Name:      "Happy",
		WinLosses: []api.WinLossItem{{Race: 8, Wins: 7, Losses: 3}},
	}
	src.matches[seasonKey(opponent, 23)] = rawMatches(opponent, "m", 60)

	got, err := newTestPlayerService(src).GetPlayerStats(context.Background(), opponent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Happy" || len(got.WinLosses) != 1 || got.WinLosses[0].Games != 10 {
		t.Errorf("stats = %+v", got)
	}
	if len(got.RecentMatches) != constants.PlayerStatsMatchTarget {
		t.Errorf("recent matches = %d, want %d", len(got.RecentMatches), constants.PlayerStatsMatchTarget)
	}
}

func TestGetPlayerStats_Errors(t *testing.T) {
	t.Run("invalid tag", func(t *testing.T) {
		src := newFakeSource()
		if _, err := newTestPlayerService(src).GetPlayerStats(context.Background(), "bad"); !errors.Is(err, domain.ErrInvalidBattleTag) {
			t.Errorf("err = %v, want ErrInvalidBattleTag", err)
		}
		if src.callCount() != 0 {
			t.Error("upstream called for an invalid tag")
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		src := newFakeSource()
		src.errs["player "+opponent] = domain.ErrNotFound
		if _, err := newTestPlayerService(src).GetPlayerStats(context.Background(), opponent); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("profile down", func(t *testing.T) {
		src := newFakeSource()
		src.errs["player "+opponent] = domain.ErrUpstream
		src.matches[seasonKey(opponent, 23)] = rawMatches(opponent, "m", 2)
		got, err := newTestPlayerService(src).GetPlayerStats(context.Background(), opponent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Warnings) != 1 || len(got.RecentMatches) != 2 {
			t.Errorf("stats = %+v", got)
		}
	})

	t.Run("everything down", func(t *testing.T) {
		src := newFakeSource()
		src.errs["player "+opponent] = domain.ErrUpstream
		src.errs["search "+seasonKey(opponent, 23)] = domain.ErrUpstream
		src.errs["search "+seasonKey(opponent, 22)] = domain.ErrUpstream
		if _, err := newTestPlayerService(src).GetPlayerStats(context.Background(), opponent); !errors.Is(err, domain.ErrUpstream) {
			t.Errorf("err = %v, want ErrUpstream", err)
		}
	})
}
