package service

import (
	"context"
	"fmt"
	"sync"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/config"
	"woodo-statistic/internal/domain"
)

var testConfig = &config.Config{CurrentSeason: 23, PreviousSeason: 22, RecentMatchTarget: 20}

type searchCall struct {
	battleTag string
	season    int
	pageSize  int
}

// fakeSource serves canned upstream data keyed by battle tag and season.
type fakeSource struct {
	mu    sync.Mutex
	calls []string

	searches  []searchCall
	ongoing   map[string]*api.OngoingMatchResponse
	players   map[string]*api.PlayerResponse
	raceStats map[string][]api.RaceStatItem
	heroes    map[string]*api.HeroStatsResponse // key "tag/season"
	matches   map[string][]api.RawMatch         // key "tag/season"
	errs      map[string]error                  // key "method tag" or "method tag/season"
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		ongoing:   map[string]*api.OngoingMatchResponse{},
		players:   map[string]*api.PlayerResponse{},
		raceStats: map[string][]api.RaceStatItem{},
		heroes:    map[string]*api.HeroStatsResponse{},
		matches:   map[string][]api.RawMatch{},
		errs:      map[string]error{},
	}
}

func seasonKey(tag string, season int) string {
	return fmt.Sprintf("%s/%d", tag, season)
}

func (f *fakeSource) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.errs[call]
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSource) GetOngoingMatch(ctx context.Context, battleTag string) (*api.OngoingMatchResponse, error) {
	if err := f.record("ongoing " + battleTag); err != nil {
		return nil, err
	}
	return f.ongoing[battleTag], nil
}

func (f *fakeSource) GetPlayer(ctx context.Context, battleTag string) (*api.PlayerResponse, error) {
	if err := f.record("player " + battleTag); err != nil {
		return nil, err
	}
	return f.players[battleTag], nil
}

func (f *fakeSource) GetRaceStats(ctx context.Context, battleTag string, season int) ([]api.RaceStatItem, error) {
	if err := f.record("race " + seasonKey(battleTag, season)); err != nil {
		return nil, err
	}
	return f.raceStats[battleTag], nil
}

func (f *fakeSource) GetHeroStats(ctx context.Context, battleTag string, season int) (*api.HeroStatsResponse, error) {
	if err := f.record("heroes " + seasonKey(battleTag, season)); err != nil {
		return nil, err
	}
	return f.heroes[seasonKey(battleTag, season)], nil
}

func (f *fakeSource) SearchMatches(ctx context.Context, battleTag string, season, offset, pageSize int) ([]api.RawMatch, error) {
	key := seasonKey(battleTag, season)
	err := f.record("search " + key)

	f.mu.Lock()
	f.searches = append(f.searches, searchCall{battleTag, season, pageSize})
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	all := f.matches[key]
	return all[:min(len(all), pageSize)], nil
}

// rawMatch builds a 1v1 search result for battleTag.
func rawMatch(id, battleTag string, won bool, seconds int) api.RawMatch {
	return api.RawMatch{
		"id":                id,
		"durationInSeconds": float64(seconds),
		"teams": []any{
			map[string]any{"won": won, "players": []any{
				map[string]any{"battleTag": battleTag, "race": float64(domain.RaceNightElf)},
			}},
			map[string]any{"won": !won, "players": []any{
				map[string]any{"battleTag": "Other#1111", "race": float64(domain.RaceOrc)},
			}},
		},
	}
}

func rawMatches(battleTag string, prefix string, n int) []api.RawMatch {
	out := make([]api.RawMatch, n)
	for i := range out {
		out[i] = rawMatch(fmt.Sprintf("%s%d", prefix, i), battleTag, i%2 == 0, 400+i*60)
	}
	return out
}
