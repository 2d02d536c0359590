// Package achievement derives scouting badges from a player's recent matches,
// merged hero stats and ladder race totals.
//
// Evaluation is a fixed sequence of rule groups. Each group looks at one
// aspect of the player and awards at most one badge; a group whose input is
// missing awards nothing. The engine never fails.
package achievement

import (
	"sort"
	"time"
	"woodo-statistic/internal/domain"
	"woodo-statistic/internal/herostats"
)

type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// input is everything a rule group may look at, computed once per call.
type input struct {
	now     time.Time
	matches []domain.MatchRecord
	heroes  domain.HeroStats

	races      map[domain.Race]domain.RaceWinLoss
	totalWins  int
	totalGames int
	mainRace   domain.Race
	mainHero   string
}

type rule func(e *Engine, in *input) (domain.Achievement, bool)

// groups runs in this order; the output keeps it.
var groups = []rule{
	(*Engine).economic,
	(*Engine).activity,
	(*Engine).streak,
	(*Engine).skill,
	(*Engine).experience,
	(*Engine).multiRace,
}

// Evaluate returns the player's badges, most significant group first.
// matches must be ordered most recent first.
func (e *Engine) Evaluate(matches []domain.MatchRecord, heroes domain.HeroStats, races []domain.RaceWinLoss, now time.Time) []domain.Achievement {
	in := e.prepare(matches, heroes, races, now)

	out := make([]domain.Achievement, 0, len(groups))
	for _, g := range groups {
		if a, ok := g(e, in); ok {
			out = append(out, a)
		}
	}
	return out
}

func (e *Engine) prepare(matches []domain.MatchRecord, heroes domain.HeroStats, races []domain.RaceWinLoss, now time.Time) *input {
	in := &input{
		now:      now,
		matches:  matches,
		heroes:   heroes,
		races:    make(map[domain.Race]domain.RaceWinLoss),
		mainRace: domain.RaceUnknown,
	}

	for _, wl := range races {
		if wl.Race == domain.RaceUnknown {
			continue
		}
		prev, ok := in.races[wl.Race]
		if !ok {
			prev = domain.NewRaceWinLoss(wl.Race, 0, 0)
		}
		in.races[wl.Race] = prev.Add(wl)
		in.totalWins += max(wl.Wins, 0)
		in.totalGames += max(wl.Wins, 0) + max(wl.Losses, 0)
	}

	mostGames := 0
	for _, r := range sortedRaces(in.races) {
		if g := in.races[r].Games; g > mostGames {
			in.mainRace, mostGames = r, g
		}
	}

	if len(heroes) > 0 {
		hero, games := herostats.MainHero(heroes, in.mainRace)
		if games >= e.policy.MainHeroMinGames {
			in.mainHero = hero
		}
	}
	return in
}

func sortedRaces(m map[domain.Race]domain.RaceWinLoss) []domain.Race {
	races := make([]domain.Race, 0, len(m))
	for r := range m {
		races = append(races, r)
	}
	sort.Slice(races, func(i, j int) bool { return races[i] < races[j] })
	return races
}
