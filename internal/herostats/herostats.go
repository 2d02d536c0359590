// Package herostats flattens and merges W3Champions hero-on-map-versus-race
// documents.
package herostats

import (
	"sort"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/domain"
)

// FromDocument flattens one season's document into domain.HeroStats. The
// upstream groups records under the race the player played; those groups are
// summed so the result is keyed by hero, map and opponent race only.
func FromDocument(doc *api.HeroStatsResponse) domain.HeroStats {
	out := domain.HeroStats{}
	if doc == nil {
		return out
	}
	for _, item := range doc.HeroStatsItemList {
		if item.HeroID == "" {
			continue
		}
		for _, byRace := range item.Stats {
			for _, onMap := range byRace.WinLossesOnMap {
				for _, wl := range onMap.WinLosses {
					add(out, item.HeroID, onMap.Map, domain.NewRaceWinLoss(domain.RaceFromCode(wl.Race), wl.Wins, wl.Losses))
				}
			}
		}
	}
	return out
}

// Merge sums two sources per (hero, map, opponent race). Triples present in
// only one source pass through unchanged; winrates are always recomputed from
// the summed counts. Neither input is modified.
func Merge(a, b domain.HeroStats) domain.HeroStats {
	out := domain.HeroStats{}
	for _, src := range []domain.HeroStats{a, b} {
		for hero, maps := range src {
			for mapName, races := range maps {
				for _, wl := range races {
					add(out, hero, mapName, wl)
				}
			}
		}
	}
	return out
}

func add(stats domain.HeroStats, hero, mapName string, wl domain.RaceWinLoss) {
	maps, ok := stats[hero]
	if !ok {
		maps = map[string]map[domain.Race]domain.RaceWinLoss{}
		stats[hero] = maps
	}
	races, ok := maps[mapName]
	if !ok {
		races = map[domain.Race]domain.RaceWinLoss{}
		maps[mapName] = races
	}
	if cur, ok := races[wl.Race]; ok {
		races[wl.Race] = cur.Add(wl)
		return
	}
	races[wl.Race] = domain.NewRaceWinLoss(wl.Race, wl.Wins, wl.Losses)
}

// OverallGames is the hero's game count on the Overall map entry.
func OverallGames(stats domain.HeroStats, hero string) int {
	total := 0
	for _, wl := range stats[hero][domain.OverallMap] {
		total += wl.Games
	}
	return total
}

// MainHero returns the most played hero belonging to race, by Overall games.
// Ties go to the alphabetically first hero so the answer is stable.
func MainHero(stats domain.HeroStats, race domain.Race) (string, int) {
	heroes := make([]string, 0, len(stats))
	for hero := range stats {
		heroes = append(heroes, hero)
	}
	sort.Strings(heroes)

	best, bestGames := "", 0
	for _, hero := range heroes {
		if !domain.HeroBelongsTo(hero, race) {
			continue
		}
		if g := OverallGames(stats, hero); g > bestGames {
			best, bestGames = hero, g
		}
	}
	return best, bestGames
}
