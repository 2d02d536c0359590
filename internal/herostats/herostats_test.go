package herostats

import (
	"testing"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func wl(race domain.Race, wins, losses int) domain.RaceWinLoss {
	return domain.NewRaceWinLoss(race, wins, losses)
}

func seasonA() domain.HeroStats {
	return domain.HeroStats{
		"archmage": {
			domain.OverallMap: {domain.RaceOrc: wl(domain.RaceOrc, 10, 5), domain.RaceUndead: wl(domain.RaceUndead, 2, 8)},
			"ConcealedHill":   {domain.RaceOrc: wl(domain.RaceOrc, 10, 5)},
		},
		"paladin": {
			domain.OverallMap: {domain.RaceHuman: wl(domain.RaceHuman, 1, 1)},
		},
	}
}

func seasonB() domain.HeroStats {
	return domain.HeroStats{
		"archmage": {
			domain.OverallMap: {domain.RaceOrc: wl(domain.RaceOrc, 1, 9)},
			"TwistedMeadows":  {domain.RaceNightElf: wl(domain.RaceNightElf, 3, 0)},
		},
		"mountainking": {
			domain.OverallMap: {domain.RaceNightElf: wl(domain.RaceNightElf, 4, 4)},
		},
	}
}

func TestMerge_SumsAndRecomputesWinrate(t *testing.T) {
	got := Merge(seasonA(), seasonB())

	orc := got["archmage"][domain.OverallMap][domain.RaceOrc]
	want := domain.RaceWinLoss{Race: domain.RaceOrc, Wins: 11, Losses: 14, Games: 25, Winrate: 11.0 / 25.0}
	if diff := cmp.Diff(want, orc); diff != "" {
		t.Errorf("merged archmage vs Orc (-want +got):\n%s", diff)
	}

	// Averaging the source winrates would give (0.667+0.1)/2 = 0.383.
	if orc.Winrate == (10.0/15.0+1.0/10.0)/2 {
		t.Error("winrate was averaged instead of recomputed")
	}
}

func TestMerge_CarriesSingleSourceTriples(t *testing.T) {
	got := Merge(seasonA(), seasonB())

	if diff := cmp.Diff(seasonA()["archmage"]["ConcealedHill"], got["archmage"]["ConcealedHill"]); diff != "" {
		t.Errorf("A-only map changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seasonB()["archmage"]["TwistedMeadows"], got["archmage"]["TwistedMeadows"]); diff != "" {
		t.Errorf("B-only map changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seasonA()["archmage"][domain.OverallMap][domain.RaceUndead], got["archmage"][domain.OverallMap][domain.RaceUndead]); diff != "" {
		t.Errorf("A-only race changed (-want +got):\n%s", diff)
	}
	for _, hero := range []string{"archmage", "paladin", "mountainking"} {
		if _, ok := got[hero]; !ok {
			t.Errorf("hero %s missing from union", hero)
		}
	}
}

func TestMerge_Commutative(t *testing.T) {
	if diff := cmp.Diff(Merge(seasonA(), seasonB()), Merge(seasonB(), seasonA())); diff != "" {
		t.Errorf("Merge(A,B) != Merge(B,A) (-ab +ba):\n%s", diff)
	}
}

func TestMerge_Identity(t *testing.T) {
	if diff := cmp.Diff(seasonA(), Merge(seasonA(), domain.HeroStats{})); diff != "" {
		t.Errorf("Merge(A, empty) != A (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seasonA(), Merge(nil, seasonA())); diff != "" {
		t.Errorf("Merge(nil, A) != A (-want +got):\n%s", diff)
	}
}

func TestMerge_BothEmpty(t *testing.T) {
	got := Merge(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Merge(nil, nil) = %#v, want empty non-nil", got)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	a := seasonA()
	Merge(a, seasonB())
	if diff := cmp.Diff(seasonA(), a); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestFromDocument(t *testing.T) {
	doc := &api.HeroStatsResponse{
		HeroStatsItemList: []api.HeroStatsItem{
			{
				HeroID: "demonhunter",
				Stats: []api.HeroRaceStats{
					{Race: 4, WinLossesOnMap: []api.HeroMapStats{
						{Map: domain.OverallMap, WinLosses: []api.WinLossItem{{Race: 1, Wins: 6, Losses: 4, Games: 10, Winrate: 0.6}}},
					}},
					{Race: 16, WinLossesOnMap: []api.HeroMapStats{
						{Map: domain.OverallMap, WinLosses: []api.WinLossItem{{Race: 1, Wins: 1, Losses: 1, Games: 2, Winrate: 0.5}}},
					}},
				},
			},
			{HeroID: ""},
		},
	}

	got := FromDocument(doc)
	want := domain.HeroStats{
		"demonhunter": {domain.OverallMap: {domain.RaceHuman: wl(domain.RaceHuman, 7, 5)}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromDocument mismatch (-want +got):\n%s", diff)
	}

	if empty := FromDocument(nil); empty == nil || len(empty) != 0 {
		t.Errorf("FromDocument(nil) = %#v, want empty", empty)
	}
}

func TestMainHero(t *testing.T) {
	stats := Merge(seasonA(), seasonB())

	hero, games := MainHero(stats, domain.RaceHuman)
	if hero != "archmage" || games != 35 {
		t.Errorf("MainHero(Human) = %s/%d, want archmage/35", hero, games)
	}

	if hero, _ := MainHero(stats, domain.RaceOrc); hero != "" {
		t.Errorf("MainHero(Orc) = %q, want none", hero)
	}

	if hero, _ := MainHero(stats, domain.RaceRandom); hero != "archmage" {
		t.Errorf("MainHero(Random) = %q, want archmage", hero)
	}
}
