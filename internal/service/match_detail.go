package service

import (
	"time"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/constants"
	"woodo-statistic/internal/domain"
)

// liveMatchFrom converts the ongoing-match document. Team is the index of the
// player's team in the document.
func liveMatchFrom(resp *api.OngoingMatchResponse) *domain.LiveMatch {
	live := &domain.LiveMatch{
		MatchID:      resp.ID,
		MapName:      resp.Map,
		GameMode:     resp.GameMode,
		Participants: []domain.LiveParticipant{},
	}
	if ts, err := time.Parse(time.RFC3339, resp.StartTime); err == nil {
		live.StartedAt = ts.UTC()
	}

	for team, t := range resp.Teams {
		for _, p := range t.Players {
			if p.BattleTag == "" {
				continue
			}
			live.Participants = append(live.Participants, domain.LiveParticipant{
				BattleTag: p.BattleTag,
				Race:      domain.RaceFromCode(p.Race),
				Team:      team,
			})
		}
	}
	return live
}

// opponentsOf returns the participants on teams other than the subject's.
// When the subject is not listed, everyone else is an opponent.
func opponentsOf(live *domain.LiveMatch, battleTag string) []domain.LiveParticipant {
	subjectTeam := -1
	for _, p := range live.Participants {
		if p.BattleTag == battleTag {
			subjectTeam = p.Team
			break
		}
	}

	var opponents []domain.LiveParticipant
	for _, p := range live.Participants {
		if p.BattleTag == battleTag {
			continue
		}
		if subjectTeam >= 0 && p.Team == subjectTeam {
			continue
		}
		opponents = append(opponents, p)
	}
	return opponents
}

// demoMatch is the fixed live match behind the demo report.
func demoMatch(startedAt time.Time) *domain.LiveMatch {
	return &domain.LiveMatch{
		MatchID:   "demo",
		MapName:   constants.DemoMapName,
		GameMode:  1,
		StartedAt: startedAt,
		Participants: []domain.LiveParticipant{
			{BattleTag: constants.DemoRequesterID, Race: domain.RaceHuman, Team: 0},
			{BattleTag: constants.DemoBattleTag, Race: domain.RaceNightElf, Team: 1},
		},
	}
}
