// Package normalize turns raw W3Champions match records into
// domain.MatchRecord values. Upstream field names differ between API
// versions; every field is read through an ordered list of probes and the
// first probe that yields a usable value wins.
package normalize

import (
	"woodo-statistic/internal/domain"
)

// Normalize builds the canonical record for one raw match as seen by battleTag.
// It never fails: missing or unparsable fields become sentinels.
func Normalize(raw map[string]any, battleTag string) domain.MatchRecord {
	rec := domain.MatchRecord{
		MatchID:      firstString(raw, "id", "matchId", "match_id"),
		MapName:      firstString(raw, "mapName", "map"),
		Result:       domain.ResultUnknown,
		PlayerRace:   domain.RaceUnknown,
		OpponentRace: domain.RaceUnknown,
	}

	if d, ok := probeDuration(raw); ok {
		rec.DurationSeconds = d
		rec.DurationKnown = true
	}
	rec.Timestamp = probeTimestamp(raw)

	parts := participants(raw)
	self := -1
	for i, p := range parts {
		if p.tag == battleTag {
			self = i
			break
		}
	}
	if self < 0 {
		return rec
	}

	me := parts[self]
	rec.Result = me.result
	rec.HeroUsed = me.hero
	rec.PlayerRace = me.race

	for _, p := range parts {
		if p.team != me.team {
			rec.OpponentRace = p.race
			rec.OpponentTag = p.tag
			break
		}
	}
	return rec
}

// NormalizeAll keeps input order.
func NormalizeAll[M ~map[string]any](raws []M, battleTag string) []domain.MatchRecord {
	out := make([]domain.MatchRecord, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(map[string]any(raw), battleTag))
	}
	return out
}

type participant struct {
	tag    string
	team   int
	race   domain.Race
	hero   string
	result domain.Result
}

// participants flattens teams[].players[]; a top-level players[] list is
// used when the match has no teams, each player then forming its own team.
func participants(raw map[string]any) []participant {
	var out []participant

	for ti, t := range asSlice(raw["teams"]) {
		team, ok := t.(map[string]any)
		if !ok {
			continue
		}
		teamResult := probeResult(team, teamResultProbes)
		for _, p := range asSlice(team["players"]) {
			player, ok := p.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, newParticipant(player, ti, teamResult))
		}
	}
	if len(out) > 0 {
		return out
	}

	for pi, p := range asSlice(raw["players"]) {
		player, ok := p.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, newParticipant(player, pi, domain.ResultUnknown))
	}
	return out
}

func newParticipant(player map[string]any, team int, teamResult domain.Result) participant {
	p := participant{
		tag:    firstString(player, "battleTag", "battletag", "tag"),
		team:   team,
		race:   domain.RaceUnknown,
		hero:   probeHero(player),
		result: probeResult(player, playerResultProbes),
	}
	if p.result == domain.ResultUnknown {
		p.result = teamResult
	}
	if code, ok := asInt(player["race"]); ok {
		p.race = domain.RaceFromCode(code)
	}
	return p
}
