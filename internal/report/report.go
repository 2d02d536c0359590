package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
	"woodo-statistic/internal/domain"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScoutResult writes the live match header followed by one block per opponent.
func PrintScoutResult(w io.Writer, r *domain.ScoutResult) {
	if r.Status == domain.StatusNotInGame || r.Match == nil {
		fmt.Fprintf(w, "%s is not in a ladder game right now.\n", r.BattleTag)
		return
	}
	fmt.Fprintf(w, "\nMap: %s  |  Mode: %d  |  Started: %s  |  Scout: %s\n\n",
		r.Match.MapName, r.Match.GameMode, formatTime(r.Match.StartedAt), r.ID)
	PrintParticipants(w, r.Match.Participants)

	for _, opp := range r.Opponents {
		PrintOpponent(w, opp)
	}
}

func PrintParticipants(w io.Writer, ps []domain.LiveParticipant) {
	table := newTable(w)
	table.Header("TEAM", "BATTLETAG", "RACE")
	for _, p := range ps {
		table.Append(strconv.Itoa(p.Team), p.BattleTag, p.Race.String())
	}
	table.Render()
}

// PrintOpponent prints every section of one opponent report. Empty sections are skipped.
func PrintOpponent(w io.Writer, r domain.OpponentReport) {
	fmt.Fprintf(w, "\n== %s (%s) ==\n", r.BattleTag, r.Race)
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	if len(r.WinLosses) > 0 {
		fmt.Fprintln(w, "\nWin/loss by race")
		PrintWinLosses(w, r.WinLosses)
	}
	if len(r.Achievements) > 0 {
		fmt.Fprintln(w, "\nBadges")
		PrintAchievements(w, r.Achievements)
	}
	if len(r.HeroStats) > 0 {
		fmt.Fprintln(w, "\nHeroes (all maps)")
		PrintHeroStats(w, r.HeroStats)
	}
	if r.ReplayProfile != nil {
		fmt.Fprintln(w)
		PrintReplayProfile(w, r.ReplayProfile)
	}
	if len(r.RecentMatches) > 0 {
		fmt.Fprintln(w, "\nRecent matches")
		PrintMatches(w, r.RecentMatches)
	}
}

func PrintWinLosses(w io.Writer, wls []domain.RaceWinLoss) {
	table := newTable(w)
	table.Header("RACE", "W", "L", "GAMES", "WIN%")
	for _, wl := range wls {
		table.Append(
			wl.Race.String(),
			strconv.Itoa(wl.Wins),
			strconv.Itoa(wl.Losses),
			strconv.Itoa(wl.Games),
			fmt.Sprintf("%.0f%%", wl.Winrate*100),
		)
	}
	table.Render()
}

func PrintAchievements(w io.Writer, as []domain.Achievement) {
	table := newTable(w)
	table.Header("TYPE", "BADGE", "DETAIL")
	for _, a := range as {
		table.Append(string(a.Type), a.Title, a.Description)
	}
	table.Render()
}

// PrintHeroStats prints the OverallMap totals per hero and opponent race, most played hero first.
func PrintHeroStats(w io.Writer, hs domain.HeroStats) {
	type row struct {
		hero  string
		race  domain.Race
		stats domain.RaceWinLoss
	}
	var rows []row
	games := make(map[string]int)
	for hero, maps := range hs {
		for race, wl := range maps[domain.OverallMap] {
			rows = append(rows, row{hero, race, wl})
			games[hero] += wl.Games
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if games[rows[i].hero] != games[rows[j].hero] {
			return games[rows[i].hero] > games[rows[j].hero]
		}
		if rows[i].hero != rows[j].hero {
			return rows[i].hero < rows[j].hero
		}
		return rows[i].race < rows[j].race
	})

	table := newTable(w)
	table.Header("HERO", "VS", "W", "L", "WIN%")
	for _, r := range rows {
		table.Append(
			r.hero,
			r.race.String(),
			strconv.Itoa(r.stats.Wins),
			strconv.Itoa(r.stats.Losses),
			fmt.Sprintf("%.0f%%", r.stats.Winrate*100),
		)
	}
	table.Render()
}

func PrintReplayProfile(w io.Writer, p *domain.PlayerReplayProfile) {
	apm := fmt.Sprintf("%.0f", p.AvgAPM)
	if p.APMEstimated {
		apm += " (estimated)"
	}
	fmt.Fprintf(w, "Playstyle: %s  |  Aggression: %.2f  |  APM: %s  |  Games: %d\n",
		orDash(string(p.FavoriteStrategy)), p.AggressionRating, apm, p.TotalReplaysAnalyzed)
}

func PrintMatches(w io.Writer, ms []domain.MatchRecord) {
	table := newTable(w)
	table.Header("WHEN", "MAP", "RESULT", "LENGTH", "RACE", "VS", "OPPONENT", "HERO")
	for _, m := range ms {
		length := "—"
		if m.DurationKnown {
			length = fmt.Sprintf("%d:%02d", m.DurationSeconds/60, m.DurationSeconds%60)
		}
		table.Append(
			formatTime(m.Timestamp),
			orDash(m.MapName),
			m.Result.String(),
			length,
			m.PlayerRace.String(),
			m.OpponentRace.String(),
			orDash(m.OpponentTag),
			orDash(m.HeroUsed),
		)
	}
	table.Render()
}

func PrintPlayerStats(w io.Writer, s *domain.PlayerStats) {
	name := s.Name
	if name == "" {
		name = s.BattleTag
	}
	fmt.Fprintf(w, "\n== %s ==\n", name)
	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	if len(s.WinLosses) > 0 {
		fmt.Fprintln(w, "\nWin/loss by race")
		PrintWinLosses(w, s.WinLosses)
	}
	if len(s.RecentMatches) > 0 {
		fmt.Fprintf(w, "\nLast %d matches\n", len(s.RecentMatches))
		PrintMatches(w, s.RecentMatches)
	}
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
