package achievement

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"woodo-statistic/internal/domain"
	"woodo-statistic/internal/timebucket"
)

// economic reads the most recent match with a known result and a trusted
// duration. When that match is unremarkable it looks for a pattern in the
// last few such matches instead.
func (e *Engine) economic(in *input) (domain.Achievement, bool) {
	p := e.policy.Economic

	var qualifying []domain.MatchRecord
	for _, m := range in.matches {
		if m.Result != domain.ResultUnknown && m.DurationKnown {
			qualifying = append(qualifying, m)
		}
	}
	if len(qualifying) == 0 {
		return domain.Achievement{}, false
	}

	m := qualifying[0]
	d := m.DurationSeconds
	won := m.Result == domain.ResultWin
	with := in.heroPhrase(m)

	switch {
	case won && d < p.FastWinMaxSeconds:
		return AllBadges[BadgeEconomicGenius].award(fmt.Sprintf("Fast win in %s%s", clock(d), with)), true
	case !won && d > p.LongLossMinSeconds:
		return AllBadges[BadgeSlowEconomy].award(fmt.Sprintf("Lost a %s grind%s", clock(d), with)), true
	case won && d > p.LongWinMinSeconds:
		return AllBadges[BadgeHoarder].award(fmt.Sprintf("Won a %s late game%s", clock(d), with)), true
	case !won && d < p.FastLossMaxSeconds:
		return AllBadges[BadgeNoEconomy].award(fmt.Sprintf("Lost after only %s%s", clock(d), with)), true
	case won:
		return AllBadges[BadgeBalancedEconomy].award(fmt.Sprintf("Won in %s%s", clock(d), with)), true
	}

	window := qualifying[:min(len(qualifying), p.PatternWindow)]
	var shortWins, longLosses int
	for _, m := range window {
		switch {
		case m.Result == domain.ResultWin && m.DurationSeconds < p.FastWinMaxSeconds:
			shortWins++
		case m.Result == domain.ResultLoss && m.DurationSeconds > p.PatternLongLossMinSeconds:
			longLosses++
		}
	}
	switch {
	case shortWins >= p.PatternMinMatches:
		return AllBadges[BadgeEconomicRush].award(fmt.Sprintf(
			"%d of the last %d matches were wins under %s", shortWins, len(window), clock(p.FastWinMaxSeconds))), true
	case longLosses >= p.PatternMinMatches:
		return AllBadges[BadgeSlowEconomy].award(fmt.Sprintf(
			"%d of the last %d matches were losses past %s", longLosses, len(window), clock(p.PatternLongLossMinSeconds))), true
	}
	return domain.Achievement{}, false
}

// activity buckets match timestamps. When too many timestamps are missing
// it only counts matches.
func (e *Engine) activity(in *input) (domain.Achievement, bool) {
	if len(in.matches) == 0 {
		return domain.Achievement{}, false
	}
	p := e.policy.Activity

	stamps := make([]time.Time, len(in.matches))
	for i, m := range in.matches {
		stamps[i] = m.Timestamp
	}
	c := timebucket.Count(stamps, in.now)

	if c.Known() == 0 || float64(c.Unknown)/float64(c.Total()) > p.UnknownFallbackRatio {
		return e.activityByCount(c.Total()), true
	}

	switch {
	case c.Today >= p.HeavyTodayMin:
		return AllBadges[BadgeGamer].award(fmt.Sprintf("%d matches today", c.Today)), true
	case c.Today > 0 && e.returnedAfterBreak(in):
		return AllBadges[BadgeBackFromBreak].award(fmt.Sprintf(
			"Back on the ladder after more than %d days away", p.LongBreakDays)), true
	case c.Today >= p.BusyTodayMin:
		return AllBadges[BadgeInTheZone].award(fmt.Sprintf("%d matches today", c.Today)), true
	case c.Today == 1:
		return AllBadges[BadgeFirstToday].award("First ladder match today"), true
	case c.Yesterday > 0:
		return AllBadges[BadgeYesterday].award(fmt.Sprintf("%d matches yesterday", c.Yesterday)), true
	case c.ThisWeek > 0:
		return AllBadges[BadgeActiveWeek].award(fmt.Sprintf("%d matches in the last 7 days", c.ThisWeek)), true
	}

	latest := latestTimestamp(in.matches)
	days := int(in.now.Sub(latest).Hours() / 24)
	return AllBadges[BadgeLongBreak].award(fmt.Sprintf("Last match %d days ago", days)), true
}

func (e *Engine) activityByCount(n int) domain.Achievement {
	p := e.policy.Activity
	switch {
	case n >= p.ProlificMin:
		return AllBadges[BadgeProlific].award(fmt.Sprintf("%d recent matches", n))
	case n >= p.InFormMin:
		return AllBadges[BadgeInForm].award(fmt.Sprintf("%d recent matches", n))
	case n >= p.WarmingUpMin:
		return AllBadges[BadgeWarmingUp].award(fmt.Sprintf("%d recent matches", n))
	case n == 1:
		return AllBadges[BadgeWarmUp].award("Only one recent match")
	default:
		return AllBadges[BadgeWarmUp].award(fmt.Sprintf("%d recent matches", n))
	}
}

// returnedAfterBreak reports whether the first match played today came at
// least LongBreakDays after the match before it.
func (e *Engine) returnedAfterBreak(in *input) bool {
	var firstToday, lastBefore time.Time
	for _, m := range in.matches {
		if !m.HasTimestamp() {
			continue
		}
		if timebucket.Classify(m.Timestamp, in.now) == timebucket.Today {
			if firstToday.IsZero() || m.Timestamp.Before(firstToday) {
				firstToday = m.Timestamp
			}
			continue
		}
		if m.Timestamp.After(lastBefore) {
			lastBefore = m.Timestamp
		}
	}
	if firstToday.IsZero() || lastBefore.IsZero() {
		return false
	}
	gap := time.Duration(e.policy.Activity.LongBreakDays) * 24 * time.Hour
	return firstToday.Sub(lastBefore) >= gap
}

// streak counts the run of equal results at the head of the list.
// Matches with an unknown result are skipped, not treated as a break.
func (e *Engine) streak(in *input) (domain.Achievement, bool) {
	p := e.policy.Streak

	var (
		run    int
		result domain.Result
		latest domain.MatchRecord
	)
	for _, m := range in.matches {
		if m.Result == domain.ResultUnknown {
			continue
		}
		if result == domain.ResultUnknown {
			result, latest = m.Result, m
		}
		if m.Result != result {
			break
		}
		run++
	}
	if run < p.HotMin {
		return domain.Achievement{}, false
	}

	with := in.heroPhrase(latest)
	if result == domain.ResultWin {
		desc := fmt.Sprintf("%d wins in a row, latest%s", run, with)
		if run >= p.LegendaryMin {
			return AllBadges[BadgeUnstoppable].award(desc), true
		}
		return AllBadges[BadgeOnFire].award(desc), true
	}
	desc := fmt.Sprintf("%d losses in a row, latest%s", run, with)
	if run >= p.LegendaryMin {
		return AllBadges[BadgeDisaster].award(desc), true
	}
	return AllBadges[BadgeTilted].award(desc), true
}

func (e *Engine) skill(in *input) (domain.Achievement, bool) {
	if in.totalGames == 0 {
		return domain.Achievement{}, false
	}
	p := e.policy.Skill
	wr := float64(in.totalWins) / float64(in.totalGames)
	desc := fmt.Sprintf("%d%% win rate over %d games%s", percent(wr), in.totalGames, in.mainPhrase())

	switch {
	case wr >= p.LegendWinrate && in.totalGames >= p.LegendMinGames:
		return AllBadges[BadgeLegend].award(desc), true
	case wr >= p.DangerousWinrate && in.totalGames >= p.DangerousMinGames:
		return AllBadges[BadgeDangerous].award(desc), true
	case wr <= p.VulnerableWinrate && in.totalGames >= p.VulnerableMinGames:
		return AllBadges[BadgeVulnerable].award(desc), true
	}
	return domain.Achievement{}, false
}

func (e *Engine) experience(in *input) (domain.Achievement, bool) {
	p := e.policy.Experience
	desc := fmt.Sprintf("%d ladder games%s", in.totalGames, in.mainPhrase())

	switch {
	case in.totalGames >= p.VeteranMinGames:
		return AllBadges[BadgeVeteran].award(desc), true
	case in.totalGames >= p.SeasonedMinGames:
		return AllBadges[BadgeSeasoned].award(desc), true
	}
	return domain.Achievement{}, false
}

// multiRace compares the least and most played races. Only races with at
// least MinGamesPerRace games take part.
func (e *Engine) multiRace(in *input) (domain.Achievement, bool) {
	p := e.policy.MultiRace

	var played []domain.RaceWinLoss
	for _, r := range sortedRaces(in.races) {
		if wl := in.races[r]; wl.Games >= p.MinGamesPerRace {
			played = append(played, wl)
		}
	}
	if len(played) < 2 {
		return domain.Achievement{}, false
	}
	sort.SliceStable(played, func(i, j int) bool { return played[i].Games > played[j].Games })

	most, least := played[0], played[len(played)-1]
	ratio := float64(least.Games) / float64(most.Games)

	parts := make([]string, len(played))
	for i, wl := range played {
		parts[i] = fmt.Sprintf("%s %d", wl.Race, wl.Games)
	}
	split := strings.Join(parts, ", ")

	if ratio >= p.BalancedRatio {
		return AllBadges[BadgeBalancedMultiRacer].award("Games split " + split), true
	}
	return AllBadges[BadgeExperimenter].award(fmt.Sprintf("Mostly %s, also tries others (%s)", most.Race, split)), true
}

func (in *input) mainPhrase() string {
	switch {
	case in.mainHero != "":
		return ", main hero " + in.mainHero
	case in.mainRace != domain.RaceUnknown:
		return ", mostly " + in.mainRace.String()
	}
	return ""
}

// heroPhrase names the match hero, then the main hero from hero stats, and
// only falls back to the race when neither is known.
func (in *input) heroPhrase(m domain.MatchRecord) string {
	switch {
	case m.HeroUsed != "":
		return " with " + m.HeroUsed
	case in.mainHero != "":
		return " with " + in.mainHero
	case m.PlayerRace != domain.RaceUnknown:
		return " as " + m.PlayerRace.String()
	}
	return ""
}

func latestTimestamp(matches []domain.MatchRecord) time.Time {
	var latest time.Time
	for _, m := range matches {
		if m.Timestamp.After(latest) {
			latest = m.Timestamp
		}
	}
	return latest
}

// clock formats seconds as 9m05s.
func clock(seconds int) string {
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}
