// Package replay estimates a playstyle profile from match durations and
// outcomes. No replay files or input logs are read: every APM value here is
// an estimate, not a measurement.
package replay

import "woodo-statistic/internal/domain"

// Strategy thresholds. Each tier covers [previous, next).
const (
	RushMaxSeconds   = 300
	TimingMaxSeconds = 600
	MacroMaxSeconds  = 1200
)

// BaseAPM is the starting point of the APM estimate.
const BaseAPM = 150

var aggression = map[domain.StrategyType]float64{
	domain.StrategyRush:         0.9,
	domain.StrategyTimingAttack: 0.7,
	domain.StrategyMacro:        0.5,
	domain.StrategyLateGame:     0.3,
}

var strategyAPM = map[domain.StrategyType]int{
	domain.StrategyRush:         40,
	domain.StrategyTimingAttack: 20,
	domain.StrategyMacro:        0,
	domain.StrategyLateGame:     -10,
}

var outcomeAPM = map[domain.Result]int{
	domain.ResultWin:     10,
	domain.ResultLoss:    -10,
	domain.ResultUnknown: 0,
}

func Classify(seconds int) domain.StrategyType {
	switch {
	case seconds < RushMaxSeconds:
		return domain.StrategyRush
	case seconds < TimingMaxSeconds:
		return domain.StrategyTimingAttack
	case seconds < MacroMaxSeconds:
		return domain.StrategyMacro
	default:
		return domain.StrategyLateGame
	}
}

// Estimate analyzes one match. Matches whose duration could not be read are
// skipped (ok is false).
func Estimate(m domain.MatchRecord) (domain.ReplayAnalysis, bool) {
	if !m.DurationKnown {
		return domain.ReplayAnalysis{}, false
	}
	strategy := Classify(m.DurationSeconds)
	return domain.ReplayAnalysis{
		MatchID:         m.MatchID,
		DurationSeconds: m.DurationSeconds,
		StrategyType:    strategy,
		AggressionLevel: aggression[strategy],
		APM:             BaseAPM + strategyAPM[strategy] + outcomeAPM[m.Result],
	}, true
}

// EstimateAll keeps the input order, dropping matches Estimate skips.
func EstimateAll(matches []domain.MatchRecord) []domain.ReplayAnalysis {
	out := make([]domain.ReplayAnalysis, 0, len(matches))
	for _, m := range matches {
		if a, ok := Estimate(m); ok {
			out = append(out, a)
		}
	}
	return out
}

// Summarize folds analyses (most recent first) into a profile. The favorite
// strategy is the most frequent one; ties go to the one seen first.
func Summarize(analyses []domain.ReplayAnalysis) domain.PlayerReplayProfile {
	profile := domain.PlayerReplayProfile{
		TotalReplaysAnalyzed: len(analyses),
		RecentAnalyses:       make([]domain.ReplayAnalysis, len(analyses)),
		APMEstimated:         true,
	}
	copy(profile.RecentAnalyses, analyses)
	if len(analyses) == 0 {
		return profile
	}

	var apmSum, aggressionSum float64
	counts := make(map[domain.StrategyType]int)
	var order []domain.StrategyType
	for _, a := range analyses {
		apmSum += float64(a.APM)
		aggressionSum += a.AggressionLevel
		if counts[a.StrategyType] == 0 {
			order = append(order, a.StrategyType)
		}
		counts[a.StrategyType]++
	}

	best := 0
	for _, s := range order {
		if counts[s] > best {
			profile.FavoriteStrategy, best = s, counts[s]
		}
	}
	n := float64(len(analyses))
	profile.AvgAPM = apmSum / n
	profile.AggressionRating = aggressionSum / n
	return profile
}
