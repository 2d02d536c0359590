package domain

import (
	"time"
)

// OverallMap is the map key W3Champions uses for the all-maps total.
const OverallMap = "Overall"

type Result int

const (
	ResultUnknown Result = iota
	ResultWin
	ResultLoss
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	default:
		return "unknown"
	}
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(text []byte) error {
	switch string(text) {
	case "win":
		*r = ResultWin
	case "loss":
		*r = ResultLoss
	default:
		*r = ResultUnknown
	}
	return nil
}

type MatchRecord struct {
	MatchID         string    `json:"match_id"`
	MapName         string    `json:"map_name"`
	DurationSeconds int       `json:"duration_seconds"`
	DurationKnown   bool      `json:"duration_known"` // false = low confidence, excluded from duration heuristics
	Result          Result    `json:"result"`
	Timestamp       time.Time `json:"timestamp"` // zero when upstream gave nothing parseable
	HeroUsed        string    `json:"hero_used,omitempty"`
	PlayerRace      Race      `json:"player_race"`
	OpponentRace    Race      `json:"opponent_race"`
	OpponentTag     string    `json:"opponent_tag,omitempty"`
}

func (m MatchRecord) HasTimestamp() bool {
	return !m.Timestamp.IsZero()
}

type RaceWinLoss struct {
	Race    Race    `json:"race"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Games   int     `json:"games"`
	Winrate float64 `json:"winrate"`
}

// NewRaceWinLoss keeps Games == Wins+Losses and recomputes Winrate.
func NewRaceWinLoss(race Race, wins, losses int) RaceWinLoss {
	wins = max(wins, 0)
	losses = max(losses, 0)
	wl := RaceWinLoss{Race: race, Wins: wins, Losses: losses, Games: wins + losses}
	if wl.Games > 0 {
		wl.Winrate = float64(wins) / float64(wl.Games)
	}
	return wl
}

// Add sums two records of the same race.
func (wl RaceWinLoss) Add(other RaceWinLoss) RaceWinLoss {
	return NewRaceWinLoss(wl.Race, wl.Wins+other.Wins, wl.Losses+other.Losses)
}

// HeroStats is hero id -> map name (or OverallMap) -> opponent race -> record.
type HeroStats map[string]map[string]map[Race]RaceWinLoss

type AchievementType string

const (
	AchievementEconomic   AchievementType = "economic"
	AchievementActivity   AchievementType = "activity"
	AchievementStreak     AchievementType = "streak"
	AchievementSkill      AchievementType = "skill"
	AchievementExperience AchievementType = "experience"
	AchievementMultiRace  AchievementType = "multi_race"
)

type Color string

const (
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorSlate  Color = "slate"
)

type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        AchievementType `json:"type"`
	Color       Color           `json:"color"`
}

type StrategyType string

const (
	StrategyRush         StrategyType = "rush"
	StrategyTimingAttack StrategyType = "timing_attack"
	StrategyMacro        StrategyType = "macro"
	StrategyLateGame     StrategyType = "late_game"
)

type ReplayAnalysis struct {
	MatchID         string       `json:"match_id"`
	DurationSeconds int          `json:"duration_seconds"`
	StrategyType    StrategyType `json:"strategy_type"`
	AggressionLevel float64      `json:"aggression_level"`
	APM             int          `json:"apm"`
}

type PlayerReplayProfile struct {
	TotalReplaysAnalyzed int              `json:"total_replays_analyzed"`
	AvgAPM               float64          `json:"avg_apm"`
	FavoriteStrategy     StrategyType     `json:"favorite_strategy,omitempty"`
	AggressionRating     float64          `json:"aggression_rating"`
	RecentAnalyses       []ReplayAnalysis `json:"recent_analyses"`

	// APM is derived from duration and outcome only; no input-rate data exists upstream.
	APMEstimated bool `json:"apm_estimated"`
}

type ScoutStatus string

const (
	StatusNotInGame ScoutStatus = "not_in_game"
	StatusInGame    ScoutStatus = "in_game"
)

type LiveParticipant struct {
	BattleTag string `json:"battle_tag"`
	Race      Race   `json:"race"`
	Team      int    `json:"team"`
}

type LiveMatch struct {
	MatchID      string            `json:"match_id"`
	MapName      string            `json:"map_name"`
	GameMode     int               `json:"game_mode"`
	StartedAt    time.Time         `json:"started_at"`
	Participants []LiveParticipant `json:"participants"`
}

type OpponentReport struct {
	BattleTag     string               `json:"battle_tag"`
	Race          Race                 `json:"race"`
	WinLosses     []RaceWinLoss        `json:"win_losses"`
	RaceStats     []RaceWinLoss        `json:"race_stats"`
	HeroStats     HeroStats            `json:"hero_stats"`
	RecentMatches []MatchRecord        `json:"recent_matches"`
	Achievements  []Achievement        `json:"achievements"`
	ReplayProfile *PlayerReplayProfile `json:"replay_profile,omitempty"`
	Warnings      []string             `json:"warnings,omitempty"`
}

type ScoutResult struct {
	ID        string           `json:"id"`
	BattleTag string           `json:"battle_tag"`
	Status    ScoutStatus      `json:"status"`
	Match     *LiveMatch       `json:"match,omitempty"`
	Opponents []OpponentReport `json:"opponents"`
	CheckedAt time.Time        `json:"checked_at"`
}

type PlayerStats struct {
	BattleTag     string        `json:"battle_tag"`
	Name          string        `json:"name"`
	WinLosses     []RaceWinLoss `json:"win_losses"`
	RecentMatches []MatchRecord `json:"recent_matches"`
	Warnings      []string      `json:"warnings,omitempty"`
}
