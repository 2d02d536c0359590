package achievement

import "fmt"

// Economic thresholds, in seconds of match duration.
const (
	DefaultFastWinMaxSeconds         = 600
	DefaultFastLossMaxSeconds        = 480
	DefaultLongWinMinSeconds         = 1200
	DefaultLongLossMinSeconds        = 1800
	DefaultPatternWindow             = 5
	DefaultPatternMinMatches         = 3
	DefaultPatternLongLossMinSeconds = 1200
)

// Activity thresholds.
const (
	DefaultHeavyTodayMin        = 5
	DefaultBusyTodayMin         = 2
	DefaultLongBreakDays        = 7
	DefaultUnknownFallbackRatio = 0.5
	DefaultProlificMin          = 10
	DefaultInFormMin            = 5
	DefaultWarmingUpMin         = 2
)

// Streak thresholds.
const (
	DefaultHotStreakMin       = 3
	DefaultLegendaryStreakMin = 5
)

// Skill thresholds.
const (
	DefaultLegendWinrate      = 0.75
	DefaultLegendMinGames     = 100
	DefaultDangerousWinrate   = 0.60
	DefaultDangerousMinGames  = 50
	DefaultVulnerableWinrate  = 0.35
	DefaultVulnerableMinGames = 50
)

// Experience thresholds.
const (
	DefaultVeteranMinGames  = 1000
	DefaultSeasonedMinGames = 500
)

// Multi-race thresholds. The 0.5 ratio is an empirical choice kept for
// compatibility, not a derived value.
const (
	DefaultMultiRaceMinGames = 1
	DefaultBalancedRatio     = 0.5
)

// DefaultMainHeroMinGames is the Overall game count before a hero is
// considered a player's main.
const DefaultMainHeroMinGames = 10

type Policy struct {
	Economic         EconomicPolicy   `yaml:"economic"`
	Activity         ActivityPolicy   `yaml:"activity"`
	Streak           StreakPolicy     `yaml:"streak"`
	Skill            SkillPolicy      `yaml:"skill"`
	Experience       ExperiencePolicy `yaml:"experience"`
	MultiRace        MultiRacePolicy  `yaml:"multi_race"`
	MainHeroMinGames int              `yaml:"main_hero_min_games"`
}

type EconomicPolicy struct {
	FastWinMaxSeconds         int `yaml:"fast_win_max_seconds"`
	FastLossMaxSeconds        int `yaml:"fast_loss_max_seconds"`
	LongWinMinSeconds         int `yaml:"long_win_min_seconds"`
	LongLossMinSeconds        int `yaml:"long_loss_min_seconds"`
	PatternWindow             int `yaml:"pattern_window"`
	PatternMinMatches         int `yaml:"pattern_min_matches"`
	PatternLongLossMinSeconds int `yaml:"pattern_long_loss_min_seconds"`
}

type ActivityPolicy struct {
	HeavyTodayMin        int     `yaml:"heavy_today_min"`
	BusyTodayMin         int     `yaml:"busy_today_min"`
	LongBreakDays        int     `yaml:"long_break_days"`
	UnknownFallbackRatio float64 `yaml:"unknown_fallback_ratio"`
	ProlificMin          int     `yaml:"prolific_min"`
	InFormMin            int     `yaml:"in_form_min"`
	WarmingUpMin         int     `yaml:"warming_up_min"`
}

type StreakPolicy struct {
	HotMin       int `yaml:"hot_min"`
	LegendaryMin int `yaml:"legendary_min"`
}

type SkillPolicy struct {
	LegendWinrate      float64 `yaml:"legend_winrate"`
	LegendMinGames     int     `yaml:"legend_min_games"`
	DangerousWinrate   float64 `yaml:"dangerous_winrate"`
	DangerousMinGames  int     `yaml:"dangerous_min_games"`
	VulnerableWinrate  float64 `yaml:"vulnerable_winrate"`
	VulnerableMinGames int     `yaml:"vulnerable_min_games"`
}

type ExperiencePolicy struct {
	VeteranMinGames  int `yaml:"veteran_min_games"`
	SeasonedMinGames int `yaml:"seasoned_min_games"`
}

type MultiRacePolicy struct {
	MinGamesPerRace int     `yaml:"min_games_per_race"`
	BalancedRatio   float64 `yaml:"balanced_ratio"`
}

func DefaultPolicy() Policy {
	return Policy{
		Economic: EconomicPolicy{
			FastWinMaxSeconds:         DefaultFastWinMaxSeconds,
			FastLossMaxSeconds:        DefaultFastLossMaxSeconds,
			LongWinMinSeconds:         DefaultLongWinMinSeconds,
			LongLossMinSeconds:        DefaultLongLossMinSeconds,
			PatternWindow:             DefaultPatternWindow,
			PatternMinMatches:         DefaultPatternMinMatches,
			PatternLongLossMinSeconds: DefaultPatternLongLossMinSeconds,
		},
		Activity: ActivityPolicy{
			HeavyTodayMin:        DefaultHeavyTodayMin,
			BusyTodayMin:         DefaultBusyTodayMin,
			LongBreakDays:        DefaultLongBreakDays,
			UnknownFallbackRatio: DefaultUnknownFallbackRatio,
			ProlificMin:          DefaultProlificMin,
			InFormMin:            DefaultInFormMin,
			WarmingUpMin:         DefaultWarmingUpMin,
		},
		Streak: StreakPolicy{
			HotMin:       DefaultHotStreakMin,
			LegendaryMin: DefaultLegendaryStreakMin,
		},
		Skill: SkillPolicy{
			LegendWinrate:      DefaultLegendWinrate,
			LegendMinGames:     DefaultLegendMinGames,
			DangerousWinrate:   DefaultDangerousWinrate,
			DangerousMinGames:  DefaultDangerousMinGames,
			VulnerableWinrate:  DefaultVulnerableWinrate,
			VulnerableMinGames: DefaultVulnerableMinGames,
		},
		Experience: ExperiencePolicy{
			VeteranMinGames:  DefaultVeteranMinGames,
			SeasonedMinGames: DefaultSeasonedMinGames,
		},
		MultiRace: MultiRacePolicy{
			MinGamesPerRace: DefaultMultiRaceMinGames,
			BalancedRatio:   DefaultBalancedRatio,
		},
		MainHeroMinGames: DefaultMainHeroMinGames,
	}
}

// Validate rejects policies whose thresholds contradict each other.
func (p Policy) Validate() error {
	e := p.Economic
	if e.FastLossMaxSeconds <= 0 || e.FastWinMaxSeconds <= 0 {
		return fmt.Errorf("economic: fast thresholds must be positive")
	}
	if e.LongWinMinSeconds < e.FastWinMaxSeconds || e.LongLossMinSeconds < e.FastLossMaxSeconds {
		return fmt.Errorf("economic: long thresholds must not be below fast thresholds")
	}
	if e.PatternWindow <= 0 || e.PatternMinMatches <= 0 || e.PatternMinMatches > e.PatternWindow {
		return fmt.Errorf("economic: pattern_min_matches must be in 1..pattern_window")
	}
	if p.Streak.HotMin < 2 || p.Streak.LegendaryMin < p.Streak.HotMin {
		return fmt.Errorf("streak: need 2 <= hot_min <= legendary_min")
	}
	if r := p.Activity.UnknownFallbackRatio; r < 0 || r > 1 {
		return fmt.Errorf("activity: unknown_fallback_ratio must be in [0,1], got %v", r)
	}
	if p.Activity.BusyTodayMin < 2 || p.Activity.HeavyTodayMin < p.Activity.BusyTodayMin {
		return fmt.Errorf("activity: need 2 <= busy_today_min <= heavy_today_min")
	}
	if r := p.MultiRace.BalancedRatio; r <= 0 || r > 1 {
		return fmt.Errorf("multi_race: balanced_ratio must be in (0,1], got %v", r)
	}
	if p.MultiRace.MinGamesPerRace < 1 {
		return fmt.Errorf("multi_race: min_games_per_race must be at least 1")
	}
	if p.Experience.VeteranMinGames < p.Experience.SeasonedMinGames {
		return fmt.Errorf("experience: veteran_min_games below seasoned_min_games")
	}
	return nil
}
