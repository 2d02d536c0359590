package achievement

import "woodo-statistic/internal/domain"

type BadgeID string

const (
	BadgeEconomicGenius  BadgeID = "economic_genius"
	BadgeSlowEconomy     BadgeID = "slow_economy"
	BadgeHoarder         BadgeID = "hoarder"
	BadgeNoEconomy       BadgeID = "no_economy"
	BadgeBalancedEconomy BadgeID = "balanced_economy"
	BadgeEconomicRush    BadgeID = "economic_rush"

	BadgeGamer         BadgeID = "gamer"
	BadgeBackFromBreak BadgeID = "back_from_break"
	BadgeInTheZone     BadgeID = "in_the_zone"
	BadgeFirstToday    BadgeID = "first_match_today"
	BadgeYesterday     BadgeID = "played_yesterday"
	BadgeActiveWeek    BadgeID = "active_this_week"
	BadgeLongBreak     BadgeID = "long_break"
	BadgeProlific      BadgeID = "prolific"
	BadgeInForm        BadgeID = "in_form"
	BadgeWarmingUp     BadgeID = "warming_up"
	BadgeWarmUp        BadgeID = "warm_up"

	BadgeUnstoppable BadgeID = "unstoppable"
	BadgeDisaster    BadgeID = "disaster"
	BadgeOnFire      BadgeID = "on_fire"
	BadgeTilted      BadgeID = "tilted"

	BadgeLegend     BadgeID = "legend"
	BadgeDangerous  BadgeID = "dangerous"
	BadgeVulnerable BadgeID = "vulnerable"

	BadgeVeteran  BadgeID = "veteran"
	BadgeSeasoned BadgeID = "seasoned"

	BadgeBalancedMultiRacer BadgeID = "balanced_multi_racer"
	BadgeExperimenter       BadgeID = "experimenter"
)

// Badge is the static part of an achievement. Descriptions are built per player.
type Badge struct {
	ID    BadgeID
	Title string
	Type  domain.AchievementType
	Color domain.Color
}

var AllBadges = map[BadgeID]Badge{
	BadgeEconomicGenius:  {ID: BadgeEconomicGenius, Title: "💰 Economic genius", Type: domain.AchievementEconomic, Color: domain.ColorGreen},
	BadgeSlowEconomy:     {ID: BadgeSlowEconomy, Title: "🐌 Slow economy", Type: domain.AchievementEconomic, Color: domain.ColorRed},
	BadgeHoarder:         {ID: BadgeHoarder, Title: "🏦 Hoarder", Type: domain.AchievementEconomic, Color: domain.ColorBlue},
	BadgeNoEconomy:       {ID: BadgeNoEconomy, Title: "💸 Struggles to gather resources", Type: domain.AchievementEconomic, Color: domain.ColorRed},
	BadgeBalancedEconomy: {ID: BadgeBalancedEconomy, Title: "⚖️ Balanced economy", Type: domain.AchievementEconomic, Color: domain.ColorGreen},
	BadgeEconomicRush:    {ID: BadgeEconomicRush, Title: "⚡ Economic rush", Type: domain.AchievementEconomic, Color: domain.ColorYellow},

	BadgeGamer:         {ID: BadgeGamer, Title: "🎮 Gamer", Type: domain.AchievementActivity, Color: domain.ColorBlue},
	BadgeBackFromBreak: {ID: BadgeBackFromBreak, Title: "🔙 Back from a break", Type: domain.AchievementActivity, Color: domain.ColorPurple},
	BadgeInTheZone:     {ID: BadgeInTheZone, Title: "🔥 In the zone", Type: domain.AchievementActivity, Color: domain.ColorGreen},
	BadgeFirstToday:    {ID: BadgeFirstToday, Title: "🌅 First match of the day", Type: domain.AchievementActivity, Color: domain.ColorGreen},
	BadgeYesterday:     {ID: BadgeYesterday, Title: "🌙 Played yesterday", Type: domain.AchievementActivity, Color: domain.ColorYellow},
	BadgeActiveWeek:    {ID: BadgeActiveWeek, Title: "🎯 Active this week", Type: domain.AchievementActivity, Color: domain.ColorYellow},
	BadgeLongBreak:     {ID: BadgeLongBreak, Title: "😴 Long break", Type: domain.AchievementActivity, Color: domain.ColorSlate},
	BadgeProlific:      {ID: BadgeProlific, Title: "🎮 Prolific player", Type: domain.AchievementActivity, Color: domain.ColorBlue},
	BadgeInForm:        {ID: BadgeInForm, Title: "🔥 In form", Type: domain.AchievementActivity, Color: domain.ColorGreen},
	BadgeWarmingUp:     {ID: BadgeWarmingUp, Title: "🌅 Warming up", Type: domain.AchievementActivity, Color: domain.ColorGreen},
	BadgeWarmUp:        {ID: BadgeWarmUp, Title: "🎯 Warm-up", Type: domain.AchievementActivity, Color: domain.ColorYellow},

	BadgeUnstoppable: {ID: BadgeUnstoppable, Title: "🚀 Unstoppable", Type: domain.AchievementStreak, Color: domain.ColorPurple},
	BadgeDisaster:    {ID: BadgeDisaster, Title: "💀 Disaster", Type: domain.AchievementStreak, Color: domain.ColorRed},
	BadgeOnFire:      {ID: BadgeOnFire, Title: "🔥 On fire", Type: domain.AchievementStreak, Color: domain.ColorRed},
	BadgeTilted:      {ID: BadgeTilted, Title: "😤 Blame the internet", Type: domain.AchievementStreak, Color: domain.ColorSlate},

	BadgeLegend:     {ID: BadgeLegend, Title: "💎 Legend", Type: domain.AchievementSkill, Color: domain.ColorPurple},
	BadgeDangerous:  {ID: BadgeDangerous, Title: "⚠️ Dangerous opponent", Type: domain.AchievementSkill, Color: domain.ColorBlue},
	BadgeVulnerable: {ID: BadgeVulnerable, Title: "🎯 Vulnerable", Type: domain.AchievementSkill, Color: domain.ColorGreen},

	BadgeVeteran:  {ID: BadgeVeteran, Title: "👑 Veteran", Type: domain.AchievementExperience, Color: domain.ColorPurple},
	BadgeSeasoned: {ID: BadgeSeasoned, Title: "🎖️ Seasoned fighter", Type: domain.AchievementExperience, Color: domain.ColorBlue},

	BadgeBalancedMultiRacer: {ID: BadgeBalancedMultiRacer, Title: "🌈 Balanced multi-racer", Type: domain.AchievementMultiRace, Color: domain.ColorYellow},
	BadgeExperimenter:       {ID: BadgeExperimenter, Title: "🎭 Experimenter", Type: domain.AchievementMultiRace, Color: domain.ColorBlue},
}

func (b Badge) award(description string) domain.Achievement {
	return domain.Achievement{
		ID:          string(b.ID),
		Title:       b.Title,
		Description: description,
		Type:        b.Type,
		Color:       b.Color,
	}
}
