package api

// RawMatch is a match record exactly as upstream returned it. Field names
// drift between API versions, so it is left untyped for the normalizer.
type RawMatch map[string]any

type OngoingMatchResponse struct {
	ID        string        `json:"id"`
	Map       string        `json:"map"`
	GameMode  int           `json:"gameMode"`
	StartTime string        `json:"startTime"`
	Teams     []OngoingTeam `json:"teams"`
}

type OngoingTeam struct {
	Players []OngoingPlayer `json:"players"`
}

type OngoingPlayer struct {
	BattleTag string `json:"battleTag"`
	Name      string `json:"name"`
	Race      int    `json:"race"`
	OldMmr    int    `json:"oldMmr"`
}

type PlayerResponse struct {
	BattleTag string        `json:"battleTag"`
	Name      string        `json:"name"`
	WinLosses []WinLossItem `json:"winLosses"`
}

type WinLossItem struct {
	Race    int     `json:"race"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Games   int     `json:"games"`
	Winrate float64 `json:"winrate"`
}

type RaceStatItem struct {
	Race    int     `json:"race"`
	GateWay int     `json:"gateWay"`
	Season  int     `json:"season"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Games   int     `json:"games"`
	Winrate float64 `json:"winrate"`
}

type HeroStatsResponse struct {
	HeroStatsItemList []HeroStatsItem `json:"heroStatsItemList"`
}

type HeroStatsItem struct {
	HeroID string          `json:"heroId"`
	Stats  []HeroRaceStats `json:"stats"`
}

// HeroRaceStats groups a hero's map records under the race the player played.
type HeroRaceStats struct {
	Race           int            `json:"race"`
	WinLossesOnMap []HeroMapStats `json:"winLossesOnMap"`
}

type HeroMapStats struct {
	Map       string        `json:"map"`
	WinLosses []WinLossItem `json:"winLosses"`
}

type MatchSearchResponse struct {
	Matches []RawMatch `json:"matches"`
	Count   int        `json:"count"`
}
