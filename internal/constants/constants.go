package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	LiveLookupTimeout  = 5 * time.Second
)

const (
	DefaultW3CBaseURL     = "https://website-backend.w3champions.com/api"
	DefaultGateway        = 20
	DefaultCurrentSeason  = 23
	DefaultPreviousSeason = 22
)

const (
	RecentMatchTarget      = 20
	PlayerStatsMatchTarget = 50
	DemoMatchTarget        = 10
)

const (
	DemoBattleTag   = "Siberia#21832"
	DemoRequesterID = "DemoPlayer#1234"
	DemoMapName     = "ConcealedHill"
)

const (
	UpstreamMaxConnsPerHost = 100
	UpstreamMaxIdleConnDur  = 1 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
