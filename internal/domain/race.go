package domain

type Race int

// Values match the W3Champions race codes.
const (
	RaceUnknown  Race = -1
	RaceRandom   Race = 0
	RaceHuman    Race = 1
	RaceOrc      Race = 2
	RaceNightElf Race = 4
	RaceUndead   Race = 8
)

// raceCodeRandomAlt is the second code W3Champions uses for Random.
const raceCodeRandomAlt = 16

func RaceFromCode(code int) Race {
	switch code {
	case 0, raceCodeRandomAlt:
		return RaceRandom
	case 1:
		return RaceHuman
	case 2:
		return RaceOrc
	case 4:
		return RaceNightElf
	case 8:
		return RaceUndead
	default:
		return RaceUnknown
	}
}

func (r Race) String() string {
	switch r {
	case RaceRandom:
		return "Random"
	case RaceHuman:
		return "Human"
	case RaceOrc:
		return "Orc"
	case RaceNightElf:
		return "Night Elf"
	case RaceUndead:
		return "Undead"
	default:
		return "Unknown"
	}
}

func (r Race) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Race) UnmarshalText(text []byte) error {
	for _, candidate := range []Race{RaceRandom, RaceHuman, RaceOrc, RaceNightElf, RaceUndead} {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	*r = RaceUnknown
	return nil
}

var heroesByRace = map[Race][]string{
	RaceHuman:    {"archmage", "mountainking", "paladin", "bloodmage"},
	RaceOrc:      {"blademaster", "farseer", "taurenchieftain", "shadowhunter"},
	RaceNightElf: {"demonhunter", "keeperofthegrove", "moonpriestess", "priestessofthemoon", "warden", "bansheeranger"},
	RaceUndead:   {"deathknight", "dreadlord", "lich", "cryptlord"},
}

// HeroBelongsTo reports whether hero is part of the race's hero pool.
// Random and unknown races accept every hero.
func HeroBelongsTo(hero string, race Race) bool {
	pool, ok := heroesByRace[race]
	if !ok {
		return true
	}
	for _, h := range pool {
		if h == hero {
			return true
		}
	}
	return false
}
