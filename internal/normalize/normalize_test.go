package normalize

import (
	"encoding/json"
	"testing"
	"time"
	"woodo-statistic/internal/domain"

	"github.com/google/go-cmp/cmp"
)

const me = "Grubby#1278"

// decode mimics how raw matches arrive from the upstream client.
func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func TestNormalize_TeamsShape(t *testing.T) {
	raw := decode(t, `{
		"id": "65f1",
		"mapName": "Concealed Hill",
		"durationInSeconds": 734,
		"startTime": "2024-03-15T09:00:00Z",
		"teams": [
			{"won": true, "players": [{"battleTag": "Grubby#1278", "race": 2, "heroes": [{"icon": "blademaster", "level": 3}]}]},
			{"won": false, "players": [{"battleTag": "Happy#2384", "race": 8}]}
		]
	}`)

	got := Normalize(raw, me)
	want := domain.MatchRecord{
		MatchID:         "65f1",
		MapName:         "Concealed Hill",
		DurationSeconds: 734,
		DurationKnown:   true,
		Result:          domain.ResultWin,
		Timestamp:       time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
		HeroUsed:        "blademaster",
		PlayerRace:      domain.RaceOrc,
		OpponentRace:    domain.RaceUndead,
		OpponentTag:     "Happy#2384",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_ResultProbes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Result
	}{
		{
			"player won flag wins over team flag",
			`{"teams":[{"won":true,"players":[{"battleTag":"Grubby#1278","won":false}]}]}`,
			domain.ResultLoss,
		},
		{
			"player winner flag",
			`{"teams":[{"players":[{"battleTag":"Grubby#1278","winner":true}]}]}`,
			domain.ResultWin,
		},
		{
			"team winner flag",
			`{"teams":[{"winner":false,"players":[{"battleTag":"Grubby#1278"}]}]}`,
			domain.ResultLoss,
		},
		{
			"team place first",
			`{"teams":[{"place":1,"players":[{"battleTag":"Grubby#1278"}]}]}`,
			domain.ResultWin,
		},
		{
			"team rank second",
			`{"teams":[{"rank":2,"players":[{"battleTag":"Grubby#1278"}]}]}`,
			domain.ResultLoss,
		},
		{
			"no flag at all",
			`{"teams":[{"players":[{"battleTag":"Grubby#1278"}]}]}`,
			domain.ResultUnknown,
		},
		{
			"player missing",
			`{"teams":[{"won":true,"players":[{"battleTag":"Someone#1111"}]}]}`,
			domain.ResultUnknown,
		},
		{
			"tag match is case sensitive",
			`{"teams":[{"won":true,"players":[{"battleTag":"grubby#1278"}]}]}`,
			domain.ResultUnknown,
		},
		{
			"rank out of range",
			`{"teams":[{"rank":1e19,"players":[{"battleTag":"Grubby#1278"}]}]}`,
			domain.ResultUnknown,
		},
		{
			"flat players list",
			`{"players":[{"battleTag":"Happy#2384","won":false},{"battleTag":"Grubby#1278","won":true}]}`,
			domain.ResultWin,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(decode(t, tt.raw), me).Result; got != tt.want {
				t.Errorf("Result = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_Duration(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      int
		wantKnown bool
	}{
		{"seconds field", `{"durationInSeconds": 612}`, 612, true},
		{"alternate field", `{"durationSeconds": 300}`, 300, true},
		{"numeric string", `{"duration": "421"}`, 421, true},
		{"fractional seconds truncated", `{"durationInSeconds": 99.9}`, 99, true},
		{"first field wins", `{"durationInSeconds": 100, "duration": 200}`, 100, true},
		{"end minus start", `{"startTime":"2024-03-15T09:00:00Z","endTime":"2024-03-15T09:12:30Z"}`, 750, true},
		{"negative", `{"durationInSeconds": -5}`, 0, false},
		{"garbage", `{"durationInSeconds": "long"}`, 0, false},
		{"too large to be a match", `{"durationInSeconds": 1e19}`, 0, false},
		{"too large as string", `{"duration": "1e12"}`, 0, false},
		{"end before start", `{"startTime":"2024-03-15T09:00:00Z","endTime":"2024-03-15T08:00:00Z"}`, 0, false},
		{"missing", `{}`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(decode(t, tt.raw), me)
			if got.DurationSeconds != tt.want || got.DurationKnown != tt.wantKnown {
				t.Errorf("duration = %d known=%v, want %d known=%v",
					got.DurationSeconds, got.DurationKnown, tt.want, tt.wantKnown)
			}
		})
	}
}

func TestNormalize_Timestamp(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `{"startTime":"2024-03-15T09:00:00Z"}`, ref},
		{"rfc3339 offset", `{"startTime":"2024-03-15T12:00:00+03:00"}`, ref},
		{"unix seconds number", `{"timestamp": 1710493200}`, ref},
		{"unix seconds string", `{"timestamp": "1710493200"}`, ref},
		{"unix millis", `{"createdAt": 1710493200000}`, ref},
		{"priority order", `{"endTime":"2024-03-16T09:00:00Z","startTime":"2024-03-15T09:00:00Z"}`, ref},
		{"unparsable falls through", `{"startTime":"yesterday","endTime":"2024-03-15T09:00:00Z"}`, ref},
		{"none parse", `{"startTime":"soon","timestamp":""}`, time.Time{}},
		{"unix overflow", `{"timestamp": 1e20}`, time.Time{}},
		{"missing", `{}`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(decode(t, tt.raw), me).Timestamp
			if !got.Equal(tt.want) {
				t.Errorf("Timestamp = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_HeroProbe(t *testing.T) {
	raw := decode(t, `{"teams":[{"players":[{"battleTag":"Grubby#1278","heroId":"farseer","heroes":[{"icon":"blademaster"}]}]}]}`)
	if got := Normalize(raw, me).HeroUsed; got != "farseer" {
		t.Errorf("HeroUsed = %q, want farseer", got)
	}
}

func TestNormalize_Empty(t *testing.T) {
	got := Normalize(nil, me)
	if got.Result != domain.ResultUnknown || got.DurationKnown || got.HasTimestamp() {
		t.Errorf("Normalize(nil) = %+v, want sentinels", got)
	}
	if got.PlayerRace != domain.RaceUnknown || got.OpponentRace != domain.RaceUnknown {
		t.Errorf("races = %v/%v, want unknown", got.PlayerRace, got.OpponentRace)
	}
}

func TestNormalizeAll_KeepsOrder(t *testing.T) {
	raws := []map[string]any{{"id": "a"}, {"id": "b"}, {"id": "c"}}
	got := NormalizeAll(raws, me)
	var ids []string
	for _, r := range got {
		ids = append(ids, r.MatchID)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
