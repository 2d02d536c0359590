package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"
	"woodo-statistic/internal/domain"
)

type resultProbe func(map[string]any) (domain.Result, bool)

var playerResultProbes = []resultProbe{
	boolResult("won"),
	boolResult("winner"),
}

var teamResultProbes = []resultProbe{
	boolResult("won"),
	boolResult("winner"),
	rankResult("place"),
	rankResult("rank"),
}

func boolResult(key string) resultProbe {
	return func(m map[string]any) (domain.Result, bool) {
		b, ok := m[key].(bool)
		if !ok {
			return domain.ResultUnknown, false
		}
		if b {
			return domain.ResultWin, true
		}
		return domain.ResultLoss, true
	}
}

// rankResult treats place 1 as a win and any later place as a loss.
func rankResult(key string) resultProbe {
	return func(m map[string]any) (domain.Result, bool) {
		n, ok := asInt(m[key])
		if !ok || n < 1 {
			return domain.ResultUnknown, false
		}
		if n == 1 {
			return domain.ResultWin, true
		}
		return domain.ResultLoss, true
	}
}

func probeResult(m map[string]any, probes []resultProbe) domain.Result {
	for _, probe := range probes {
		if r, ok := probe(m); ok {
			return r
		}
	}
	return domain.ResultUnknown
}

// maxDurationSeconds bounds what is accepted as a match length. Larger
// values are unparsable.
const maxDurationSeconds = math.MaxInt32

type durationProbe func(map[string]any) (int, bool)

var durationProbes = []durationProbe{
	secondsField("durationInSeconds"),
	secondsField("durationSeconds"),
	secondsField("duration"),
	endMinusStart,
}

func secondsField(key string) durationProbe {
	return func(m map[string]any) (int, bool) {
		f, ok := asFloat(m[key])
		if !ok || f <= 0 || f > maxDurationSeconds {
			return 0, false
		}
		return int(f), true
	}
}

func endMinusStart(m map[string]any) (int, bool) {
	start, ok := parseTime(m["startTime"])
	if !ok {
		return 0, false
	}
	end, ok := parseTime(m["endTime"])
	if !ok || !end.After(start) {
		return 0, false
	}
	secs := end.Sub(start).Seconds()
	if secs > maxDurationSeconds {
		return 0, false
	}
	return int(secs), true
}

func probeDuration(m map[string]any) (int, bool) {
	for _, probe := range durationProbes {
		if d, ok := probe(m); ok {
			return d, true
		}
	}
	return 0, false
}

// timestampFields is in priority order.
var timestampFields = []string{"startTime", "timestamp", "createdAt", "endTime"}

func probeTimestamp(m map[string]any) time.Time {
	for _, key := range timestampFields {
		if ts, ok := parseTime(m[key]); ok {
			return ts
		}
	}
	return time.Time{}
}

// unixMillisCutoff separates unix seconds from unix milliseconds.
const unixMillisCutoff = 1e12

func parseTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		if strings.Contains(s, "T") {
			for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
				if ts, err := time.Parse(layout, s); err == nil {
					return ts.UTC(), true
				}
			}
			return time.Time{}, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, false
		}
		return fromUnix(f)
	case float64:
		return fromUnix(t)
	case int:
		return fromUnix(float64(t))
	case int64:
		return fromUnix(float64(t))
	}
	return time.Time{}, false
}

func fromUnix(f float64) (time.Time, bool) {
	if f <= 0 || f >= math.MaxInt64 || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	if f > unixMillisCutoff {
		return time.UnixMilli(int64(f)).UTC(), true
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
}

func probeHero(player map[string]any) string {
	if h := firstString(player, "heroId", "hero"); h != "" {
		return h
	}
	for _, h := range asSlice(player["heroes"]) {
		hero, ok := h.(map[string]any)
		if !ok {
			continue
		}
		if name := firstString(hero, "icon", "name", "id"); name != "" {
			return name
		}
	}
	return ""
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
