package diagnosis

import (
	"strings"
	"unicode"
)

// Duration is a coarse symptom-duration bucket.
type Duration string

const (
	DurationUnder24Hours Duration = "< 24 Hours"
	DurationOneToThree   Duration = "1-3 Days"
	DurationFewDays      Duration = "Few Days"
	DurationFourToSeven  Duration = "4-7 Days"
	DurationOverWeek     Duration = "1 Week +"
)

var durationBuckets = []Duration{
	DurationUnder24Hours,
	DurationOneToThree,
	DurationFewDays,
	DurationFourToSeven,
	DurationOverWeek,
}

// Durations lists the recognized buckets, shortest first.
func Durations() []Duration {
	out := make([]Duration, len(durationBuckets))
	copy(out, durationBuckets)
	return out
}

// ParseDuration maps a client label onto its canonical bucket. Case and
// whitespace are ignored, so "<24 hours" and "1 week+" are accepted.
func ParseDuration(label string) (Duration, bool) {
	key := durationKey(label)
	if key == "" {
		return "", false
	}
	for _, d := range durationBuckets {
		if durationKey(string(d)) == key {
			return d, true
		}
	}
	return "", false
}

func durationKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
