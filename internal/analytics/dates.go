package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// dayNum is a calendar day counted from 1970-01-01.
type dayNum int

func toDay(t time.Time) dayNum {
	y, m, d := t.Date()
	return dayNum(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

func (d dayNum) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d dayNum) String() string {
	return d.Time().Format(domain.DateLayout)
}

// parseDay accepts YYYY-MM-DD and RFC 3339 timestamps. For timestamps the
// calendar date is taken as written, in the timestamp's own offset.
func parseDay(s string) (dayNum, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return toDay(t), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return toDay(t), true
	}
	return 0, false
}

// completionLog is a cleaned completion history: unique days, ascending.
type completionLog struct {
	days       []dayNum
	skipped    int
	duplicates int
}

func newCompletionLog(raw []string) completionLog {
	var log completionLog
	seen := make(map[dayNum]struct{}, len(raw))
	for _, entry := range raw {
		d, ok := parseDay(entry)
		if !ok {
			log.skipped++
			continue
		}
		if _, dup := seen[d]; dup {
			log.duplicates++
			continue
		}
		seen[d] = struct{}{}
		log.days = append(log.days, d)
	}
	sort.Slice(log.days, func(i, j int) bool { return log.days[i] < log.days[j] })
	return log
}

// countBetween counts completion days in [from, to].
func (l completionLog) countBetween(from, to dayNum) int {
	if to < from {
		return 0
	}
	lo := sort.Search(len(l.days), func(i int) bool { return l.days[i] >= from })
	hi := sort.Search(len(l.days), func(i int) bool { return l.days[i] > to })
	return hi - lo
}

// lastOnOrBefore returns the latest completion day not after d.
func (l completionLog) lastOnOrBefore(d dayNum) (dayNum, bool) {
	i := sort.Search(len(l.days), func(i int) bool { return l.days[i] > d })
	if i == 0 {
		return 0, false
	}
	return l.days[i-1], true
}

// upTo returns the completion days not after d.
func (l completionLog) upTo(d dayNum) []dayNum {
	i := sort.Search(len(l.days), func(i int) bool { return l.days[i] > d })
	return l.days[:i]
}

func (l completionLog) has(d dayNum) bool {
	i := sort.Search(len(l.days), func(i int) bool { return l.days[i] >= d })
	return i < len(l.days) && l.days[i] == d
}

// span is an inclusive run of calendar days. A zero-length span is empty.
type span struct {
	first dayNum
	days  int
}

func (s span) empty() bool {
	return s.days <= 0
}

func (s span) last() dayNum {
	return s.first + dayNum(s.days) - 1
}

func (s span) previous() span {
	return span{first: s.first - dayNum(s.days), days: s.days}
}

// spanEnding is the n-day span whose last day is d.
func spanEnding(d dayNum, n int) span {
	if n <= 0 {
		return span{}
	}
	return span{first: d - dayNum(n) + 1, days: n}
}

// resolveWindow maps caller instants onto calendar days. Every day with any
// part inside [Start, End) is covered, so [2024-01-01, 2024-01-08) is seven days.
// Inverted, zero-length and unset windows resolve to an empty span.
func resolveWindow(w domain.DateWindow) span {
	if w.Start.IsZero() || w.End.IsZero() || !w.End.After(w.Start) {
		return span{}
	}
	y, m, d := w.Start.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, w.Start.Location())
	elapsed := w.End.Sub(startOfDay)
	n := int(elapsed / (secondsPerDay * time.Second))
	if elapsed%(secondsPerDay*time.Second) != 0 {
		n++
	}
	return span{first: toDay(w.Start), days: n}
}

// CleanCompletions parses, deduplicates and sorts a raw completion log.
// skipped counts unparseable entries and duplicates counts repeated dates.
func CleanCompletions(raw []string) (clean []string, skipped, duplicates int) {
	log := newCompletionLog(raw)
	clean = make([]string, len(log.days))
	for i, d := range log.days {
		clean[i] = d.String()
	}
	return clean, log.skipped, log.duplicates
}
