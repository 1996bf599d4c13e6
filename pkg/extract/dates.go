package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

var (
	isoDatePattern    = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	koreanDatePattern = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)
	monthDayPattern   = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	slashDatePattern  = regexp.MustCompile(`(^|[^\d-])(\d{1,2})/(\d{1,2})($|[^\d])`)

	koreanOffsetPattern  = regexp.MustCompile(`(\d+)일\s*(전|후|뒤)`)
	englishOffsetPattern = regexp.MustCompile(`(\d+)\s*days?\s*(ago|later|from now)`)
)

// namedOffsets are single-token relative terms and their day offsets.
// Checked in declaration order, longer tokens first so 내일모레 is not
// shadowed by 내일.
var namedOffsets = []struct {
	term   string
	offset int
}{
	{"내일모레", 2},
	{"모레", 2},
	{"글피", 3},
	{"그저께", -2},
	{"어제", -1},
	{"오늘", 0},
	{"내일", 1},
	{"today", 0},
	{"yesterday", -1},
	{"tomorrow", 1},
}

// weekdays is ordered so matching is deterministic when a question
// names more than one day; the earliest listed term wins.
var weekdays = []struct {
	term string
	day  time.Weekday
}{
	{"월요일", time.Monday}, {"화요일", time.Tuesday}, {"수요일", time.Wednesday},
	{"목요일", time.Thursday}, {"금요일", time.Friday}, {"토요일", time.Saturday},
	{"일요일", time.Sunday},
	{"monday", time.Monday}, {"tuesday", time.Tuesday}, {"wednesday", time.Wednesday},
	{"thursday", time.Thursday}, {"friday", time.Friday}, {"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// resolveDate applies the date precedence: explicit date > numeric
// offset > named relative term > weekday reference > unresolved.
// An explicit date always wins over a co-occurring relative term.
func (e *Extractor) resolveDate(question string, now time.Time) models.ResolvedDate {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if d, ok := explicitDate(question, today); ok {
		return models.ResolvedDate{Date: d, Kind: models.DateExplicit}
	}
	if days, ok := numericOffset(question); ok {
		return models.ResolvedDate{Date: today.AddDate(0, 0, days), Kind: models.DateOffset}
	}

	lower := strings.ToLower(question)
	for _, n := range namedOffsets {
		if strings.Contains(lower, n.term) {
			return models.ResolvedDate{Date: today.AddDate(0, 0, n.offset), Kind: models.DateRelative}
		}
	}
	if d, ok := weekdayReference(lower, today); ok {
		return models.ResolvedDate{Date: d, Kind: models.DateRelative}
	}
	// A bare "next week" with no weekday lands a week out.
	if strings.Contains(lower, "다음주") || strings.Contains(lower, "다음 주") || strings.Contains(lower, "next week") {
		return models.ResolvedDate{Date: today.AddDate(0, 0, 7), Kind: models.DateRelative}
	}

	return models.ResolvedDate{}
}

func explicitDate(question string, today time.Time) (time.Time, bool) {
	if m := isoDatePattern.FindStringSubmatch(question); m != nil {
		return buildDate(m[1], m[2], m[3], today)
	}
	if m := koreanDatePattern.FindStringSubmatch(question); m != nil {
		return buildDate(m[1], m[2], m[3], today)
	}
	if m := monthDayPattern.FindStringSubmatch(question); m != nil {
		return buildDate("", m[1], m[2], today)
	}
	if m := slashDatePattern.FindStringSubmatch(question); m != nil {
		return buildDate("", m[2], m[3], today)
	}
	return time.Time{}, false
}

// buildDate assembles a date, defaulting the year to the reference year.
func buildDate(year, month, day string, today time.Time) (time.Time, bool) {
	y := today.Year()
	if year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			return time.Time{}, false
		}
		y = parsed
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, today.Location()), true
}

func numericOffset(question string) (int, bool) {
	if m := koreanOffsetPattern.FindStringSubmatch(question); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		if m[2] == "전" {
			return -n, true
		}
		return n, true
	}
	if m := englishOffsetPattern.FindStringSubmatch(strings.ToLower(question)); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		if m[2] == "ago" {
			return -n, true
		}
		return n, true
	}
	return 0, false
}

// weekdayReference resolves "this/next/last <weekday>" and the Korean
// equivalents. A bare weekday means the next occurrence, today included.
func weekdayReference(lower string, today time.Time) (time.Time, bool) {
	for _, w := range weekdays {
		idx := strings.Index(lower, w.term)
		if idx == -1 {
			continue
		}

		prefix := lower[:idx]
		delta := (int(w.day) - int(today.Weekday()) + 7) % 7

		switch {
		case strings.Contains(prefix, "다음주") || strings.Contains(prefix, "다음 주") || strings.Contains(prefix, "next"):
			if delta == 0 {
				delta = 7
			} else {
				delta += 7
			}
		case strings.Contains(prefix, "저번주") || strings.Contains(prefix, "지난주") || strings.Contains(prefix, "지난 주") || strings.Contains(prefix, "last"):
			delta -= 7
		}

		return today.AddDate(0, 0, delta), true
	}
	return time.Time{}, false
}
