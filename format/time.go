package format

import (
	"regexp"
	"strconv"
	"time"
)

const dateLen = 10

// dateFormat requires a valid RFC3339 full-date: YYYY-MM-DD.
func dateFormat(s string) bool {
	if len(s) != dateLen || s[4] != '-' || s[7] != '-' {
		return false
	}
	year, err1 := strconv.Atoi(s[:4])
	month, err2 := strconv.Atoi(s[5:7])
	mday, err3 := strconv.Atoi(s[8:])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	if year < 0 || month < 1 || month > 12 || mday < 1 || mday > 31 {
		return false
	}
	dy, dm, dd := time.Date(year, time.Month(month), mday, 0, 0, 0, 0, time.UTC).Date()
	return dy == year && dm == time.Month(month) && dd == mday
}

// timeFormat requires a valid RFC3339 full-time: HH:MM:SS[frac]offset.
func timeFormat(s string) bool {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return false
	}
	hour, err1 := strconv.Atoi(s[:2])
	minute, err2 := strconv.Atoi(s[3:5])
	second, err3 := strconv.Atoi(s[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 60 {
		return false
	}
	rest := s[8:]
	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		if len(rest) == 0 {
			return false
		}
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			rest = rest[1:]
		}
	}
	if len(rest) == 0 {
		return false
	}
	negOffset := false
	switch rest[0] {
	case 'Z', 'z':
		if second == 60 && (hour != 23 || minute != 59) {
			return false
		}
		return len(rest) == 1
	case '+':
		rest = rest[1:]
	case '-':
		negOffset = true
		rest = rest[1:]
	default:
		return false
	}
	if len(rest) != 5 || rest[2] != ':' {
		return false
	}
	hourOffset, err4 := strconv.Atoi(rest[:2])
	minuteOffset, err5 := strconv.Atoi(rest[3:])
	if err4 != nil || err5 != nil {
		return false
	}
	if hourOffset < 0 || hourOffset > 23 || minuteOffset < 0 || minuteOffset > 59 {
		return false
	}
	if second == 60 {
		if !negOffset {
			hourOffset = -hourOffset
			minuteOffset = -minuteOffset
		}
		if (hour+hourOffset != 23 && hour+hourOffset != 0) || (minute+minuteOffset != 59 && minute+minuteOffset != -1) {
			return false
		}
	}
	return true
}

// dateTimeFormat requires date-time = full-date "T" full-time.
func dateTimeFormat(s string) bool {
	if len(s) < dateLen || !dateFormat(s[:dateLen]) {
		return false
	}
	rest := s[dateLen:]
	if len(rest) == 0 || (rest[0] != 'T' && rest[0] != 't') {
		return false
	}
	return timeFormat(rest[1:])
}

var durationPattern = regexp.MustCompile(
	`^P(?:\d+W|(?:\d+Y)?(?:\d+M)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+(?:\.\d+)?S)?)?)$`)

// durationFormat requires a valid ISO 8601 duration, approximated with a
// regular expression rather than the full grammar (matching the "fast
// mode" tradeoff the data model allows for date/time validators).
func durationFormat(s string) bool {
	if s == "P" || s == "" {
		return false
	}
	if s == "PT" {
		return false
	}
	return durationPattern.MatchString(s)
}

var fastDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var fastTimePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)

func fastDateFormat(s string) bool { return fastDatePattern.MatchString(s) }
func fastTimeFormat(s string) bool { return fastTimePattern.MatchString(s) }
func fastDateTimeFormat(s string) bool {
	idx := -1
	for i, c := range s {
		if c == 'T' || c == 't' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	return fastDateFormat(s[:idx]) && fastTimeFormat(s[idx+1:])
}
