package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrUnsupportedTimezone = errors.New("unsupported timezone")

// maxOffsetHours is the largest UTC offset in use (Line Islands).
const maxOffsetHours = 14

// ParseLocation resolves the timezone reminders are scheduled in.
//
// Accepted forms:
//   - "" or "Local" for the host timezone
//   - IANA names such as "Asia/Shanghai"
//   - "UTC" and "GMT"
//   - fixed offsets such as "UTC+8", "UTC-3:30", "+8" or "-03:30"
//
// Fixed offsets ignore daylight saving time.
func ParseLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	switch {
	case tz == "" || strings.EqualFold(tz, "Local"):
		return time.Local, nil
	case strings.EqualFold(tz, "UTC"), strings.EqualFold(tz, "GMT"), strings.EqualFold(tz, "Etc/UTC"):
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(tz); err == nil {
		return loc, nil
	}

	offset, ok := parseOffset(tz)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTimezone, tz)
	}
	return time.FixedZone(offsetName(offset), offset), nil
}

// parseOffset converts "UTC+8", "+8" or "-03:30" to seconds east of UTC.
func parseOffset(tz string) (int, bool) {
	s := tz
	if len(s) >= 3 && strings.EqualFold(s[:3], "UTC") {
		s = s[3:]
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}

	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	hh, mm, hasMinutes := strings.Cut(s[1:], ":")
	if !hasMinutes {
		mm = "0"
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > maxOffsetHours {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m >= 60 {
		return 0, false
	}

	return sign * (h*3600 + m*60), true
}

func offsetName(offset int) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offset/3600, offset%3600/60)
}
