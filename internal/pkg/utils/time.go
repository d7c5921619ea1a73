package utils

import (
	"academia-service/internal/pkg/constvars"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClockMinutes turns "HH:MM" into minutes after midnight.
func ParseClockMinutes(clock string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ConvertTo12Hour renders "13:25" as "1:25 PM". Unparseable input is returned unchanged.
func ConvertTo12Hour(clock string) string {
	minutes, ok := ParseClockMinutes(clock)
	if !ok {
		return clock
	}
	hours := minutes / 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours12, minutes%60, period)
}

// ParseReferenceDate reads an optional YYYY-MM-DD date in loc, defaulting to now.
func ParseReferenceDate(value string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(value) == "" {
		return now.In(loc), nil
	}
	return time.ParseInLocation(constvars.DateLayoutISO, value, loc)
}
