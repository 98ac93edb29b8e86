package nametime

import (
	"regexp"
	"strconv"
	"time"
)

var (
	rePxl = regexp.MustCompile(`PXL_(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})(\d{3})`)
	reLv  = regexp.MustCompile(`lv_0_(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})`)
)

// Parse extracts the capture timestamp embedded in a filename.
//
// The token may appear anywhere in the filename; surrounding text such as
// parenthetical counters or export suffixes is ignored. When a token is
// present multiple times, the leftmost match wins.
//
// Returns (time, true) when a token with valid calendar fields is found,
// and (zero, false) otherwise. Out-of-range fields (month 13, hour 24, ...)
// are reported as not found, never as an error.
func Parse(filename string) (time.Time, bool) {
	if m := rePxl.FindStringSubmatch(filename); m != nil {
		return buildUTC(m[1], m[2], m[3], m[4], m[5], m[6], m[7])
	}
	if m := reLv.FindStringSubmatch(filename); m != nil {
		return buildUTC(m[1], m[2], m[3], m[4], m[5], m[6], "")
	}
	return time.Time{}, false
}

func buildUTC(yyyy, mm, dd, hh, mi, ss, mmm string) (time.Time, bool) {
	y, ok := atoi(yyyy)
	if !ok {
		return time.Time{}, false
	}
	mo, ok := atoi(mm)
	if !ok {
		return time.Time{}, false
	}
	d, ok := atoi(dd)
	if !ok {
		return time.Time{}, false
	}
	h, ok := atoi(hh)
	if !ok {
		return time.Time{}, false
	}
	min, ok := atoi(mi)
	if !ok {
		return time.Time{}, false
	}
	s, ok := atoi(ss)
	if !ok {
		return time.Time{}, false
	}

	nsec := 0
	if mmm != "" {
		millis, ok := atoi(mmm)
		if !ok {
			return time.Time{}, false
		}
		nsec = millis * int(time.Millisecond)
	}

	t := time.Date(y, time.Month(mo), d, h, min, s, nsec, time.UTC)

	// time.Date normalizes out-of-range fields (month 13 rolls into January,
	// day 31 of June rolls into July). Reject anything that moved.
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d ||
		t.Hour() != h || t.Minute() != min || t.Second() != s {
		return time.Time{}, false
	}

	return t, true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
