package codec

import (
	"fmt"
	"strconv"
	"time"
)

// TimeEncoding selects how a time is stored in a node.
type TimeEncoding int

const (
	// TimeUnix stores whole seconds since the Unix epoch as a Number.
	TimeUnix TimeEncoding = iota
	// TimeStamp stores a compact String "YYYYMMDDhhmmss".
	TimeStamp
	// TimeDateTime stores a String "YYYY-MM-DD hh:mm:ss".
	TimeDateTime
)

const (
	stampLayout    = "20060102150405"
	dateTimeLayout = "2006-01-02 15:04:05"
)

func (e TimeEncoding) String() string {
	switch e {
	case TimeUnix:
		return "unix"
	case TimeStamp:
		return "stamp"
	case TimeDateTime:
		return "datetime"
	default:
		return "<unknown time encoding " + strconv.Itoa(int(e)) + ">"
	}
}

// IsString reports whether times in encoding e are stored as Strings.
func (e TimeEncoding) IsString() bool {
	return e == TimeStamp || e == TimeDateTime
}

// FormatTime returns the text of t in encoding e. Times are rendered in UTC
// and truncated to the second.
func FormatTime(t time.Time, e TimeEncoding) (string, error) {
	t = t.UTC()
	switch e {
	case TimeUnix:
		return strconv.FormatInt(t.Unix(), 10), nil
	case TimeStamp:
		if t.Year() < 0 || t.Year() > 9999 {
			return "", fmt.Errorf("%w: year %d", ErrRange, t.Year())
		}
		return t.Format(stampLayout), nil
	case TimeDateTime:
		if t.Year() < 0 || t.Year() > 9999 {
			return "", fmt.Errorf("%w: year %d", ErrRange, t.Year())
		}
		return t.Format(dateTimeLayout), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrMalformed, e)
	}
}

// ParseTime reads text written in encoding e as a UTC time. For TimeUnix, s
// is a decimal count of seconds.
func ParseTime(s string, e TimeEncoding) (time.Time, error) {
	switch e {
	case TimeUnix:
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: unix time %q", ErrMalformed, s)
		}
		return time.Unix(secs, 0).UTC(), nil
	case TimeStamp:
		return parseLayout(stampLayout, s)
	case TimeDateTime:
		return parseLayout(dateTimeLayout, s)
	default:
		return time.Time{}, fmt.Errorf("%w: %s", ErrMalformed, e)
	}
}

func parseLayout(layout, s string) (time.Time, error) {
	res, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %w", ErrMalformed, s, err)
	}
	return res, nil
}
