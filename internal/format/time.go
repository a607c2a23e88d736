package format

import (
	"time"
)

const (
	filetimeOffset = 116444736000000000 // difference between FILETIME epoch and Unix epoch in 100ns units
	filetimeUnit   = 100                // FILETIME units are 100ns
	filetimePerSec = uint64(time.Second / filetimeUnit)

	// FiletimeLayout is how decoded FILETIME values are rendered.
	FiletimeLayout = "2006-01-02 15:04:05.0000000 UTC"
)

// FiletimeToTime converts a Windows FILETIME value to time.Time.
// Values before the Unix epoch clamp to the epoch. Every uint64 converts
// without overflow; 0xFFFFFFFFFFFFFFFF lands in year 60056.
func FiletimeToTime(v uint64) time.Time {
	if v <= filetimeOffset {
		return time.Unix(0, 0).UTC()
	}
	ticks := v - filetimeOffset
	sec := int64(ticks / filetimePerSec)
	nsec := int64(ticks%filetimePerSec) * filetimeUnit
	return time.Unix(sec, nsec).UTC()
}

// FormatFiletime renders v as a UTC timestamp. Zero renders as "(none)".
func FormatFiletime(v uint64) string {
	if v == 0 {
		return "(none)"
	}
	return FiletimeToTime(v).Format(FiletimeLayout)
}
