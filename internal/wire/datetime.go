package wire

// DOSTime is the decoded form of a two-word MS-DOS date/time pair. Fields
// are stored as decoded, not validated; an archive may legally carry
// out-of-range values (e.g. day 0).
type DOSTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// DecodeDOSTime decodes the standard MS-DOS date/time encoding: date's high
// 7 bits are years since 1980, next 4 bits the month, low 5 bits the day;
// time's high 5 bits are the hour, next 6 bits the minute, low 5 bits are
// seconds in 2-second increments.
func DecodeDOSTime(date, time uint16) DOSTime {
	return DOSTime{
		Year:   1980 + int(date>>9),
		Month:  int((date >> 5) & 0xF),
		Day:    int(date & 0x1F),
		Hour:   int(time >> 11),
		Minute: int((time >> 5) & 0x3F),
		Second: int(time&0x1F) * 2,
	}
}
