package timeutil

import (
	"math"
	"time"
)

// Day numbers count from 1970-01-01 in the proleptic Gregorian calendar.
// The conversions are integer only so they keep working for years that
// time.Time cannot represent.

var (
	minOrdinal = daysFromCivil(MinYear-1, 1, 1)
	maxOrdinal = daysFromCivil(MaxYear+1, 12, 31)
)

// ordinal returns the day number of d, rolling over out of range fields.
func (d Date) ordinal() int64 {
	year := clamp(int64(d.Year), MinYear-2, MaxYear+2)
	month := int64(d.Month) - 1
	year = clamp(year+floorDiv(month, 12), MinYear-2, MaxYear+2)
	first := daysFromCivil(year, floorMod(month, 12)+1, 1)
	return clampOrdinal(satAdd(satAdd(first, int64(d.Day)), -1))
}

func fromOrdinal(n int64) Date {
	y, m, d := civilFromDays(n)
	return Date{Year: int(y), Month: time.Month(m), Day: int(d)}
}

func clampOrdinal(n int64) int64 {
	return clamp(n, minOrdinal, maxOrdinal)
}

// daysFromCivil and civilFromDays work in 400 year eras of 146097 days with
// years starting in March, so the leap day is the last day of the year.
func daysFromCivil(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	doy := (153*((m+9)%12)+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func civilFromDays(n int64) (y, m, d int64) {
	n += 719468
	era := floorDiv(n, 146097)
	doe := n - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	m = mp + 3
	if m > 12 {
		m -= 12
	}
	y = yoe + era*400
	if m <= 2 {
		y++
	}
	return y, m, d
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func clamp(v, lo, hi int64) int64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

func satAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	default:
		return a + b
	}
}

func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		if (a < 0) != (b < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return r
}
