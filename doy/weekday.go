package doy

// Weekday names a day of the week. The numeric assignment is part of the
// public contract: Sun=0, Mon=1, ..., Sat=6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	// WeekdayUnknown is a sentinel for partial grammar matches. It must
	// never reach a caller of Resolve.
	WeekdayUnknown Weekday = -1
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "Unknown"
	}
	return weekdayNames[w]
}

// WeekdayFromInt maps any integer n to weekday(n mod 7), using a floored
// modulo so negative n still yields a valid weekday rather than the
// sentinel.
func WeekdayFromInt(n int) Weekday {
	return Weekday(floorMod(n, 7))
}

// isoOrdinal returns the ISO-8601 weekday ordinal, Mon=1..Sun=7.
func (w Weekday) isoOrdinal() int {
	return int(floorMod(int(w)+6, 7)) + 1
}

// DaysBefore returns the positive count of days one must advance from other
// to reach the next occurrence of w: if w is later in the week than other,
// that's the plain difference; otherwise it wraps through a full week.
// DaysBefore(x, x) is always 7 (a full week forward is the next occurrence).
func (w Weekday) DaysBefore(other Weekday) int {
	self := int(w)
	if self <= int(other) {
		self += 7
	}
	return self - int(other)
}

// floorMod returns a%m with the result always in [0, m).
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
