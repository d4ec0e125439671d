package doy

// Julian Day Number conversions, used internally by Doy for weekday and
// epoch-millis arithmetic. Algorithm from Dershowitz & Reingold,
// "Calendrical Calculations" — adapted from the teacher's own
// gedcom/calendar.go, which implements the identical formulas for GEDCOM's
// Gregorian/Julian/Hebrew/French-Republican conversions.
//
// spec.md §9 flags two approximations in the original source: a day-of-week
// formula valid only for the 20th-21st century band, and an epoch-millis
// conversion that drifts because it divides by a mean year length. Both are
// replaced here by exact JDN arithmetic, which is correct for the full
// proleptic range Doy supports and serves both needs with one mechanism.

// gregorianToJDN converts a proleptic Gregorian (year, month, day) to a
// Julian Day Number.
func gregorianToJDN(year int, month Month, day int) int {
	m := int(month)
	a := (14 - m) / 12
	y := year + 4800 - a
	mm := m + 12*a - 3
	return day + (153*mm+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian converts a Julian Day Number back to a proleptic Gregorian
// (year, month, day).
func jdnToGregorian(jdn int) (year int, month Month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = Month(m + 3 - 12*(m/10))
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// IsLeapYear reports whether year is a leap year under the full proleptic
// Gregorian rule. spec.md §9 documents that the original source used the
// simplified rule `y%4==0 && y%100!=0` (which misclassifies year 2000); this
// implementation adopts the full rule per the decision recorded in
// DESIGN.md.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// daysInYear returns 365 or 366 depending on IsLeapYear(year).
func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
