package grammar

import (
	"golang.org/x/text/cases"

	"github.com/cacack/timewarp/doy"
)

// fold normalizes a token for case-insensitive, umlaut-correct comparison.
// Plain strings.ToLower mishandles German ß/ü/ö/ä in a handful of locales;
// cases.Fold is the Unicode-aware equivalent and costs nothing extra here
// since tokens are short.
var foldCaser = cases.Fold()

func fold(s string) string {
	return foldCaser.String(s)
}

// weekdayTokens maps every accepted English and German weekday spelling
// (long and short forms) to its Weekday, keyed by folded text.
var weekdayTokens = map[string]doy.Weekday{
	"sunday": doy.Sunday, "sun": doy.Sunday, "so": doy.Sunday, "sonntag": doy.Sunday,
	"monday": doy.Monday, "mon": doy.Monday, "mo": doy.Monday, "montag": doy.Monday,
	"tuesday": doy.Tuesday, "tue": doy.Tuesday, "tu": doy.Tuesday, "di": doy.Tuesday, "dienstag": doy.Tuesday,
	"wednesday": doy.Wednesday, "wed": doy.Wednesday, "we": doy.Wednesday, "mi": doy.Wednesday, "mittwoch": doy.Wednesday,
	"thursday": doy.Thursday, "thu": doy.Thursday, "th": doy.Thursday, "do": doy.Thursday, "donnerstag": doy.Thursday,
	"friday": doy.Friday, "fri": doy.Friday, "fr": doy.Friday, "freitag": doy.Friday,
	"saturday": doy.Saturday, "sat": doy.Saturday, "sa": doy.Saturday, "samstag": doy.Saturday, "sonnabend": doy.Saturday,
}

// monthTokens maps every accepted English and German month spelling to its
// Month, keyed by folded text.
var monthTokens = map[string]doy.Month{
	"january": doy.January, "jan": doy.January, "januar": doy.January,
	"february": doy.February, "feb": doy.February, "februar": doy.February,
	"march": doy.March, "mar": doy.March, "mär": doy.March, "märz": doy.March, "maerz": doy.March, "marz": doy.March,
	"april": doy.April, "apr": doy.April,
	"may": doy.May, "mai": doy.May,
	"june": doy.June, "jun": doy.June, "juni": doy.June,
	"july": doy.July, "jul": doy.July, "juli": doy.July,
	"august": doy.August, "aug": doy.August,
	"september": doy.September, "sep": doy.September, "sept": doy.September,
	"october": doy.October, "oct": doy.October, "okt": doy.October, "oktober": doy.October,
	"november": doy.November, "nov": doy.November,
	"december": doy.December, "dec": doy.December, "dez": doy.December, "dezember": doy.December,
}

// timeUnitTokens maps an English or German time-unit word, singular or
// plural, to its canonical unit name ("day", "month", "year").
var timeUnitTokens = map[string]string{
	"day": "day", "days": "day", "tag": "day", "tage": "day",
	"month": "month", "months": "month", "monat": "month", "monate": "month",
	"year": "year", "years": "year", "jahr": "year", "jahre": "year",
}

// modifierTokens maps a folded modifier word to its semantic kind.
// The ordering within this file doesn't matter for matching (it's a map
// lookup), but the four kinds mirror the four non-terminal modifier tags
// in §4.3/§4.4 of the grammar: last/letzten, next/nächsten/kommend/coming,
// vorletzten (forelast), übernächsten (afternext).
const (
	modifierLast      = "last"
	modifierNext      = "next"
	modifierForelast  = "forelast"
	modifierAfterNext = "afternext"
)

var modifierTokens = map[string]string{
	"last": modifierLast, "letzte": modifierLast, "letzten": modifierLast, "letzter": modifierLast,

	"next": modifierNext, "nächste": modifierNext, "nächsten": modifierNext, "nächster": modifierNext,
	"kommend": modifierNext, "kommenden": modifierNext, "coming": modifierNext,

	"vorletzte": modifierForelast, "vorletzten": modifierForelast, "vorletzter": modifierForelast,

	"übernächste": modifierAfterNext, "übernächsten": modifierAfterNext, "übernächster": modifierAfterNext,
}

func lookupWeekday(token string) (doy.Weekday, bool) {
	w, ok := weekdayTokens[fold(token)]
	return w, ok
}

func lookupMonth(token string) (doy.Month, bool) {
	m, ok := monthTokens[fold(token)]
	return m, ok
}

func lookupTimeUnit(token string) (string, bool) {
	u, ok := timeUnitTokens[fold(token)]
	return u, ok
}

func lookupModifier(token string) (string, bool) {
	m, ok := modifierTokens[fold(token)]
	return m, ok
}

// ResolveWeekday maps a day_of_week node's matched text to a Weekday. It is
// exported for the interpreter, which receives only the raw token recorded
// on the Node.
func ResolveWeekday(token string) (doy.Weekday, bool) {
	return lookupWeekday(token)
}

// ResolveMonth maps a month node's matched text (or a date_lang node's
// month child) to a Month.
func ResolveMonth(token string) (doy.Month, bool) {
	return lookupMonth(token)
}

// ResolveTimeUnit maps a timeunit node's matched text to its canonical unit
// name: "day", "month", or "year".
func ResolveTimeUnit(token string) (string, bool) {
	return lookupTimeUnit(token)
}
