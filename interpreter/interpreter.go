package interpreter

import (
	"strconv"

	"github.com/cacack/timewarp/doy"
	"github.com/cacack/timewarp/grammar"
)

// Direction is the caller's hint about whether a resolved expression
// denotes the start or the end of a time range.
type Direction int

const (
	// From denotes the start of a range. future defaults to false.
	From Direction = iota
	// To denotes the end of a range. future defaults to true, and month
	// resolution pushes one month forward (see resolveMonth).
	To
)

// state is the interpreter's running record while it walks a parse tree.
// It is a plain value on the call stack; nothing about Interpret persists
// across calls.
type state struct {
	future bool
	amount int
}

// Interpret walks root's children in source order, dispatching by tag, and
// produces the Tempus the first terminal or context-closing tag resolves.
// It returns a *ResolveError ("Nothing found") if no child ever resolves.
func Interpret(root grammar.Node, reference doy.Doy, direction Direction) (doy.Tempus, error) {
	st := state{future: direction == To}

	for _, child := range root.Children {
		switch child.Tag {
		case grammar.TagDateISO, grammar.TagDateEN, grammar.TagDateDE:
			return resolveYMD(child, reference)
		case grammar.TagDateLang:
			return resolveDateLang(child, reference)
		case grammar.TagDateKW:
			return resolveDateKW(child, reference)
		case grammar.TagToday:
			return doy.Moment(reference), nil
		case grammar.TagYesterday:
			return doy.Moment(reference.Sub(1)), nil
		case grammar.TagTomorrow:
			return doy.Moment(reference.Add(1)), nil

		case grammar.TagLast:
			st.future = false
		case grammar.TagNext:
			st.future = true
		case grammar.TagForelast:
			st.future = false
			st.amount = 1
		case grammar.TagAfterNext:
			st.amount = 1
		case grammar.TagAmount:
			n, err := strconv.Atoi(child.Text)
			if err != nil {
				return doy.Tempus{}, newResolveError("invalid amount", child.Text, err)
			}
			st.amount = n

		case grammar.TagDayOfWeek:
			return resolveDayOfWeek(child, reference, st)
		case grammar.TagMonth:
			return resolveMonth(child, reference, direction, st)
		case grammar.TagTimeUnit:
			return resolveTimeUnit(child, reference, st)
		}
	}

	return doy.Tempus{}, newResolveError("Nothing found", "", nil)
}

// resolveYMD handles date_iso, date_en, and date_de: ymd-assemble, with a
// missing yyyy child defaulting to the reference year and a two-digit yyyy
// expanded by correctYYYY.
func resolveYMD(n grammar.Node, reference doy.Doy) (doy.Tempus, error) {
	year, err := resolveYear(n, reference)
	if err != nil {
		return doy.Tempus{}, err
	}
	mmText, _ := n.MM()
	mm, err := strconv.Atoi(mmText)
	if err != nil {
		return doy.Tempus{}, newResolveError("invalid month", mmText, err)
	}
	if mm < int(doy.January) || mm > int(doy.December) {
		return doy.Tempus{}, newResolveError("month out of range 1..12", mmText, nil)
	}
	ddText, _ := n.DD()
	dd, err := strconv.Atoi(ddText)
	if err != nil {
		return doy.Tempus{}, newResolveError("invalid day", ddText, err)
	}
	return doy.Moment(doy.FromYMD(year, doy.Month(mm), dd)), nil
}

// resolveDateLang handles date_lang: a word month instead of a number.
func resolveDateLang(n grammar.Node, reference doy.Doy) (doy.Tempus, error) {
	year, err := resolveYear(n, reference)
	if err != nil {
		return doy.Tempus{}, err
	}
	monthText, _ := n.MonthToken()
	month, ok := grammar.ResolveMonth(monthText)
	if !ok {
		return doy.Tempus{}, newResolveError("unrecognized month", monthText, nil)
	}
	ddText, _ := n.DD()
	dd, err := strconv.Atoi(ddText)
	if err != nil {
		return doy.Tempus{}, newResolveError("invalid day", ddText, err)
	}
	return doy.Moment(doy.FromYMD(year, month, dd)), nil
}

// resolveDateKW handles date_kw: reads yyyy (two-digit allowed) and kw,
// and emits the 7-day interval starting on the Monday of that ISO week.
func resolveDateKW(n grammar.Node, reference doy.Doy) (doy.Tempus, error) {
	year, err := resolveYear(n, reference)
	if err != nil {
		return doy.Tempus{}, err
	}
	kwText, _ := n.KW()
	kw, err := strconv.Atoi(kwText)
	if err != nil {
		return doy.Tempus{}, newResolveError("invalid week", kwText, err)
	}
	start := doy.FromWeek(year, kw)
	return doy.Interval(start, start.Add(7)), nil
}

// resolveYear reads n's yyyy child, if present, and expands it with
// correctYYYY; a missing yyyy defaults to reference's year.
func resolveYear(n grammar.Node, reference doy.Doy) (int, error) {
	yyyyText, ok := n.YYYY()
	if !ok {
		return reference.Year(), nil
	}
	yy, err := strconv.Atoi(yyyyText)
	if err != nil {
		return 0, newResolveError("invalid year", yyyyText, err)
	}
	return correctYYYY(yy, reference.Year()), nil
}

// correctYYYY expands a two-digit year to four digits using a sliding
// 100-year window centered on referenceYear. Years already above 100 are
// returned unchanged.
func correctYYYY(yy, referenceYear int) int {
	if yy > 100 {
		return yy
	}
	offset := referenceYear % 100
	base := referenceYear - offset
	switch {
	case yy > offset+50:
		return base - 100 + yy
	case yy < offset-50:
		return base + 100 + yy
	default:
		return base + yy
	}
}

// resolveDayOfWeek implements the day_of_week context-closing tag: the
// target weekday is reached by walking forward from reference when st.future,
// backward otherwise, with a further amount*7 week offset.
func resolveDayOfWeek(n grammar.Node, reference doy.Doy, st state) (doy.Tempus, error) {
	target, ok := grammar.ResolveWeekday(n.Text)
	if !ok {
		return doy.Tempus{}, newResolveError("unrecognized weekday", n.Text, nil)
	}
	today := reference.Weekday()
	var result doy.Doy
	if st.future {
		result = reference.Add(target.DaysBefore(today) + st.amount*7)
	} else {
		result = reference.Sub(today.DaysBefore(target) + st.amount*7)
	}
	return doy.Moment(result), nil
}

// resolveMonth implements the month context-closing tag via relMonth.
func resolveMonth(n grammar.Node, reference doy.Doy, direction Direction, st state) (doy.Tempus, error) {
	target, ok := grammar.ResolveMonth(n.Text)
	if !ok {
		return doy.Tempus{}, newResolveError("unrecognized month", n.Text, nil)
	}
	return doy.Moment(relMonth(reference, direction, st.future, target)), nil
}

// relMonth resolves a bare "modifier month" expression (e.g. "next
// january") to the first of the target month in the correct year.
//
// Step 1: a To direction treats the named month as the end of that
// month's span, i.e. the start of the following month. Step 2: the year
// offset is chosen so the result sits on the correct side of reference
// given st.future.
func relMonth(reference doy.Doy, direction Direction, future bool, target doy.Month) doy.Doy {
	if direction == To {
		target = target.Inc(1)
	}
	todayMonth := reference.Month()

	var yearOffset int
	switch {
	case target > todayMonth && !future:
		yearOffset = -1
	case target < todayMonth && future:
		yearOffset = 1
	}

	return doy.FromYMD(reference.Year()+yearOffset, target, 1)
}

// resolveTimeUnit implements the timeunit context-closing tag: apply
// st.amount in the named unit to reference.
func resolveTimeUnit(n grammar.Node, reference doy.Doy, st state) (doy.Tempus, error) {
	switch n.Text {
	case "day":
		return doy.Moment(reference.Add(st.amount)), nil
	case "month":
		return doy.Moment(addMonths(reference, st.amount)), nil
	case "year":
		return doy.Moment(doy.FromDayOfYear(reference.DayOfYear(), reference.Year()+st.amount)), nil
	default:
		return doy.Tempus{}, newResolveError("unrecognized time unit", n.Text, nil)
	}
}

// addMonths moves reference.Month() by n (with year roll), preserving
// day-of-month; FromYMD's own normalization handles the case where the
// target month is shorter than reference's day-of-month.
func addMonths(reference doy.Doy, n int) doy.Doy {
	total := int(reference.Month()) - 1 + n
	year := reference.Year() + total/12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return doy.FromYMD(year, doy.Month(month+1), reference.DayOfMonth())
}
