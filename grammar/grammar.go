package grammar

import (
	"regexp"
	"strings"
)

// Tag names a production in the grammar. The interpreter dispatches on Tag
// alone; Text and Children carry whatever that production needs to resolve.
type Tag int

const (
	// Terminal tags: the interpreter resolves these immediately and returns.
	TagDateISO Tag = iota
	TagDateEN
	TagDateDE
	TagDateLang
	TagDateKW
	TagToday
	TagYesterday
	TagTomorrow

	// Non-terminal tags: the interpreter mutates its running state and
	// continues to the next child.
	TagLast
	TagNext
	TagForelast
	TagAfterNext
	TagAmount

	// Context-closing tags: the interpreter consumes its running state and
	// returns.
	TagDayOfWeek
	TagMonth
	TagTimeUnit

	// Leaf value tags, found only inside the Children of one of the date_*
	// productions above.
	TagYYYY
	TagMM
	TagDD
	TagKW
)

// Node is one production in the parse tree: a tag, the raw text it matched
// (meaningful for leaf/value tags), and any nested productions.
type Node struct {
	Tag      Tag
	Text     string
	Children []Node
}

// child returns the first direct child with the given tag, and whether one
// was found.
func (n Node) child(tag Tag) (Node, bool) {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c, true
		}
	}
	return Node{}, false
}

// YYYY returns the matched year text and whether a yyyy child is present.
func (n Node) YYYY() (string, bool) {
	c, ok := n.child(TagYYYY)
	return c.Text, ok
}

// MM returns the matched month-number text and whether an mm child is present.
func (n Node) MM() (string, bool) {
	c, ok := n.child(TagMM)
	return c.Text, ok
}

// DD returns the matched day-number text and whether a dd child is present.
func (n Node) DD() (string, bool) {
	c, ok := n.child(TagDD)
	return c.Text, ok
}

// KW returns the matched week-number text and whether a kw child is present.
func (n Node) KW() (string, bool) {
	c, ok := n.child(TagKW)
	return c.Text, ok
}

// MonthToken returns a date_lang node's month child text — the word to
// resolve with ResolveMonth, not a number.
func (n Node) MonthToken() (string, bool) {
	c, ok := n.child(TagMonth)
	return c.Text, ok
}

var (
	reDateISO    = regexp.MustCompile(`^(\d{4}|\d{2})-(\d{2})-(\d{2})$`)
	reDateEN     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reDateDE     = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{2,4})?$`)
	reDateLangEN = regexp.MustCompile(`^(\p{L}+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{2,4}))?$`)
	reDateLangDE = regexp.MustCompile(`^(\d{1,2})\.\s+(\p{L}+)\.?(?:\s+(\d{2,4}))?$`)
	reDateKWISO  = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)
	reDateKWWord = regexp.MustCompile(`(?i)^(?:kw|woche|w)\.?\s*(\d{2,4})[-/](\d{1,2})$`)
	reAmount     = regexp.MustCompile(`^[+-]?\d+$`)
)

// Parse recognizes one top-level alternative in expr and returns a root
// whose Children are that alternative's tagged productions in source order.
// Whitespace is trimmed at the edges; it never matters inside a matched
// date literal, since the literal regexes don't allow interior spaces
// except where the grammar explicitly does (date_lang's "dd. month yyyy"
// and "month dd yyyy", and the space after date_kw's KW/Woche/W prefix).
func Parse(expr string) (Node, error) {
	text := strings.TrimSpace(expr)
	if text == "" {
		return Node{}, newSyntaxError(expr, "empty expression")
	}

	if n, ok := matchWhole(text); ok {
		return Node{Children: []Node{n}}, nil
	}

	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		if _, ok := lookupWeekday(fields[0]); ok {
			return Node{Children: []Node{{Tag: TagDayOfWeek, Text: fields[0]}}}, nil
		}
		if _, ok := lookupMonth(fields[0]); ok {
			return Node{Children: []Node{{Tag: TagMonth, Text: fields[0]}}}, nil
		}
	case 2:
		if n, ok := matchModifierAndTarget(fields[0], fields[1]); ok {
			return Node{Children: n}, nil
		}
		if n, ok := matchAmountAndUnit(fields[0], fields[1]); ok {
			return Node{Children: n}, nil
		}
	}

	return Node{}, newSyntaxError(expr, "Nothing found")
}

// matchWhole tries every alternative that must consume the whole trimmed
// string by itself: the three bare adverbs, then the date literals. Parse
// calls it before the modifier/weekday/month/amount forms, per spec.md
// §4.3's "date literals before natural-language forms" rule. Within
// matchWhole none of these patterns actually overlap, so in practice the
// order here is cosmetic.
func matchWhole(text string) (Node, bool) {
	switch fold(text) {
	case "today", "heute":
		return Node{Tag: TagToday}, true
	case "yesterday", "gestern":
		return Node{Tag: TagYesterday}, true
	case "tomorrow", "morgen":
		return Node{Tag: TagTomorrow}, true
	}

	if m := reDateISO.FindStringSubmatch(text); m != nil {
		return ymdNode(TagDateISO, m[1], m[2], m[3]), true
	}
	if m := reDateEN.FindStringSubmatch(text); m != nil {
		return ymdNode(TagDateEN, m[3], m[1], m[2]), true
	}
	if m := reDateDE.FindStringSubmatch(text); m != nil {
		return ymdNode(TagDateDE, m[3], m[2], m[1]), true
	}
	if m := reDateLangEN.FindStringSubmatch(text); m != nil {
		if _, ok := lookupMonth(m[1]); ok {
			return langNode(m[3], m[1], m[2]), true
		}
	}
	if m := reDateLangDE.FindStringSubmatch(text); m != nil {
		if _, ok := lookupMonth(m[2]); ok {
			return langNode(m[3], m[2], m[1]), true
		}
	}
	if m := reDateKWISO.FindStringSubmatch(text); m != nil {
		return kwNode(m[1], m[2]), true
	}
	if m := reDateKWWord.FindStringSubmatch(text); m != nil {
		return kwNode(m[1], m[2]), true
	}

	return Node{}, false
}

// ymdNode builds a date_iso/date_en/date_de node. yyyy may be empty, which
// means the year was not present in the input (valid only for date_de's
// trailing-dot form, e.g. "22.1.").
func ymdNode(tag Tag, yyyy, mm, dd string) Node {
	children := []Node{
		{Tag: TagMM, Text: mm},
		{Tag: TagDD, Text: dd},
	}
	if yyyy != "" {
		children = append([]Node{{Tag: TagYYYY, Text: yyyy}}, children...)
	}
	return Node{Tag: tag, Children: children}
}

// langNode builds a date_lang node: month is a word, not a number, so it's
// carried on the TagMonth child's Text rather than as a TagMM leaf.
func langNode(yyyy, month, dd string) Node {
	children := []Node{
		{Tag: TagMonth, Text: month},
		{Tag: TagDD, Text: dd},
	}
	if yyyy != "" {
		children = append([]Node{{Tag: TagYYYY, Text: yyyy}}, children...)
	}
	return Node{Tag: TagDateLang, Children: children}
}

func kwNode(yyyy, kw string) Node {
	return Node{Tag: TagDateKW, Children: []Node{
		{Tag: TagYYYY, Text: yyyy},
		{Tag: TagKW, Text: kw},
	}}
}

// matchModifierAndTarget handles "modifier weekday" and "modifier month",
// e.g. "last monday", "nächsten Fr", "vorletzter mo", "next january". The
// modifier is optional at the sentence level (Parse's len==1 case handles a
// bare weekday), but once two tokens are present the first must be a
// modifier for this alternative to apply.
func matchModifierAndTarget(first, second string) ([]Node, bool) {
	modifier, ok := lookupModifier(first)
	if !ok {
		return nil, false
	}

	var modNode Node
	switch modifier {
	case modifierLast:
		modNode = Node{Tag: TagLast}
	case modifierNext:
		modNode = Node{Tag: TagNext}
	case modifierForelast:
		modNode = Node{Tag: TagForelast}
	case modifierAfterNext:
		modNode = Node{Tag: TagAfterNext}
	}

	if _, ok := lookupWeekday(second); ok {
		return []Node{modNode, {Tag: TagDayOfWeek, Text: second}}, true
	}
	if _, ok := lookupMonth(second); ok {
		return []Node{modNode, {Tag: TagMonth, Text: second}}, true
	}
	return nil, false
}

// matchAmountAndUnit handles "signed_integer timeunit", e.g. "+5 Tage",
// "-13 month".
func matchAmountAndUnit(first, second string) ([]Node, bool) {
	if !reAmount.MatchString(first) {
		return nil, false
	}
	unit, ok := lookupTimeUnit(second)
	if !ok {
		return nil, false
	}
	return []Node{
		{Tag: TagAmount, Text: first},
		{Tag: TagTimeUnit, Text: unit},
	}, true
}
