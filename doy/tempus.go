package doy

// Tempus is the result of resolving a date expression: either a single day
// (Moment) or a half-open day range [Start, End) (Interval). It replaces
// the source's inheritance-based Moment/Interval split with a Go sum type;
// Start/End are the only observable operations, per spec.md §9.
type Tempus struct {
	start    Doy
	end      Doy
	interval bool
}

// Moment returns a Tempus denoting exactly the day d.
func Moment(d Doy) Tempus {
	return Tempus{start: d, end: d.Add(1)}
}

// Interval returns a Tempus denoting the half-open range [start, end).
func Interval(start, end Doy) Tempus {
	return Tempus{start: start, end: end, interval: true}
}

// Start returns the first day included in t.
func (t Tempus) Start() Doy { return t.start }

// End returns the first day NOT included in t: start+1 for a Moment, the
// given end for an Interval.
func (t Tempus) End() Doy { return t.end }

// IsInterval reports whether t was constructed as an Interval rather than a
// Moment.
func (t Tempus) IsInterval() bool { return t.interval }

// Equal reports structural equality: same start and end, and the same
// Moment/Interval kind.
func (t Tempus) Equal(other Tempus) bool {
	return t.interval == other.interval && t.start.Equal(other.start) && t.end.Equal(other.end)
}

func (t Tempus) String() string {
	if !t.interval {
		return t.start.String()
	}
	return t.start.String() + ".." + t.end.String()
}
