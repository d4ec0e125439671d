package interpreter

import (
	"testing"

	"github.com/cacack/timewarp/doy"
	"github.com/cacack/timewarp/grammar"
)

func resolve(t *testing.T, reference doy.Doy, direction Direction, text string) doy.Tempus {
	t.Helper()
	root, err := grammar.Parse(text)
	if err != nil {
		t.Fatalf("grammar.Parse(%q) error = %v", text, err)
	}
	tempus, err := Interpret(root, reference, direction)
	if err != nil {
		t.Fatalf("Interpret(%q) error = %v", text, err)
	}
	return tempus
}

func TestInterpret_DateLiterals(t *testing.T) {
	reference := doy.FromYMD(2023, doy.March, 17)
	tests := []struct {
		text string
		want doy.Doy
	}{
		{"22.01.2023", doy.FromYMD(2023, doy.January, 22)},
		{"22.1.23", doy.FromYMD(2023, doy.January, 22)},
		{"22.1.", doy.FromYMD(2023, doy.January, 22)},
		{"3/16/2023", doy.FromYMD(2023, doy.March, 16)},
		{"2023-03-16", doy.FromYMD(2023, doy.March, 16)},
		{"    23-03-16  ", doy.FromYMD(2023, doy.March, 16)},
		{"16. Mär 2023", doy.FromYMD(2023, doy.March, 16)},
		{"16. März 2023", doy.FromYMD(2023, doy.March, 16)},
		{"March 16th 2023", doy.FromYMD(2023, doy.March, 16)},
	}
	for _, tt := range tests {
		got := resolve(t, reference, From, tt.text)
		want := doy.Moment(tt.want)
		if !got.Equal(want) {
			t.Errorf("resolve(From, %q) = %v, want %v", tt.text, got, want)
		}
	}
}

func TestInterpret_Weeks(t *testing.T) {
	reference := doy.FromYMD(2023, doy.March, 17)
	tests := []struct {
		text       string
		start, end doy.Doy
	}{
		{"2023-W13", doy.FromYMD(2023, doy.March, 27), doy.FromYMD(2023, doy.April, 3)},
		{"Woche 2020-52", doy.FromYMD(2020, doy.December, 21), doy.FromYMD(2020, doy.December, 28)},
		{"KW 20/52", doy.FromYMD(2020, doy.December, 21), doy.FromYMD(2020, doy.December, 28)},
	}
	for _, tt := range tests {
		got := resolve(t, reference, From, tt.text)
		want := doy.Interval(tt.start, tt.end)
		if !got.Equal(want) {
			t.Errorf("resolve(From, %q) = %v, want %v", tt.text, got, want)
		}
	}
}

func TestInterpret_RelativeDays(t *testing.T) {
	reference := doy.FromYMD(2023, doy.March, 17)
	tests := []struct {
		text      string
		direction Direction
		want      doy.Doy
	}{
		{"last monday", To, doy.FromYMD(2023, doy.March, 13)},
		{"tuesday", From, doy.FromYMD(2023, doy.March, 14)},
		{"tuesday", To, doy.FromYMD(2023, doy.March, 21)},
		{"letzten donnerstag", From, doy.FromYMD(2023, doy.March, 16)},
		{"last friday", To, doy.FromYMD(2023, doy.March, 10)},
		{"nächsten Fr", To, doy.FromYMD(2023, doy.March, 24)},
		{"coming Thu", To, doy.FromYMD(2023, doy.March, 23)},
		{"übernächsten Donnerstag", To, doy.FromYMD(2023, doy.March, 30)},
		{"nächster Mo", To, doy.FromYMD(2023, doy.March, 20)},
		{"vorletzter mo", To, doy.FromYMD(2023, doy.March, 6)},
	}
	for _, tt := range tests {
		got := resolve(t, reference, tt.direction, tt.text)
		want := doy.Moment(tt.want)
		if !got.Equal(want) {
			t.Errorf("resolve(%v, %q) = %v, want %v", tt.direction, tt.text, got, want)
		}
	}
}

func TestInterpret_Adverbs(t *testing.T) {
	reference := doy.FromYMD(2023, doy.March, 1)
	tests := []struct {
		text string
		want doy.Doy
	}{
		{"heute", reference},
		{"yesterday", doy.FromYMD(2023, doy.February, 28)},
		{"morgen", doy.FromYMD(2023, doy.March, 2)},
	}
	for _, tt := range tests {
		got := resolve(t, reference, To, tt.text)
		want := doy.Moment(tt.want)
		if !got.Equal(want) {
			t.Errorf("resolve(To, %q) = %v, want %v", tt.text, got, want)
		}
	}
}

func TestInterpret_TimeUnits(t *testing.T) {
	reference := doy.FromYMD(2023, doy.March, 17)
	tests := []struct {
		text string
		want doy.Doy
	}{
		{"+5 Tage", doy.FromYMD(2023, doy.March, 22)},
		{"-1 year", doy.FromYMD(2022, doy.March, 17)},
		{"-13 month", doy.FromYMD(2022, doy.February, 17)},
	}
	for _, tt := range tests {
		got := resolve(t, reference, From, tt.text)
		want := doy.Moment(tt.want)
		if !got.Equal(want) {
			t.Errorf("resolve(From, %q) = %v, want %v", tt.text, got, want)
		}
	}
}

func TestInterpret_Months(t *testing.T) {
	reference := doy.FromYMD(2023, doy.March, 17)
	tests := []struct {
		text      string
		direction Direction
		want      doy.Doy
	}{
		{"last january", From, doy.FromYMD(2023, doy.January, 1)},
		{"next january", From, doy.FromYMD(2024, doy.January, 1)},
		{"next january", To, doy.FromYMD(2024, doy.February, 1)},
	}
	for _, tt := range tests {
		got := resolve(t, reference, tt.direction, tt.text)
		want := doy.Moment(tt.want)
		if !got.Equal(want) {
			t.Errorf("resolve(%v, %q) = %v, want %v", tt.direction, tt.text, got, want)
		}
	}
}

func TestRelMonth(t *testing.T) {
	reference := doy.FromYMD(2023, doy.March, 17)
	tests := []struct {
		direction Direction
		future    bool
		target    doy.Month
		want      doy.Doy
	}{
		{From, false, doy.January, doy.FromYMD(2023, doy.January, 1)},
		{To, true, doy.August, doy.FromYMD(2023, doy.September, 1)},
		{From, false, doy.August, doy.FromYMD(2022, doy.August, 1)},
		{To, false, doy.August, doy.FromYMD(2022, doy.September, 1)},
	}
	for _, tt := range tests {
		got := relMonth(reference, tt.direction, tt.future, tt.target)
		if !got.Equal(tt.want) {
			t.Errorf("relMonth(%v, future=%v, %v) = %v, want %v", tt.direction, tt.future, tt.target, got, tt.want)
		}
	}
}

func TestCorrectYYYY(t *testing.T) {
	tests := []struct {
		yy, reference, want int
	}{
		{2023, 2023, 2023},
		{23, 2023, 2023},
		{23, 1995, 2023},
		{89, 2023, 1989},
		{89, 2043, 2089},
	}
	for _, tt := range tests {
		if got := correctYYYY(tt.yy, tt.reference); got != tt.want {
			t.Errorf("correctYYYY(%d, %d) = %d, want %d", tt.yy, tt.reference, got, tt.want)
		}
	}
}

func TestInterpret_NothingFound(t *testing.T) {
	root := grammar.Node{}
	if _, err := Interpret(root, doy.Today(), From); err == nil {
		t.Error("expected error on an empty parse tree")
	}
}
