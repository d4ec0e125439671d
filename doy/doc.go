// Package doy implements the calendar kernel timewarp builds on: a
// proleptic-Gregorian day represented as (year, day-of-year), weekday and
// month enumerations with wrap-around arithmetic, and the Tempus value type
// (a single day or a half-open day range) that the interpreter produces.
//
// Every operation here is a pure function of its arguments. There is no
// global state, and the only operation that touches the wall clock is
// Today.
package doy
