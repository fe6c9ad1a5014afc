package datemath

import "time"

// Kind tells which family of expression produced a Result.
type Kind string

const (
	KindSpecific Kind = "specific"
	KindRelative Kind = "relative"
)

// Result holds the outcome of extracting a date expression from free text.
type Result struct {
	Time     time.Time
	Phrase   string // the matched date expression, lower-cased
	Kind     Kind
	HasClock bool // a time of day was given; otherwise Time is midnight
}
