package resolver

import "regexp"

// Method names the resolution tier that produced a Match.
type Method string

const (
	MethodID        Method = "id"
	MethodOrdinal   Method = "ordinal"
	MethodExact     Method = "exact"
	MethodSubstring Method = "substring"
	MethodFuzzy     Method = "fuzzy"
)

const (
	// FuzzyThreshold is the minimum keyword overlap, relative to the shorter word set.
	FuzzyThreshold = 0.6

	// MinKeywordLength drops short words from keyword overlap.
	MinKeywordLength = 3
)

var (
	explicitIDRe     = regexp.MustCompile(`^(?:the\s+)?(?:task|item|number)(?:\s*[_#]\s*|\s+(?:number\s+)?)(\d+)$`)
	bareNumberRe     = regexp.MustCompile(`^#?(\d+)$`)
	ordinalRe        = regexp.MustCompile(`^(?:the\s+|my\s+)?(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|last|1st|2nd|3rd|4th|5th|6th|7th|8th|9th|10th)(?:\s+(?:one|task|item|todo))?$`)
	referenceNoiseRe = regexp.MustCompile(`\b(?:the|my|task|tasks|item|todo)\b`)
)

var ordinals = map[string]int{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
	"sixth": 6, "6th": 6,
	"seventh": 7, "7th": 7,
	"eighth": 8, "8th": 8,
	"ninth": 9, "9th": 9,
	"tenth": 10, "10th": 10,
}

// stopwords are ignored by keyword overlap.
var stopwords = map[string]struct{}{
	"update": {}, "mark": {}, "set": {}, "task": {}, "tasks": {}, "the": {},
	"change": {}, "make": {}, "delete": {}, "remove": {}, "cancel": {},
	"and": {}, "for": {}, "with": {}, "from": {}, "this": {}, "that": {},
	"priority": {}, "status": {}, "item": {}, "todo": {}, "please": {},
	"done": {}, "completed": {}, "complete": {}, "pending": {},
}
