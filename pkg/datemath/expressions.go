package datemath

import (
	"regexp"
	"time"
)

const (
	monthAlternation   = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
	weekdayAlternation = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
)

var (
	dayMonthRe    = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlternation + `)\b`)
	monthDayRe    = regexp.MustCompile(`\b(` + monthAlternation + `)\s+(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)?\b`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
	inDurationRe  = regexp.MustCompile(`\bin\s+(\d+|a|an|one|two|three|four|five|six|seven|eight|nine|ten)\s+(days?|weeks?|months?)\b`)
	nextWeekdayRe = regexp.MustCompile(`\bnext\s+(` + weekdayAlternation + `)\b`)
	onWeekdayRe   = regexp.MustCompile(`\b(?:(?:on|this|by|until|till)\s+)?(` + weekdayAlternation + `)\b`)
	clockRe       = regexp.MustCompile(`\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	timeOfDayRe   = regexp.MustCompile(`\b(?:in\s+the\s+|this\s+)?(morning|afternoon|evening|night)\b`)
)

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var wordNumbers = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// relativeKeyword is a fixed phrase with a day offset. The table is ordered
// longest phrase first so "day after tomorrow" is not read as "tomorrow".
type relativeKeyword struct {
	phrase string
	days   int
	re     *regexp.Regexp
}

var relativeKeywords = compileKeywords([]relativeKeyword{
	{phrase: "day after tomorrow", days: 2},
	{phrase: "day before yesterday", days: -2},
	{phrase: "tomorrow", days: 1},
	{phrase: "yesterday", days: -1},
	{phrase: "today", days: 0},
	{phrase: "tonight", days: 0},
	{phrase: "next week", days: 7},
})

// timeOfDayHours maps spoken parts of the day to a clock hour.
var timeOfDayHours = map[string]int{
	"morning":   9,
	"afternoon": 14,
	"evening":   18,
	"night":     20,
	"tonight":   20,
}

func compileKeywords(kws []relativeKeyword) []relativeKeyword {
	for i := range kws {
		kws[i].re = regexp.MustCompile(`\b` + kws[i].phrase + `\b`)
	}
	return kws
}

// allExpressions is every pattern StripExpressions removes.
func allExpressions() []*regexp.Regexp {
	res := []*regexp.Regexp{dayMonthRe, monthDayRe, numericDateRe, inDurationRe, nextWeekdayRe, onWeekdayRe, clockRe, timeOfDayRe}
	for _, kw := range relativeKeywords {
		res = append(res, kw.re)
	}
	return res
}
