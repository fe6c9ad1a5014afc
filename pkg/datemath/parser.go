package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser finds date expressions in spoken text and resolves them to absolute
// times in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation wraps an already loaded location. nil means UTC.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Extract returns the first date expression found in text, resolved against
// baseTime. Specific calendar dates win over relative phrases.
func (p *Parser) Extract(text string, baseTime time.Time) (Result, bool) {
	text = strings.ToLower(text)
	baseTime = baseTime.In(p.location)

	res, ok := p.extractSpecific(text, baseTime)
	if !ok {
		res, ok = p.extractRelative(text, baseTime)
	}
	if !ok {
		return Result{}, false
	}

	if hour, minute, found := clockTime(text, res.Phrase); found {
		res.Time = time.Date(res.Time.Year(), res.Time.Month(), res.Time.Day(), hour, minute, 0, 0, p.location)
		res.HasClock = true
	}
	return res, true
}

// extractSpecific handles "25th December", "December 25", "Dec 25" and "25/12".
// A date already before today rolls over to next year.
func (p *Parser) extractSpecific(text string, baseTime time.Time) (Result, bool) {
	if m := dayMonthRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		if t, ok := p.calendarDate(day, months[m[2]], baseTime); ok {
			return Result{Time: t, Phrase: m[0], Kind: KindSpecific}, true
		}
	}
	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[2])
		if t, ok := p.calendarDate(day, months[m[1]], baseTime); ok {
			return Result{Time: t, Phrase: m[0], Kind: KindSpecific}, true
		}
	}
	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			if t, ok := p.calendarDate(day, time.Month(month), baseTime); ok {
				return Result{Time: t, Phrase: m[0], Kind: KindSpecific}, true
			}
		}
	}
	return Result{}, false
}

func (p *Parser) calendarDate(day int, month time.Month, baseTime time.Time) (time.Time, bool) {
	today := p.StartOfDay(baseTime)
	for _, year := range []int{baseTime.Year(), baseTime.Year() + 1} {
		t, ok := validDate(year, month, day, p.location)
		if !ok {
			continue
		}
		if !t.Before(today) {
			return t, true
		}
	}
	return time.Time{}, false
}

// validDate rejects days that time.Date would normalise into the next month.
func validDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func (p *Parser) extractRelative(text string, baseTime time.Time) (Result, bool) {
	for _, kw := range relativeKeywords {
		if loc := kw.re.FindStringIndex(text); loc != nil {
			return Result{
				Time:   p.StartOfDay(baseTime.AddDate(0, 0, kw.days)),
				Phrase: text[loc[0]:loc[1]],
				Kind:   KindRelative,
			}, true
		}
	}

	if m := inDurationRe.FindStringSubmatch(text); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			amount = wordNumbers[m[1]]
		}
		var t time.Time
		switch {
		case strings.HasPrefix(m[2], "day"):
			t = baseTime.AddDate(0, 0, amount)
		case strings.HasPrefix(m[2], "week"):
			t = baseTime.AddDate(0, 0, amount*7)
		default:
			t = baseTime.AddDate(0, amount, 0)
		}
		return Result{Time: p.StartOfDay(t), Phrase: m[0], Kind: KindRelative}, true
	}

	for _, re := range []*regexp.Regexp{nextWeekdayRe, onWeekdayRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			return Result{Time: p.nextWeekday(weekdays[m[1]], baseTime), Phrase: m[0], Kind: KindRelative}, true
		}
	}
	return Result{}, false
}

// nextWeekday returns the next occurrence of target strictly after baseTime's day.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// clockTime reads "at 5pm" first, then a part of the day. "tonight" implies night.
func clockTime(text, phrase string) (hour, minute int, ok bool) {
	if m := clockRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, false
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
		return hour, minute, true
	}
	if m := timeOfDayRe.FindStringSubmatch(text); m != nil {
		return timeOfDayHours[m[1]], 0, true
	}
	if phrase == "tonight" {
		return timeOfDayHours["tonight"], 0, true
	}
	return 0, 0, false
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StripExpressions removes every recognised date and time expression from
// text and collapses the remaining whitespace.
func StripExpressions(text string) string {
	out := strings.ToLower(text)
	for _, re := range allExpressions() {
		out = re.ReplaceAllString(out, " ")
	}
	return strings.Join(strings.Fields(out), " ")
}
