package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"voice-task-management/internal/command/lexicon"
	"voice-task-management/internal/model"
)

// Match is a resolved task reference.
type Match struct {
	Task   model.Task
	Method Method
}

// Precise reports whether the reference named the task unambiguously
// (by position or by its exact title).
func (m Match) Precise() bool {
	return m.Method == MethodID || m.Method == MethodOrdinal || m.Method == MethodExact
}

// Resolve maps a spoken fragment to a task. Tiers run in order and the first
// hit wins: explicit id or number, ordinal word, exact title, substring,
// keyword overlap. A positional reference never falls through to the title
// tiers, so an out of range "task 5" is unresolved.
func Resolve(fragment string, tasks []model.Task) (Match, bool) {
	if len(tasks) == 0 {
		return Match{}, false
	}
	if m, ok, positional := resolvePosition(fragment, tasks); positional {
		return m, ok
	}
	return resolveTitle(fragment, tasks)
}

// FindTaskByName runs the full resolution ladder.
func FindTaskByName(fragment string, tasks []model.Task) (model.Task, bool) {
	m, ok := Resolve(fragment, tasks)
	return m.Task, ok
}

// FindTaskByOrdinalOrNumber only accepts positional references such as
// "task 2", "2", "second task" or "2nd".
func FindTaskByOrdinalOrNumber(fragment string, tasks []model.Task) (model.Task, bool) {
	m, ok, _ := resolvePosition(fragment, tasks)
	return m.Task, ok
}

// resolvePosition reports whether fragment is a positional reference at all
// and, if so, whether it points inside tasks.
func resolvePosition(fragment string, tasks []model.Task) (match Match, ok, positional bool) {
	f := normalize(fragment)

	for _, re := range []*regexp.Regexp{explicitIDRe, bareNumberRe} {
		if m := re.FindStringSubmatch(f); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil && n >= 1 && n <= len(tasks) {
				return Match{Task: tasks[n-1], Method: MethodID}, true, true
			}
			return Match{}, false, true
		}
	}

	if m := ordinalRe.FindStringSubmatch(f); m != nil {
		n := ordinals[m[1]]
		if m[1] == "last" {
			n = len(tasks)
		}
		if n >= 1 && n <= len(tasks) {
			return Match{Task: tasks[n-1], Method: MethodOrdinal}, true, true
		}
		return Match{}, false, true
	}
	return Match{}, false, false
}

func resolveTitle(fragment string, tasks []model.Task) (Match, bool) {
	search := SearchText(fragment)
	if search == "" {
		return Match{}, false
	}

	for _, t := range tasks {
		if strings.EqualFold(strings.TrimSpace(t.Title), search) {
			return Match{Task: t, Method: MethodExact}, true
		}
	}

	for _, t := range tasks {
		title := strings.ToLower(strings.TrimSpace(t.Title))
		if title == "" {
			continue
		}
		if strings.Contains(title, search) || strings.Contains(search, title) {
			return Match{Task: t, Method: MethodSubstring}, true
		}
	}

	searchWords := keywords(search)
	for _, t := range tasks {
		if overlap(searchWords, keywords(strings.ToLower(t.Title))) >= FuzzyThreshold {
			return Match{Task: t, Method: MethodFuzzy}, true
		}
	}
	return Match{}, false
}

// SearchText is the cleaned form of a reference used for title matching.
func SearchText(fragment string) string {
	s := lexicon.CleanTaskTitle(fragment)
	s = referenceNoiseRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, " .,!?")
	return strings.Join(strings.Fields(s), " ")
}

func keywords(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127)
	}) {
		if len([]rune(w)) < MinKeywordLength {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

// overlap is |a ∩ b| / min(|a|, |b|); 0 when either side is empty.
func overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shorter, longer := a, b
	if len(b) < len(a) {
		shorter, longer = b, a
	}
	common := 0
	for w := range shorter {
		if _, ok := longer[w]; ok {
			common++
		}
	}
	return float64(common) / float64(len(shorter))
}
