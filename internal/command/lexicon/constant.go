package lexicon

import "regexp"

// Priority buckets, checked in this order: HIGH, LOW, MEDIUM.
var (
	highPriorityRe   = regexp.MustCompile(`\b(urgent|critical|important|asap|high)\b`)
	lowPriorityRe    = regexp.MustCompile(`\b(low|later|someday|whenever)\b`)
	mediumPriorityRe = regexp.MustCompile(`\b(medium|normal|regular)\b`)
)

// Filter priority grammar used by bulk commands.
var (
	filterHighRe   = regexp.MustCompile(`\b(high|urgent|important|critical)\b`)
	filterMediumRe = regexp.MustCompile(`\b(medium|normal)\b`)
	filterLowRe    = regexp.MustCompile(`\blow\b`)
)

// Status aliases. Negated phrases are checked before the completed bucket.
var (
	statusNegatedRe    = regexp.MustCompile(`\b(not\s+(?:yet\s+)?(?:done|finished|completed?|started)|incomplete|undone|unfinished)\b`)
	statusCompletedRe  = regexp.MustCompile(`\b(done|completed?|finished)\b`)
	statusInProgressRe = regexp.MustCompile(`\b(in[\s_-]?progress|working|started|doing|ongoing)\b`)
	statusPendingRe    = regexp.MustCompile(`\b(pending|to\s?do|todo|waiting|open)\b`)
)

// Title cleaning patterns.
var (
	priorityPhraseRe  = regexp.MustCompile(`\b(?:(?:with|as|at)\s+)?(?:a\s+)?(?:high|medium|low|top|normal)\s+priority\b`)
	priorityPrefixRe  = regexp.MustCompile(`\bpriority\s+(?:high|medium|low)\b`)
	priorityWordRe    = regexp.MustCompile(`\b(?:urgent(?:ly)?|critical|important|asap|priority)\b`)
	commandVerbRe     = regexp.MustCompile(`^(?:please\s+)?(?:can\s+you\s+)?(?:add|create|new|remind\s+me\s+to|remind\s+me|i\s+need\s+to)\s+(?:an?\s+)?(?:new\s+)?(?:task\s+)?(?:to\s+|called\s+|named\s+|for\s+)?`)
	trailingConnector = regexp.MustCompile(`\s+(?:on|by|at|for|due|in|the|to|and|with|a|an)$`)
	leadingConnector  = regexp.MustCompile(`^(?:to|the|a|an|for)\s+`)
)
