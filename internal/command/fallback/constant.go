package fallback

import "regexp"

// Tier names a group of rules. Clauses are tried against tiers in TierOrder
// and the first tier with a matching rule wins.
type Tier string

const (
	TierCreate             Tier = "create"
	TierDeleteAll          Tier = "delete_all"
	TierDeleteFiltered     Tier = "delete_filtered"
	TierDeleteSingle       Tier = "delete_single"
	TierUpdateAllStatus    Tier = "update_all_status"
	TierUpdateSingleStatus Tier = "update_single_status"
	TierUpdatePriority     Tier = "update_priority"
	TierUpdateDueDate      Tier = "update_due_date"
	TierRead               Tier = "read"
)

// TierOrder is the precedence of rule tiers.
var TierOrder = []Tier{
	TierCreate,
	TierDeleteAll,
	TierDeleteFiltered,
	TierDeleteSingle,
	TierUpdateAllStatus,
	TierUpdateSingleStatus,
	TierUpdatePriority,
	TierUpdateDueDate,
	TierRead,
}

const (
	ConfidenceCreate    = 0.8
	ConfidenceDeleteAll = 1.0
	ConfidenceFiltered  = 0.9
	ConfidenceUpdateAll = 0.95
	ConfidenceRead      = 0.9

	ConfidenceInferDelete = 0.4
	ConfidenceInferUpdate = 0.3
	ConfidenceInferCreate = 0.4
)

// confidenceSet scores a single-target command by how its reference resolved.
type confidenceSet struct {
	precise    float64
	resolved   float64
	unresolved float64
}

var (
	singleConfidence  = confidenceSet{precise: 0.95, resolved: 0.85, unresolved: 0.6}
	dueDateConfidence = confidenceSet{precise: 0.9, resolved: 0.8, unresolved: 0.5}
)

const (
	statusGroup   = `(pending|to\s?do|todo|in[\s_-]?progress|working|started|complete|completed|done|finished|incomplete|not\s+done|not\s+finished)`
	priorityGroup = `(high|medium|low|urgent|important|critical|normal|top)`
	scopeAll      = `(?:all|every|everything)(?:\s+(?:of\s+)?(?:the\s+|my\s+)?(?:tasks?|todos?|items?))?`
	scopeFiltered = `(?:all|every)\s+(?:of\s+)?(?:the\s+|my\s+)?(.+?)(?:\s+(?:tasks?|todos?|items?|ones))?`
	updateVerb    = `(?:mark|set|change|move|update|make|put)`
)

var (
	clauseSplitRe = regexp.MustCompile(`\s+and\s+`)
	danglingAndRe = regexp.MustCompile(`^(?:and\s+)+|(?:\s+and)+$|^and$`)
	politeRe      = regexp.MustCompile(`^(?:(?:please|okay|ok|hey|so)\s+)*(?:(?:can|could|would|will)\s+you\s+)?(?:please\s+)?(?:go\s+ahead\s+and\s+)?`)
)

var (
	createRes = []*regexp.Regexp{
		regexp.MustCompile(`^(?:add|create)\s+(?:an?\s+)?(?:new\s+)?(?:task\s+)?(?:to\s+|called\s+|named\s+|for\s+)?(.+)$`),
		regexp.MustCompile(`^new\s+(?:task\s+)?(?:to\s+|called\s+|named\s+)?(.+)$`),
		regexp.MustCompile(`^remind\s+me\s+(?:to\s+)?(.+)$`),
		regexp.MustCompile(`^i\s+need\s+to\s+(.+)$`),
	}

	deleteAllRes = []*regexp.Regexp{
		regexp.MustCompile(`^(?:delete|remove|clear|erase|wipe)\s+(?:out\s+)?` + scopeAll + `$`),
		regexp.MustCompile(`^(?:clear|wipe|empty)\s+(?:out\s+)?(?:my\s+|the\s+)?(?:task\s+|todo\s+|to-do\s+)?list$`),
		regexp.MustCompile(`^(?:clear|wipe)\s+(?:my\s+|the\s+)?tasks$`),
	}

	deleteFilteredRes = []*regexp.Regexp{
		regexp.MustCompile(`^(?:delete|remove|clear|erase)\s+` + scopeFiltered + `$`),
		regexp.MustCompile(`^(?:delete|remove|clear)\s+(?:the\s+|my\s+)?(completed|done|finished|pending|in[\s-]progress)(?:\s+(?:tasks?|items?|ones))?$`),
	}

	deleteSingleRe = regexp.MustCompile(`^(?:delete|remove|cancel|erase|drop|discard)\s+(?:the\s+)?(?:task\s+(?:called\s+|named\s+)?)?(.+)$`)

	updateAllStatusRe      = regexp.MustCompile(`^` + updateVerb + `\s+` + scopeAll + `\s+(?:as\s+|to\s+)?` + statusGroup + `$`)
	completeAllRe          = regexp.MustCompile(`^(?:complete|finish)\s+` + scopeAll + `$`)
	updateFilteredStatusRe = regexp.MustCompile(`^` + updateVerb + `\s+` + scopeFiltered + `\s+(?:as\s+|to\s+)?` + statusGroup + `$`)

	// Single-target status rules. The trailing group carries an optional date.
	markStatusRe     = regexp.MustCompile(`^` + updateVerb + `\s+(?:the\s+)?(?:status\s+of\s+)?(.+?)\s+(?:as\s+|to\s+|into\s+)?(?:status\s+)?` + statusGroup + `\b(.*)$`)
	isStatusRe       = regexp.MustCompile(`^(.+?)\s+(?:is|are)\s+(?:now\s+)?` + statusGroup + `$`)
	completeSingleRe = regexp.MustCompile(`^(?:complete|finish)\s+(?:the\s+)?(.+)$`)
	finishedRe       = regexp.MustCompile(`^i\s+(?:have\s+|just\s+)?(?:finished|completed|did)\s+(?:the\s+)?(.+)$`)
	startSingleRe    = regexp.MustCompile(`^(?:start|begin)\s+(?:working\s+on\s+)?(?:the\s+)?(.+)$`)

	updateAllPriorityRe      = regexp.MustCompile(`^` + updateVerb + `\s+` + scopeAll + `\s+(?:as\s+|to\s+)?(?:an?\s+)?` + priorityGroup + `(?:\s+priority)?$`)
	updateFilteredPriorityRe = regexp.MustCompile(`^` + updateVerb + `\s+` + scopeFiltered + `\s+(?:as\s+|to\s+)?(?:an?\s+)?` + priorityGroup + `(?:\s+priority)?$`)
	markPriorityRe           = regexp.MustCompile(`^` + updateVerb + `\s+(?:the\s+)?(?:priority\s+(?:of|for)\s+)?(.+?)\s+(?:as\s+|to\s+)?(?:an?\s+)?` + priorityGroup + `(?:\s+priority)?\b(.*)$`)
	prioritizeRe             = regexp.MustCompile(`^(?:prioritize|prioritise)\s+(?:the\s+)?(.+)$`)
	isUrgentRe               = regexp.MustCompile(`^(.+?)\s+(?:is|are)\s+(?:very\s+|really\s+|super\s+)?(urgent|important|critical|high\s+priority|low\s+priority)$`)

	dueDateRes = []*regexp.Regexp{
		regexp.MustCompile(`^(?:set|change|move|reschedule|push|postpone|update|schedule)\s+(?:the\s+)?(?:(?:due\s+date|deadline)\s+(?:of|for)\s+)?(.+?)\s+(?:to|for|until|till|on|by)\s+(.+)$`),
		regexp.MustCompile(`^(.+?)\s+(?:is\s+)?due\s+(.+)$`),
	}

	readRe        = regexp.MustCompile(`^(?:show|list|read|display|view|tell|give|get|what(?:'s|s)?|which|how\s+many|do\s+i\s+have)\b(.*)$`)
	readSubjectRe = regexp.MustCompile(`\b(?:tasks?|todos?|to-dos?|list|pending|completed|done|finished|in[\s-]progress|everything|agenda)\b`)
)

// Inference keywords, checked when no rule matched.
var (
	inferDeleteRe = regexp.MustCompile(`\b(delete|remove|erase|cancel)\b`)
	inferUpdateRe = regexp.MustCompile(`\b(mark|set|change|update)\b`)
	inferCreateRe = regexp.MustCompile(`\b(add|create|new|remind)\b`)
)
