package llmparser

const (
	// MaxPromptTasks caps how many existing tasks are shown to the model.
	MaxPromptTasks = 10

	// DefaultConfidence applies when the model omits a confidence.
	DefaultConfidence = 0.5

	DefaultTemperature = 0.1
	DefaultTopP        = 0.9
	DefaultMaxTokens   = 500

	dateLayout = "2006-01-02"

	LogPrefixParse = "internal.command.llmparser.Parse"
)

const systemInstruction = "You turn spoken requests into task manager commands. Reply with one JSON object and nothing else."
