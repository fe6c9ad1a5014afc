package usecase

const (
	logPrefixParse = "internal.command.usecase.Parse"

	reasonLLMNotConfigured = "llm parser not configured"
)
