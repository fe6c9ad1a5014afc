package usecase

const (
	logPrefixParse   = "internal.voice.usecase.Parse"
	logPrefixProcess = "internal.voice.usecase.Process"

	defaultLogLimit = 50
	maxLogLimit     = 500
)
