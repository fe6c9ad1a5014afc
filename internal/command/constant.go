package command

const (
	// MinAutoExecuteConfidence is the floor below which commands are surfaced
	// to the user instead of being executed.
	MinAutoExecuteConfidence = 0.5

	// UnresolvedConfidenceCeiling caps single-target commands whose task
	// reference did not resolve.
	UnresolvedConfidenceCeiling = 0.6

	// InterpretationSeparator joins per-command descriptions.
	InterpretationSeparator = ", then "

	InterpretationNoSpeech = "No speech detected"
)
