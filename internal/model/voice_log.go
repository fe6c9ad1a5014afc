package model

import "time"

// VoiceLog records one processed voice command.
type VoiceLog struct {
	ID                int64
	RawCommand        string
	InterpretedIntent string
	ActionTriggered   string
	ParserUsed        string
	Success           bool
	CreatedAt         time.Time
}
