package llmparser

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// rawResult is the model's reply before normalisation.
type rawResult struct {
	Commands       []rawCommand `json:"commands"`
	Interpretation string       `json:"interpretation"`
}

type rawCommand struct {
	Action     looseString `json:"action"`
	Target     looseString `json:"target"`
	TaskID     looseString `json:"taskId"`
	TaskTitle  looseString `json:"taskTitle"`
	Filters    rawFields   `json:"filters"`
	Updates    rawFields   `json:"updates"`
	Confidence looseFloat  `json:"confidence"`
}

type rawFields struct {
	Status   looseString `json:"status"`
	Priority looseString `json:"priority"`
	DueDate  looseString `json:"dueDate"`
}

// looseString accepts a JSON string, number or null. The literal strings
// "null" and "none" read as empty.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		v = strings.TrimSpace(v)
		switch strings.ToLower(v) {
		case "null", "none", "nil", "undefined":
			v = ""
		}
		*s = looseString(v)
		return nil
	}
	*s = looseString(strings.Trim(string(data), `"`))
	return nil
}

// looseFloat accepts a number or a numeric string and records whether a
// value was present.
type looseFloat struct {
	Value float64
	Set   bool
}

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = looseFloat{}
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*f = looseFloat{}
		return nil
	}
	*f = looseFloat{Value: v, Set: true}
	return nil
}
