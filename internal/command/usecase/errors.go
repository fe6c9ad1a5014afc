package usecase

import "errors"

var errNoCommands = errors.New("llm engine returned no commands")
