package openaicompat

import "time"

// Known backends that speak the OpenAI chat completions protocol.
const (
	BackendOpenAI   = "openai"
	BackendGroq     = "groq"
	BackendQwen     = "qwen"
	BackendDeepSeek = "deepseek"
)

// DefaultTimeout is the default HTTP client timeout
const DefaultTimeout = 30 * time.Second

type backendDefaults struct {
	baseURL string
	model   string
}

var defaults = map[string]backendDefaults{
	BackendOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
	BackendGroq:     {baseURL: "https://api.groq.com/openai/v1", model: "llama-3.1-8b-instant"},
	BackendQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	BackendDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
}

// Supported reports whether name is a known backend.
func Supported(name string) bool {
	_, ok := defaults[name]
	return ok
}
