package models

import "strings"

// ConverseRequest is a provider-neutral conversational model request: one
// user utterance, a system instruction and the declared tools.
type ConverseRequest struct {
	SystemInstruction string
	Utterance         string
	Tools             []ToolDecl
}

// ToolDecl declares a model-invokable operation: a name, a natural-language
// description and a flat schema of string arguments.
type ToolDecl struct {
	Name        string
	Description string
	Params      []ToolParam
}

// ToolParam describes one named string argument of a tool.
type ToolParam struct {
	Name        string
	Description string
	Required    bool
}

// ModelReply is the provider-neutral model response. Call is nil when the
// model answered with free text only.
type ModelReply struct {
	Text string
	Call *ToolCall
}

// ToolCall is a structured tool invocation emitted by the model. Argument
// values are carried as strings; non-string values the model may emit are
// dropped by the providers, leaving argument validation to the caller.
type ToolCall struct {
	Name string            `json:"name"`
	Args map[string]string `json:"args"`
}

// Arg returns the named argument with surrounding whitespace trimmed.
func (c *ToolCall) Arg(name string) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Args[name])
}
