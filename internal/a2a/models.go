package a2a

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

const (
	JSONRPCVersion = "2.0"

	MethodMessageSend = "message/send"
)

// JSON-RPC error codes
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// JSON-RPC types
type JSONRPCRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      jsontext.Value `json:"id,omitzero"`
	Method  string         `json:"method"`
	Params  any            `json:"params,omitzero"`
}

// JSONRPCResponse carries exactly one of Result or Error. ID is always
// written, as null when the request had none.
type JSONRPCResponse struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      jsontext.Value `json:"id"`
	Result  *Task          `json:"result,omitzero"`
	Error   *JSONRPCError  `json:"error,omitzero"`
}

type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *JSONRPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Message types
type MessageParams struct {
	Message       Message              `json:"message"`
	Configuration MessageConfiguration `json:"configuration,omitzero"`
}

type Message struct {
	Kind      string `json:"kind"`
	Role      string `json:"role"`
	MessageID string `json:"messageId,omitzero"`
	Parts     []Part `json:"parts"`
}

// Part is a text part ({kind:"text", text}) or a data part
// ({kind:"data", mimeType, data}).
type Part struct {
	Kind     string  `json:"kind"`
	Text     *string `json:"text,omitzero"`
	MimeType string  `json:"mimeType,omitzero"`
	Data     any     `json:"data,omitzero"`
}

type MessageConfiguration struct {
	AcceptedOutputModes []string `json:"acceptedOutputModes,omitzero"`
	Blocking            bool     `json:"blocking,omitzero"`
}

// Task types
type Task struct {
	Kind      string           `json:"kind"`
	ID        string           `json:"id"`
	ContextID string           `json:"contextId"`
	Status    TaskStatus       `json:"status"`
	Artifacts []jsontext.Value `json:"artifacts"` // never produced; always empty
	History   []Message        `json:"history"`
}

type TaskStatus struct {
	State     string   `json:"state"`
	Timestamp string   `json:"timestamp"`
	Message   *Message `json:"message,omitzero"`
}

// Helper functions
func TextPart(text string) Part {
	return Part{
		Kind: PartKindText,
		Text: &text,
	}
}

func DataPart(mimeType string, data any) Part {
	return Part{
		Kind:     PartKindData,
		MimeType: mimeType,
		Data:     data,
	}
}

// Kinds
const (
	KindTask    = "task"
	KindMessage = "message"

	PartKindText = "text"
	PartKindData = "data"
)

// Task states
const (
	StateCompleted = "completed"
)

// Message roles
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)
