package a2a

import (
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/BerylCAtieno/a2ui-agent/internal/a2ui"
)

var nullID = jsontext.Value("null")

// encode builds the UI for a title; tests swap it to exercise the guard.
var encode = a2ui.Encode

// Dispatch handles one JSON-RPC request body and returns the HTTP status
// together with the response to send. It keeps no state between calls.
func Dispatch(body []byte) (int, JSONRPCResponse) {
	var raw jsontext.Value
	if err := json.Unmarshal(body, &raw, lenient); err != nil {
		return http.StatusBadRequest, errorResponse(nullID, CodeParseError, "Parse error: invalid JSON")
	}

	req, ok := members(raw)
	if !ok {
		return http.StatusBadRequest, errorResponse(nullID, CodeInvalidRequest, "Invalid Request: body must be a JSON object")
	}

	id := nullID
	if v, ok := req["id"]; ok {
		id = v
	}

	if version, _ := stringMember(req, "jsonrpc"); version != JSONRPCVersion {
		return http.StatusBadRequest, errorResponse(id, CodeInvalidRequest, "Invalid Request: jsonrpc must be '2.0'")
	}

	switch method, _ := stringMember(req, "method"); method {
	case MethodMessageSend:
		return handleMessageSend(id, req["params"])
	default:
		return http.StatusNotFound, errorResponse(id, CodeMethodNotFound, "Method not found: "+describe(req["method"]))
	}
}

func handleMessageSend(id, params jsontext.Value) (int, JSONRPCResponse) {
	intent := Extract(DecodeParts(params))
	msgs := encode(intent.Title())
	if err := a2ui.Validate(msgs); err != nil {
		return http.StatusInternalServerError, errorResponse(id, CodeInternalError, "Internal error: "+err.Error())
	}
	task := BuildTask(msgs)

	return http.StatusOK, JSONRPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Result:  &task,
	}
}

func errorResponse(id jsontext.Value, code int, message string) JSONRPCResponse {
	return JSONRPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
		},
	}
}

// describe renders a method member for error messages: strings as-is,
// anything else as its JSON text.
func describe(v jsontext.Value) string {
	if len(v) == 0 {
		return "null"
	}
	if v.Kind() == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	return string(v)
}
