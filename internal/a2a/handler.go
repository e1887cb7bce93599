package a2a

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-json-experiment/json"

	"github.com/BerylCAtieno/a2ui-agent/internal/stamp"
)

const (
	JSONRPCPath   = "/a2a/jsonrpc"
	AgentCardPath = "/.well-known/agent-card.json"
	HealthPath    = "/healthz"
)

const contentTypeJSON = "application/json; charset=utf-8"

// MaxBodyBytes caps the size of a JSON-RPC request body.
const MaxBodyBytes = 1 << 20

var internalErrorBody = []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"Internal error"}}`)

type A2AHandler struct {
	publicBaseURL string
	card          AgentCard
	logger        *slog.Logger
}

// HealthStatus is the /healthz payload.
type HealthStatus struct {
	OK            bool   `json:"ok"`
	Time          string `json:"time"`
	PublicBaseURL string `json:"publicBaseUrl"`
}

// NewA2AHandler serves the agent as reachable at publicBaseURL.
func NewA2AHandler(publicBaseURL string, logger *slog.Logger) *A2AHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &A2AHandler{
		publicBaseURL: publicBaseURL,
		card:          NewAgentCard(publicBaseURL + JSONRPCPath),
		logger:        logger,
	}
}

// RequestLoggingMiddleware logs every request once it has been served.
func RequestLoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("response_bytes", c.Writer.Size()),
		)
	}
}

// HandleJSONRPC serves POST /a2a/jsonrpc.
func (h *A2AHandler) HandleJSONRPC(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if maxErr := (*http.MaxBytesError)(nil); errors.As(err, &maxErr) {
		h.logger.Warn("request body too large", "limit", maxErr.Limit)
		h.sendJSON(c, http.StatusRequestEntityTooLarge, errorResponse(nullID, CodeInvalidRequest, "Invalid Request: body too large"))
		return
	}
	if err != nil {
		h.logger.Warn("failed to read request body", "error", err)
		h.sendJSON(c, http.StatusBadRequest, errorResponse(nullID, CodeParseError, "Parse error: invalid JSON"))
		return
	}

	status, resp := Dispatch(body)
	if resp.Error != nil {
		h.logger.Debug("rpc error", "code", resp.Error.Code, "message", resp.Error.Message)
	}
	h.sendJSON(c, status, resp)
}

// ServeAgentCard serves the agent card.
func (h *A2AHandler) ServeAgentCard(c *gin.Context) {
	h.sendJSON(c, http.StatusOK, h.card)
}

// HandleHealth serves GET /healthz.
func (h *A2AHandler) HandleHealth(c *gin.Context) {
	h.sendJSON(c, http.StatusOK, HealthStatus{
		OK:            true,
		Time:          stamp.Now(),
		PublicBaseURL: h.publicBaseURL,
	})
}

func (h *A2AHandler) sendJSON(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", "error", err)
		c.Data(http.StatusInternalServerError, contentTypeJSON, internalErrorBody)
		return
	}
	c.Data(status, contentTypeJSON, body)
}
