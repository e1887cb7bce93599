package a2a

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the agent's endpoints behind recovery, request logging
// and a permissive CORS policy.
func NewRouter(h *A2AHandler, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLoggingMiddleware(logger),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
				http.MethodDelete, http.MethodHead, http.MethodOptions,
			},
			AllowHeaders:     []string{"*"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	)

	// Endpoints
	router.GET(AgentCardPath, h.ServeAgentCard)
	router.POST(JSONRPCPath, h.HandleJSONRPC)
	router.GET(HealthPath, h.HandleHealth)

	return router
}
