package handler

import "github.com/gin-gonic/gin"

// The client reads failures from the "error" field; success bodies are
// the bare resource (no envelope).
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Context keys set by the auth middleware.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// UserID returns the authenticated user's id from the request context.
// It is only meaningful behind the auth middleware.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}

// UserEmail returns the authenticated user's email from the request
// context.
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}
