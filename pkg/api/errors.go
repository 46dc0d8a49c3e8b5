package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewcast/crewcast/pkg/services"
)

// errorBody is the uniform error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpStatus maps public error codes to HTTP status codes. Claim races map
// to 412 so clients can distinguish "retry after re-reading state" from the
// 409 of an outright illegal transition.
func httpStatus(code string) int {
	switch code {
	case services.CodeInvalidInput:
		return http.StatusBadRequest
	case services.CodeNotFound:
		return http.StatusNotFound
	case services.CodeInvalidState:
		return http.StatusConflict
	case services.CodePreconditionFailed:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with its mapped status. Internal errors are logged
// and masked; everything else surfaces its message verbatim.
func writeError(c *gin.Context, err error) {
	code := services.Code(err)
	msg := err.Error()
	if code == services.CodeInternal {
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
		msg = "internal error"
	}
	c.JSON(httpStatus(code), gin.H{"error": errorBody{Code: code, Message: msg}})
}
