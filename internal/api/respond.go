package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avalder/pathwise/internal/errs"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string    `json:"error"`
	Code  errs.Code `json:"code,omitempty"`
}

// writeError maps the engine's error taxonomy onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case errs.CodeNotFound:
		status = http.StatusNotFound
	case errs.CodeInvalidArgument:
		status = http.StatusBadRequest
	case errs.CodeAlreadyExists, errs.CodeConflict:
		status = http.StatusConflict
	case errs.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, errorBody{Error: err.Error(), Code: code})
}

// badRequest writes a 400 for malformed input before it reaches the
// engine.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: msg, Code: errs.CodeInvalidArgument})
}
