package utils

import "github.com/gin-gonic/gin"

// Application-level error codes carried in the response envelope. The HTTP
// status says how to retry; the code says what went wrong.
const (
	CodeBadRequest  = 40000
	CodeValidation  = 40001
	CodeNotFound    = 40400
	CodeConflict    = 40900
	CodeRateLimited = 42900
	CodeInternal    = 50000
	CodeStorageDown = 50300
)

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, 200, 0, "success", data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}
