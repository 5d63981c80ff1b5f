package response

import "github.com/gin-gonic/gin"

// Response is the standard API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest sends a 400 bad request response.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized sends a 401 unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// NotFound sends a 404 not found response.
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// Conflict sends a 409 conflict response.
func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

// InternalError sends a 500 internal server error response.
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}
