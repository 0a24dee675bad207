package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status   bool              `json:"status"`
	Message  string            `json:"message"`
	Data     interface{}       `json:"data,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondRedirect answers with a body the client can render and tells it where to go next.
func RespondRedirect(c *gin.Context, code int, message, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(code, JSONResponse{
		Status:   code >= 200 && code < 300,
		Message:  message,
		Data:     data,
		Redirect: location,
	})
}

func RespondValidation(c *gin.Context, code int, message string, errs map[string]string) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: message,
		Errors:  errs,
	})
}
