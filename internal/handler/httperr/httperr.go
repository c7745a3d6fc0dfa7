package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int      `json:"-"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// preserves original error for request logging
func AbortWithError(c *gin.Context, status int, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp.Status = status

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
