package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ishwor/authcookbook/version"
)

// Version returns a handler that reports build information. Like /health it
// is public under every strategy.
func Version() gin.HandlerFunc {
	info := version.Get()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	}
}
