package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mission77/core/internal/pkg/response"
)

// gin sets this context key when the edit switch is present; handlers and
// tests can read it without re-parsing the query.
const EditModeContextKey = "m77.editmode"

// EditMode gates mutation routes behind a capability query parameter. The
// parameter's mere presence enables editing; its value is ignored. Without it
// the request is rejected before any handler or store call runs.
func EditMode(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, present := c.GetQuery(param); !present {
			response.Forbidden(c)
			return
		}
		c.Set(EditModeContextKey, true)
		c.Next()
	}
}
