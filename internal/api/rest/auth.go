package rest

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware возвращает middleware HTTP Basic аутентификации для
// админских маршрутов. Разные сбои различаются статусом: 401 без учетных
// данных (с challenge заголовком), 400 при некорректном заголовке,
// 403 при неверных учетных данных.
func AdminAuthMiddleware(user, pass string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.String(http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		const prefix = "Basic "
		if !strings.HasPrefix(header, prefix) {
			c.String(http.StatusBadRequest, "malformed authorization header")
			c.Abort()
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.String(http.StatusBadRequest, "malformed authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(string(decoded), ":", 2)
		if len(parts) != 2 {
			c.String(http.StatusBadRequest, "malformed authorization header")
			c.Abort()
			return
		}

		if parts[0] != user || parts[1] != pass {
			c.String(http.StatusForbidden, "invalid credentials")
			c.Abort()
			return
		}

		c.Next()
	}
}
