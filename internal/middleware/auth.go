package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"todoapi/internal/pkg/jwt"
	"todoapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Authorize gates protected routes on a bearer access token. The credential is
// looked up in the request body field "token", then the query parameter, then
// the Authorization header; whichever is found must be "Bearer <token>".
// On success the decoded identity is attached to the gin context.
func Authorize(codec *jwt.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := bodyToken(c)
		if credential == "" {
			credential = c.Query("token")
		}
		if credential == "" {
			credential = c.GetHeader("Authorization")
		}
		if credential == "" {
			response.AbortFailed(c, http.StatusUnauthorized, response.MsgMissingToken)
			return
		}

		parts := strings.SplitN(credential, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			response.AbortFailed(c, http.StatusUnauthorized, response.MsgMissingToken)
			return
		}

		claims, err := codec.VerifyAccess(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortFailed(c, http.StatusUnauthorized, response.MsgTokenExpired)
				return
			}
			response.AbortFailed(c, http.StatusUnauthorized, response.MsgUnauthorized)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)

		c.Next()
	}
}

// bodyToken peeks at a JSON body for a "token" field and restores the body so
// downstream handlers can still bind it.
func bodyToken(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return ""
	}
	if !strings.Contains(c.ContentType(), "application/json") {
		return ""
	}

	raw, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Token
}
