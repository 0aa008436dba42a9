package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
	userCtxKey          = "userId"
)

// userIdMiddleware authenticates the Bearer token and stores the user id in
// the request context for downstream handlers.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	token, errMsg := bearerToken(c.GetHeader(authorizationHeader))
	if errMsg != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsg})
		return
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userCtxKey, userId)
	c.Next()
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value, returning a client-facing message when the header is unusable.
func bearerToken(header string) (token, errMsg string) {
	if header == "" {
		return "", "missing Authorization header"
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerScheme {
		return "", "invalid Authorization header format"
	}
	return parts[1], ""
}
