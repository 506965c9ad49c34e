package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"squadrate/src/app/http/response"
	"squadrate/src/core/ports"
)

const (
	// PlayerNameHeader and PlayerPasswordHeader carry the caller's
	// credentials on every authenticated request. The API is stateless:
	// there are no sessions or tokens.
	PlayerNameHeader     = "X-Player-Name"
	PlayerPasswordHeader = "X-Player-Password"

	// PlayerNameKey is the gin context key holding the authenticated name.
	PlayerNameKey = "player_name"
)

// PlayerAuth enforces that the request carries valid roster credentials.
// On success it stores the player's name in the context.
func PlayerAuth(repo ports.RatingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, repo) {
			return
		}
		c.Next()
	}
}

// AdminAuth layers the admin check on top of player authentication: the
// authenticated name must match the configured admin name.
func AdminAuth(repo ports.RatingRepository, adminName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, repo) {
			return
		}
		if GetPlayerName(c) != adminName {
			response.Forbidden(c, "admin access required", GetRequestID(c))
			c.Abort()
			return
		}
		c.Next()
	}
}

// authenticate verifies the credential headers against the roster and stores
// the player name in the context. It aborts the request on failure.
func authenticate(c *gin.Context, repo ports.RatingRepository) bool {
	requestID := GetRequestID(c)

	name := c.GetHeader(PlayerNameHeader)
	password := c.GetHeader(PlayerPasswordHeader)
	if name == "" || password == "" {
		response.Unauthorized(c, "missing credentials", requestID)
		c.Abort()
		return false
	}

	player, err := repo.GetPlayer(c.Request.Context(), name)
	if err != nil || subtle.ConstantTimeCompare([]byte(player.Password), []byte(password)) != 1 {
		response.Unauthorized(c, "invalid credentials", requestID)
		c.Abort()
		return false
	}

	c.Set(PlayerNameKey, player.Name)
	return true
}

// GetPlayerName retrieves the authenticated player name from the context.
// Returns empty string if the request did not pass PlayerAuth.
func GetPlayerName(c *gin.Context) string {
	if v, exists := c.Get(PlayerNameKey); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
