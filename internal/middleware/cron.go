package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"order-photos-backend/internal/models"
)

// CronSecret admits scheduler calls carrying the shared secret in any of
// the headers schedulers commonly use, or as ?secret=.
func CronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.PurgeErrorResponse{
				Error:  "missing_env",
				Detail: "CRON_SECRET is not set",
			})
			return
		}

		if !secretMatches(presentedSecrets(c), secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.PurgeErrorResponse{Error: "unauthorized"})
			return
		}
		c.Next()
	}
}

func presentedSecrets(c *gin.Context) []string {
	var out []string
	for _, v := range []string{
		c.GetHeader("X-Cron-Secret"),
		c.GetHeader("X-Vercel-Cron-Secret"),
		c.Query("secret"),
	} {
		if v != "" {
			out = append(out, v)
		}
	}
	if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
		out = append(out, token)
	}
	return out
}

func secretMatches(candidates []string, secret string) bool {
	for _, candidate := range candidates {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(secret)) == 1 {
			return true
		}
	}
	return false
}
