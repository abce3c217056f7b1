package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/api/response"
)

const (
	// APIKeyEnv names the environment variable holding the admin API key.
	APIKeyEnv = "INTERNAL_API_KEY"

	apiKeyHeader     = "X-API-Key"
	timeTokenHeader  = "X-Time-Token"
	timeTokenTTL     = 5 * time.Minute
	timeTokenMessage = "benchmark-admin"
)

// APIKeyMiddleware guards admin routes. A request must carry the key from
// INTERNAL_API_KEY in X-API-Key and a fresh token from GenerateTimeToken in
// X-Time-Token. The key is read per request so rotating it needs no restart.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := os.Getenv(APIKeyEnv)
		if apiKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "Internal server error", "Authentication not loaded")
			return
		}

		provided := r.Header.Get(apiKeyHeader)
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Invalid API key")
			return
		}

		token := r.Header.Get(timeTokenHeader)
		if token == "" {
			response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Missing Time token")
			return
		}
		if !verifyTimeToken(token, apiKey) {
			response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GenerateTimeToken returns a Fernet token signed with a key derived from
// apiKey. APIKeyMiddleware accepts it for five minutes.
func GenerateTimeToken(apiKey string) string {
	tok, err := fernet.EncryptAndSign([]byte(timeTokenMessage), timeTokenKey(apiKey))
	if err != nil {
		return ""
	}
	return string(tok)
}

func verifyTimeToken(token, apiKey string) bool {
	msg := fernet.VerifyAndDecrypt([]byte(token), timeTokenTTL, []*fernet.Key{timeTokenKey(apiKey)})
	return string(msg) == timeTokenMessage
}

func timeTokenKey(apiKey string) *fernet.Key {
	k := fernet.Key(sha256.Sum256([]byte(apiKey)))
	return &k
}
