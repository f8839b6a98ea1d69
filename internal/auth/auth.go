package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
)

// Claims are the identity provider's access token claims we rely on.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 access tokens issued by the identity provider.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// IssueToken signs a token for userID. Used by tests and local tooling; production tokens
// come from the identity provider.
func (v *Verifier) IssueToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns its claims.
func (v *Verifier) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Middleware rejects requests without a valid bearer session token.
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "authorization header required")
			return
		}

		claims, err := v.Validate(token)
		if err != nil {
			utils.Warn("session token rejected", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			utils.AbortWithError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "invalid or expired token")
			return
		}

		SetUser(c, claims.Subject, claims.Email)
		c.Next()
	}
}

// CronSecretMiddleware guards scheduler endpoints with a shared bearer secret.
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok || secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			utils.Warn("scheduler secret rejected", map[string]any{"path": c.Request.URL.Path})
			utils.AbortWithError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "unauthorized")
			return
		}
		c.Next()
	}
}

// SetUser stores the authenticated identity on the request context
func SetUser(c *gin.Context, userID, email string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxEmail, email)
}

// GetUserID retrieves the authenticated user id from the context
func GetUserID(c *gin.Context) (string, bool) {
	id := c.GetString(ctxUserID)
	return id, id != ""
}

// GetEmail retrieves the authenticated user's email, if the token carried one
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
