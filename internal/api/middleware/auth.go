package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string // "jwt" or "apikey"
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the authentication result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := parts[1]

	switch authType {
	case "bearer":
		claims, err := validateJWT(credentials, cfg.JWTPublicKey)
		if err != nil {
			result.Error = err
			return result
		}
		if claims.Subject == "" {
			result.Error = errors.New("token has no subject")
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_JWT
		result.Claims = claims
		result.AuthSubject = claims.Subject

	case "apikey":
		if err := validateAPIKey(credentials, apiKeyMap); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_APIKEY

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
		return result
	}

	return result
}

// Auth returns a gin middleware for authentication
// It supports both JWT (Bearer token) and API Key authentication
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Authenticate(c.GetHeader("Authorization"), cfg)

		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			abortWithError(c, apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error()))
			return
		}

		c.Set(AUTH_TYPE_KEY, result.AuthType)
		if result.Claims != nil {
			c.Set(JWT_CLAIMS_KEY, result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(AUTH_SUBJECT_KEY, result.AuthSubject)
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
		)

		c.Next()
	}
}

// RequireAPIKey rejects requests that were not authenticated with an API key.
// Admin and event ingestion routes are operator-only.
func RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authType(c) == AUTH_TYPE_APIKEY {
			c.Next()
			return
		}

		abortWithError(c, apierrors.NewForbiddenError("Operator credentials required"))
	}
}

// RequirePartnerAccess lets API keys through and restricts JWT callers to
// the partner named by the route parameter
func RequirePartnerAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CanAccessPartner(c, c.Param(param)) {
			c.Next()
			return
		}

		abortWithError(c, apierrors.NewForbiddenError("Access to this partner is not allowed"))
	}
}

// CanAccessPartner reports whether the caller may read or act on partnerID.
// API keys reach every partner; JWT callers only their own subject.
func CanAccessPartner(c *gin.Context, partnerID string) bool {
	if IsOperator(c) {
		return true
	}
	subject := AuthSubject(c)
	return subject != "" && strings.EqualFold(subject, partnerID)
}

// IsOperator reports whether the caller authenticated with an API key
func IsOperator(c *gin.Context) bool {
	return authType(c) == AUTH_TYPE_APIKEY
}

// AuthSubject returns the JWT subject of the caller, empty for API keys
func AuthSubject(c *gin.Context) string {
	v, _ := c.Get(AUTH_SUBJECT_KEY)
	s, _ := v.(string)
	return s
}

func authType(c *gin.Context) string {
	v, ok := c.Get(AUTH_TYPE_KEY)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// validateJWT validates a JWT token with RSA signature and returns claims
func validateJWT(tokenString string, publicKeyPEM string) (*jwt.RegisteredClaims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	now := time.Now()
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return nil, errors.New("token has expired")
	}
	if claims.NotBefore != nil && claims.NotBefore.After(now) {
		return nil, errors.New("token not yet valid")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// PKIX first, then PKCS1
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

// validateAPIKey validates an API key
func validateAPIKey(apiKey string, validKeys map[string]bool) error {
	if len(validKeys) == 0 {
		return errors.New("no API keys configured")
	}

	if !validKeys[apiKey] {
		return errors.New("invalid API key")
	}

	return nil
}
