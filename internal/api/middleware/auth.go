package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/auth"
)

const (
	authorizationHeader = "Authorization"
	claimsCtx           = "authClaims" // Key to store session claims in context
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. The
// verified claims are stored in the request context for downstream handlers
// and the access control middleware.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		claims, err := auth.ParseToken(jwtSecret, headerParts[1])
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(claimsCtx, claims)
		c.Next()
	}
}

// RequireAccess creates a middleware that consults the policy table for the
// caller's role. It must run after JWTAuthMiddleware.
func RequireAccess(resource auth.Resource, action auth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !auth.Allowed(claims.Role, resource, action) {
			log.Printf("Access middleware: role %s denied %s on %s", claims.Role, action, resource)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetClaimsFromContext returns the verified session claims stored by
// JWTAuthMiddleware.
func GetClaimsFromContext(c *gin.Context) (*auth.Claims, error) {
	claimsAny, exists := c.Get(claimsCtx)
	if !exists {
		return nil, errors.New("session claims not found in context")
	}

	claims, ok := claimsAny.(*auth.Claims)
	if !ok {
		return nil, errors.New("session claims in context are of invalid type")
	}

	return claims, nil
}
