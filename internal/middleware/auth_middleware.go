package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/app/models/dto"
	"github.com/emre/studentms/internal/pkg/apperrors"
	"github.com/emre/studentms/internal/pkg/auth"
)

// TokenHeader is the header protected routes read the session token from
const TokenHeader = "x-auth-token"

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserID    = "userID"
	ContextUsername  = "username"
	ContextRole      = "role"
	ContextStudentID = "studentID"
)

// AuthMiddleware gates requests on token validity and role membership
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth verifies the x-auth-token header and attaches the verified
// claims to the request context. It never touches stored state.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			HandleAPIError(c, apperrors.ErrNoToken)
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			// Expired and malformed tokens get the same response; the
			// distinction only matters in logs.
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		if claims.StudentID != nil {
			c.Set(ContextStudentID, *claims.StudentID)
		}

		c.Next()
	}
}

// RoleRequired rejects requests whose verified role is not in the
// allowed set. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessage("User role not found, authorization denied"))
			return
		}

		role, ok := value.(models.RoleType)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessage("User role not found, authorization denied"))
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		HandleAPIError(c, apperrors.ErrRoleForbidden)
		c.Abort()
	}
}

// StudentIDFromContext returns the caller's student ID claim, if any
func StudentIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextStudentID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
