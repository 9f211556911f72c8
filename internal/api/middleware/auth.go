package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/jwt"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/redis"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxClaims = "claims"
)

// JWTAuth verifies the bearer token and resolves the account behind it. A
// valid signature is not enough: a deleted or deactivated user is rejected,
// as is a blacklisted (logged-out) token when redis is available.
func JWTAuth(jwtMgr *jwt.Manager, users repository.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwtMgr)
		if !ok {
			response.Unauthorized(c, "Not authorized, no token or token invalid")
			c.Abort()
			return
		}

		if rdb != nil {
			if revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && revoked {
				response.Unauthorized(c, "Token has been revoked")
				c.Abort()
				return
			}
			// On redis errors the check degrades to signature-only.
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			response.Unauthorized(c, "Not authorized, user not found")
			c.Abort()
			return
		}

		c.Set(CtxUserID, user.UserID)
		c.Set(CtxRole, user.Role)
		c.Set(CtxClaims, claims)

		c.Next()
	}
}

// OptionalJWTAuth resolves the user when a valid token is present and lets
// the request through as anonymous otherwise. Only visibility filtering
// depends on it.
func OptionalJWTAuth(jwtMgr *jwt.Manager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwtMgr)
		if ok {
			if user, err := users.GetByID(c.Request.Context(), claims.UserID); err == nil && user.IsActive {
				c.Set(CtxUserID, user.UserID)
				c.Set(CtxRole, user.Role)
				c.Set(CtxClaims, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin permits only admin accounts.
func RequireAdmin() gin.HandlerFunc {
	return requireRoles(model.RoleAdmin)
}

// RequireEditor permits accounts that can write content. Admins are editors;
// viewers are not.
func RequireEditor() gin.HandlerFunc {
	return requireRoles(model.RoleAdmin, model.RoleEditor)
}

func requireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Unauthorized(c, "Not authorized")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowed {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient permissions")
		c.Abort()
	}
}

func bearerClaims(c *gin.Context, jwtMgr *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwtMgr.ParseToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
