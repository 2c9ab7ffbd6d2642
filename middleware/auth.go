package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/models"
	"github.com/casacare/casacare-admin-api/services"
)

// RequireAdmin is a middleware that validates the bearer token and loads
// the admin account it belongs to. The account must still be active:
// deactivating an admin invalidates their outstanding tokens.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := BearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization token is required",
			})
			c.Abort()
			return
		}

		claims, err := services.ValidateAdminToken(config.GetConfig(), tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		var admin models.AdminUser
		if err := config.GetDB().First(&admin, claims.AdminID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Admin account not found",
			})
			c.Abort()
			return
		}
		if !admin.IsActive() {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Admin account is not active",
			})
			c.Abort()
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("admin", &admin)
		c.Next()
	}
}

// BearerToken extracts the bearer token from the Authorization header
func BearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", &AuthError{Code: "MISSING_TOKEN", Message: "Authorization header not set"}
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", &AuthError{Code: "MALFORMED_HEADER", Message: "Authorization header must be 'Bearer <token>'"}
	}
	return parts[1], nil
}

// GetAdmin extracts the authenticated admin from the Gin context
func GetAdmin(c *gin.Context) (*models.AdminUser, error) {
	value, exists := c.Get("admin")
	if !exists {
		return nil, &AuthError{Code: "MISSING_ADMIN", Message: "Admin not found in context"}
	}
	admin, ok := value.(*models.AdminUser)
	if !ok {
		return nil, &AuthError{Code: "INVALID_ADMIN", Message: "Admin context value has unexpected type"}
	}
	return admin, nil
}

// GetAdminID extracts the authenticated admin's ID from the Gin context
func GetAdminID(c *gin.Context) (uint, error) {
	value, exists := c.Get("admin_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_ADMIN_ID", Message: "Admin ID not found in context"}
	}
	id, ok := value.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_ADMIN_ID", Message: "Admin ID is not a uint"}
	}
	return id, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
