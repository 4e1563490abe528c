package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ujval10/EV-Recharge/internal/helpers"
	"github.com/ujval10/EV-Recharge/internal/models"
	"github.com/ujval10/EV-Recharge/internal/services"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			// Don't return error details in production
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"request_id": requestID,
			})
		}
	}
}

// AuthMiddleware validates the Supabase access token from the
// access_token cookie (or an Authorization bearer header) and stores
// the caller's claims in the context. On an expired token it attempts
// one refresh with the refresh_token cookie before rejecting.
func AuthMiddleware(userService *services.UserService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			var err error
			token, err = c.Cookie("access_token")
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("authentication required"))
				c.Abort()
				return
			}
		}

		claims, err := helpers.ValidateToken(token)
		if err != nil {
			refreshToken, refreshErr := c.Cookie("refresh_token")
			if refreshErr != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid or expired token"))
				c.Abort()
				return
			}

			tokenRes, refreshErr := userService.RefreshToken(c.Request.Context(), refreshToken)
			if refreshErr != nil {
				logger.Error("Token refresh failed", "error", refreshErr)
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("token expired and refresh failed"))
				c.Abort()
				return
			}

			isProduction := os.Getenv("GIN_MODE") == "production"
			c.SetCookie("access_token", tokenRes.AccessToken, tokenRes.ExpiresIn, "/", "", isProduction, true)
			c.SetCookie("refresh_token", tokenRes.RefreshToken, 3600*24*30, "/", "", isProduction, true)

			claims, err = helpers.ValidateToken(tokenRes.AccessToken)
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid refreshed token"))
				c.Abort()
				return
			}
		}

		c.Set("user", &helpers.EnhancedClaims{
			CustomClaims: claims,
			UserID:       claims.Subject,
			Email:        claims.Email,
		})
		c.Next()
	}
}

// AdminOnly gates the admin console. The check is server-verified: it
// reads the caller's profile document and compares the role field; a
// missing profile or a non-admin role is rejected (the UI redirects on
// this signal).
func AdminOnly(userService *services.UserService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("authentication required"))
			c.Abort()
			return
		}

		claims, ok := userClaims.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
			c.Abort()
			return
		}

		isAdmin, err := userService.IsAdmin(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, models.ErrProfileNotFound) {
				c.JSON(http.StatusForbidden, models.ErrorResponse("admin access required"))
			} else {
				logger.Error("Admin check failed", "user_id", claims.UserID, "error", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("could not verify permissions"))
			}
			c.Abort()
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
