package middleware

import (
	"net/http"
	"strings"
	"time"

	"checky/internal/core/domain"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxSubject   = "subject"
	CtxRole      = "role"
	CtxTokenKind = "token_kind"
)

// RequestID assigns every request an id, reusing a well-formed incoming X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// CustomerAuth accepts only customer session tokens.
func CustomerAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return sessionAuth(tokenSvc, ports.TokenKindCustomer, log)
}

// StaffAuth accepts only staff session tokens.
func StaffAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return sessionAuth(tokenSvc, ports.TokenKindStaff, log)
}

func sessionAuth(tokenSvc ports.TokenService, kind ports.TokenKind, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		if claims.Kind != kind {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxSubject, claims.Subject)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxTokenKind, claims.Kind)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// RequireStaffRole aborts with AUTH_004 unless allow accepts the caller's role.
// It must run after StaffAuth.
func RequireStaffRole(allow func(domain.StaffRole) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.StaffRole(c.GetString(CtxRole))
		if !allow(role) {
			response.Error(c, apperror.ErrForbiddenRole(string(role)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Subject returns the authenticated subject set by CustomerAuth or StaffAuth.
func Subject(c *gin.Context) (string, bool) {
	s := c.GetString(CtxSubject)
	return s, s != ""
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(response.RequestIDKey)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
					"request_id": c.GetString(response.RequestIDKey),
				})
			}
		}()
		c.Next()
	}
}
