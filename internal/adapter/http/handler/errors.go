package handler

import (
	"context"
	"errors"
	"net/http"

	"checky/internal/adapter/http/dto"
	"checky/internal/adapter/http/middleware"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
)

// fail renders err. A request that stopped waiting on a simulated operation
// is reported as still settling; the operation itself completes.
func fail(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		response.Error(c, apperror.ErrStillSettling(err))
		return
	}
	response.Error(c, err)
}

// bindJSON binds and sanitizes a JSON body, rendering REQ_001 or REQ_002 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		renderBindError(c, err)
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// bindURI binds path parameters, rendering REQ_001 on failure.
func bindURI(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindUri(req); err != nil {
		renderBindError(c, err)
		return false
	}
	return true
}

func renderBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
		return
	}
	response.Error(c, apperror.Validation(err.Error()))
}

// shopperSession resolves the session of the customer authenticated by
// CustomerAuth. It writes the error response when there is no subject.
func shopperSession(c *gin.Context, sessions ports.SessionRegistry) (*ports.ShopperSession, bool) {
	userID, ok := middleware.Subject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return nil, false
	}
	return sessions.Session(userID), true
}
