// Package handlers contains the gin HTTP handlers for the spectra API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthspec/synthspec/internal/interfaces/http/middleware"
	"github.com/synthspec/synthspec/pkg/errors"
	"github.com/synthspec/synthspec/pkg/types/common"
)

// respondOK writes a 200 envelope around data.
func respondOK[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, common.OK(middleware.GetRequestID(c), data))
}

// respondError maps an error onto the envelope, using the AppError code for
// the HTTP status when there is one.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)

	detail := common.ErrorDetail{
		Code:    code.String(),
		Message: err.Error(),
	}
	if appErr, ok := err.(*errors.AppError); ok {
		detail.Message = appErr.Message
		detail.Detail = appErr.Detail
	}

	c.JSON(errors.HTTPStatusForCode(code),
		common.Fail[any](middleware.GetRequestID(c), detail))
}

// respondInvalid reports a malformed request body or parameter.
func respondInvalid(c *gin.Context, msg string) {
	respondError(c, errors.InvalidParam(msg))
}
