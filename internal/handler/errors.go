package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/inference"
)

// validationError marks a failure caused by the caller's input; it always
// maps to 400.
type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }

func errValidation(msg string) error { return validationError{msg: msg} }

// writeError is the single place request failures become HTTP responses.
// Validation problems are 400, everything else (missing model, unparsable
// PDF) is 500 with the error message and no stack trace.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var verr validationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.msg})
	case errors.Is(err, inference.ErrModelUnavailable):
		logger.Warn("prediction without trained model", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
