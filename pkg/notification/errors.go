package notification

import (
	"net/http"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("NOTIFICATION")

var (
	CodeNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Notification not found")
	CodeInvalidLevel = ErrRegistry.Register("INVALID_LEVEL", errx.TypeValidation, http.StatusBadRequest, "Invalid notification level")
	CodeInvalidUser  = ErrRegistry.Register("INVALID_USER", errx.TypeValidation, http.StatusBadRequest, "Notification needs a recipient")
)

func ErrNotFound() *errx.Error     { return ErrRegistry.New(CodeNotFound) }
func ErrInvalidLevel() *errx.Error { return ErrRegistry.New(CodeInvalidLevel) }
func ErrInvalidUser() *errx.Error  { return ErrRegistry.New(CodeInvalidUser) }
