package mail

import (
	"net/http"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("MAIL")

var (
	CodeTemplateNotFound = ErrRegistry.Register("TEMPLATE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Email template not found")
	CodeNoRecipients     = ErrRegistry.Register("NO_RECIPIENTS", errx.TypeValidation, http.StatusBadRequest, "Email has no recipients")
	CodeDisabled         = ErrRegistry.Register("DISABLED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Email is disabled")
	CodeCache            = ErrRegistry.Register("CACHE", errx.TypeExternal, http.StatusInternalServerError, "Template cache failure")
)

func ErrTemplateNotFound() *errx.Error { return ErrRegistry.New(CodeTemplateNotFound) }
func ErrNoRecipients() *errx.Error     { return ErrRegistry.New(CodeNoRecipients) }
func ErrDisabled() *errx.Error         { return ErrRegistry.New(CodeDisabled) }
