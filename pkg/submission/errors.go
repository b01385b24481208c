package submission

import (
	"net/http"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SUBMISSION")

var (
	CodeSubmissionNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Submission not found")
	CodeJournalNotFound    = ErrRegistry.Register("JOURNAL_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Journal not found")
	CodeUserNotFound       = ErrRegistry.Register("USER_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeNoPrimaryAuthor    = ErrRegistry.Register("NO_PRIMARY_AUTHOR", errx.TypeBusiness, http.StatusUnprocessableEntity, "Submission has no author to acknowledge")
	CodeJournalMismatch    = ErrRegistry.Register("JOURNAL_MISMATCH", errx.TypeValidation, http.StatusBadRequest, "Submission does not belong to this journal")
	CodeNotOwner           = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Only the submitter can complete this submission")
	CodeAlreadySubmitted   = ErrRegistry.Register("ALREADY_SUBMITTED", errx.TypeConflict, http.StatusConflict, "Submission was already submitted")
	CodeInvalidRequest     = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid submission request")
)

func ErrSubmissionNotFound() *errx.Error { return ErrRegistry.New(CodeSubmissionNotFound) }
func ErrJournalNotFound() *errx.Error    { return ErrRegistry.New(CodeJournalNotFound) }
func ErrUserNotFound() *errx.Error       { return ErrRegistry.New(CodeUserNotFound) }
func ErrNoPrimaryAuthor() *errx.Error    { return ErrRegistry.New(CodeNoPrimaryAuthor) }
func ErrJournalMismatch() *errx.Error    { return ErrRegistry.New(CodeJournalMismatch) }
func ErrNotOwner() *errx.Error           { return ErrRegistry.New(CodeNotOwner) }
func ErrAlreadySubmitted() *errx.Error   { return ErrRegistry.New(CodeAlreadySubmitted) }
func ErrInvalidRequest() *errx.Error     { return ErrRegistry.New(CodeInvalidRequest) }
