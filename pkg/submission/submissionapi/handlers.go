package submissionapi

import (
	"context"
	"strconv"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/iam"
	"github.com/Abraxas-365/journalsubmit/pkg/iam/auth"
	"github.com/Abraxas-365/journalsubmit/pkg/iam/scopes"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
	"github.com/Abraxas-365/journalsubmit/pkg/submission/submissionsrv"
	"github.com/gofiber/fiber/v2"
)

// Submitter completes submissions. *submissionsrv.Service satisfies it.
type Submitter interface {
	Submit(ctx context.Context, in submissionsrv.SubmitInput) (kernel.SubmissionID, error)
}

type SubmissionHandlers struct {
	service Submitter
}

func NewSubmissionHandlers(service Submitter) *SubmissionHandlers {
	return &SubmissionHandlers{service: service}
}

// RegisterRoutes mounts the submission routes behind authentication.
func (h *SubmissionHandlers) RegisterRoutes(app fiber.Router, mw *auth.TokenMiddleware) {
	journals := app.Group("/api/v1/journals/:journal/submissions", mw.Authenticate())
	journals.Post("/:id/submit", mw.RequireScope(scopes.SubmissionsSubmit), h.Submit)
}

type submitResponse struct {
	SubmissionID kernel.SubmissionID `json:"submission_id"`
}

// Submit handles POST /api/v1/journals/:journal/submissions/:id/submit
func (h *SubmissionHandlers) Submit(c *fiber.Ctx) error {
	authContext, ok := auth.FromFiber(c)
	if !ok {
		return errx.ToFiber(c, iam.ErrUnauthorized())
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return errx.ToFiber(c, submission.ErrInvalidRequest().WithDetail("id", c.Params("id")))
	}

	submissionID, err := h.service.Submit(c.UserContext(), submissionsrv.SubmitInput{
		Auth:         authContext,
		JournalPath:  c.Params("journal"),
		SubmissionID: kernel.SubmissionID(id),
		IP:           c.IP(),
		UserAgent:    c.Get("User-Agent"),
	})
	if err != nil {
		return errx.ToFiber(c, err)
	}

	return c.JSON(submitResponse{SubmissionID: submissionID})
}
