package submissionsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
)

// BaseStep persists the step's form state before notifications go out.
type BaseStep interface {
	Execute(ctx context.Context, sub *submission.Submission) error
}

// CompletionStep closes the author workflow and reloads the submission so
// later steps see the persisted state.
type CompletionStep struct {
	submissions submission.SubmissionRepository
	now         func() time.Time
}

func NewCompletionStep(submissions submission.SubmissionRepository) *CompletionStep {
	return &CompletionStep{submissions: submissions, now: time.Now}
}

func (s *CompletionStep) Execute(ctx context.Context, sub *submission.Submission) error {
	if err := s.submissions.MarkSubmitted(ctx, sub.ID, s.now().UTC()); err != nil {
		return err
	}

	reloaded, err := s.submissions.FindByID(ctx, sub.ID)
	if err != nil {
		return err
	}
	*sub = *reloaded
	return nil
}

// Step4 is the final submission step: the base step followed by the
// acknowledgement and audit fan-out.
type Step4 struct {
	base      BaseStep
	finalizer *Finalizer
}

func NewStep4(base BaseStep, finalizer *Finalizer) *Step4 {
	return &Step4{base: base, finalizer: finalizer}
}

func (s *Step4) Execute(ctx context.Context, req *submission.Request, sub *submission.Submission) (kernel.SubmissionID, error) {
	if err := checkFinalizable(req, sub); err != nil {
		return 0, err
	}
	if err := s.base.Execute(ctx, sub); err != nil {
		return 0, err
	}
	return s.finalizer.Finalize(ctx, req, sub)
}
