package authinfra

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
)

// LogxAuditService implements auth.AuditService using structured logx logging.
type LogxAuditService struct{}

func NewLogxAuditService() *LogxAuditService {
	return &LogxAuditService{}
}

func (s *LogxAuditService) LogTokenRejected(_ context.Context, reason string, ip string, userAgent string) {
	logx.WithFields(logx.Fields{
		"audit_event": "token_rejected",
		"reason":      reason,
		"ip":          ip,
		"user_agent":  userAgent,
		"timestamp":   time.Now(),
	}).Warn("Audit: token rejected")
}

func (s *LogxAuditService) LogAccessDenied(_ context.Context, userID kernel.UserID, scope string, ip string) {
	logx.WithFields(logx.Fields{
		"audit_event": "access_denied",
		"user_id":     userID,
		"scope":       scope,
		"ip":          ip,
		"timestamp":   time.Now(),
	}).Warn("Audit: access denied")
}
