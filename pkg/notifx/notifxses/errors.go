package notifxses

import "github.com/Abraxas-365/journalsubmit/pkg/errx"

var sesErrors = errx.NewRegistry("NOTIFX_SES")

var ErrSendFailed = sesErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "SES send email failed")
