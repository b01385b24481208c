package errx

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the JSON body written for a failed request
type Response struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Status    int                    `json:"status"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ToResponse converts an Error to its JSON response body
func (e *Error) ToResponse() Response {
	return Response{
		Code:    e.Code,
		Message: e.Message,
		Type:    string(e.Type),
		Details: e.Details,
		Status:  e.HTTPStatus,
	}
}

// ToFiber writes err as a JSON response. Errors that are not *Error are
// reported as internal errors without leaking their text.
func ToFiber(c *fiber.Ctx, err error) error {
	var e *Error
	if !As(err, &e) {
		e = New("An unexpected error occurred", TypeInternal)
	}

	resp := e.ToResponse()
	resp.RequestID = c.Get("X-Request-ID")
	return c.Status(e.HTTPStatus).JSON(resp)
}
