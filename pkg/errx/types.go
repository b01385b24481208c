package errx

// Type categorizes an error and drives its default HTTP status
type Type string

const (
	TypeInternal      Type = "INTERNAL"
	TypeValidation    Type = "VALIDATION"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeExternal      Type = "EXTERNAL"
)

func (t Type) String() string {
	return string(t)
}
