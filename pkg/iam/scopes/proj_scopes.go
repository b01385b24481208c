package scopes

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Journal submissions
// ============================================================================

const (
	SubmissionsRead   = "submissions:read"
	SubmissionsSubmit = "submissions:submit"
	SubmissionsAll    = "submissions:*"

	AdminAll = "admin:*"
)

// DomainScopeCategories organizes domain-specific scopes
var DomainScopeCategories = map[string][]string{
	"submissions": {SubmissionsRead, SubmissionsSubmit},
}

// DomainScopeDescriptions provides descriptions for domain scopes
var DomainScopeDescriptions = map[string]string{
	SubmissionsRead:   "View own submissions",
	SubmissionsSubmit: "Complete the submission workflow",
	AdminAll:          "Act on any submission, including as another user",
}

// DomainScopeGroups defines domain-specific role groupings
var DomainScopeGroups = map[string][]string{
	"author":  {SubmissionsRead, SubmissionsSubmit},
	"manager": {SubmissionsAll},
	"admin":   {AdminAll},
}

// Expand resolves a group name into its scopes. Unknown names are kept as
// literal scopes.
func Expand(names ...string) []string {
	var out []string
	for _, n := range names {
		if group, ok := DomainScopeGroups[n]; ok {
			out = append(out, group...)
			continue
		}
		out = append(out, n)
	}
	return out
}
