package routing

import (
	"net/url"
	"strings"
)

// Router builds absolute URLs of the form
// {base}/index.php/{journal}/{page}/{op}/{args...}.
type Router struct {
	base string
}

func NewRouter(baseURL string) *Router {
	return &Router{base: strings.TrimRight(baseURL, "/")}
}

func (r *Router) URL(journalPath, page, op string, args ...string) string {
	var b strings.Builder
	b.WriteString(r.base)
	b.WriteString("/index.php")
	for _, seg := range append([]string{journalPath, page, op}, args...) {
		if seg == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}

// AuthorDashboard links to the author's view of a submission.
func (r *Router) AuthorDashboard(journalPath, submissionID string) string {
	return r.URL(journalPath, "authorDashboard", "submission", submissionID)
}
