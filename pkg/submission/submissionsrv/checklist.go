package submissionsrv

import (
	"sort"
	"strings"

	"github.com/Abraxas-365/journalsubmit/pkg/submission"
)

// RenderChecklist renders accepted checklist items as an HTML list ordered by
// Order. Items sharing an order keep their stored position. Content is
// trusted journal-configured HTML and is not escaped.
func RenderChecklist(items []submission.ChecklistItem) string {
	sorted := make([]submission.ChecklistItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	var b strings.Builder
	b.WriteString("<p><ul>")
	for _, item := range sorted {
		b.WriteString("<li>")
		b.WriteString(item.Content)
		b.WriteString("</li>")
	}
	b.WriteString("</ul></p>")
	return b.String()
}

const copyrightHeading = "<br /><u>Copyright Notice</u><br />"

// copyrightFragment prefixes a non-empty notice with its heading.
func copyrightFragment(notice string) string {
	if notice == "" {
		return ""
	}
	return copyrightHeading + notice
}
