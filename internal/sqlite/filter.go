package sqlite

import (
	"strings"
	"time"

	"github.com/idavidov/clipm/pkg/types"
)

// Filter narrows List and Search results. Each field is optional; set
// fields combine with AND, never OR.
type Filter struct {
	// Label keeps rows whose label equals this value exactly.
	Label *string

	// Days keeps rows created within the last N days.
	Days *int

	// ContentType keeps rows of this type.
	ContentType *types.ContentType
}

// predicates returns the WHERE conditions and their placeholder arguments.
// prefix qualifies column names ("" for bare queries, "c." when the clips
// table is joined under an alias). Values travel as placeholders only.
func (f Filter) predicates(prefix string, now time.Time) (conds []string, args []any) {
	if f.Label != nil {
		conds = append(conds, prefix+"label = ?")
		args = append(args, *f.Label)
	}
	if f.Days != nil {
		cutoff := now.UTC().Add(-time.Duration(*f.Days) * 24 * time.Hour)
		conds = append(conds, prefix+"created_at >= ?")
		args = append(args, cutoff.Format(time.RFC3339))
	}
	if f.ContentType != nil {
		conds = append(conds, prefix+"content_type = ?")
		args = append(args, f.ContentType.String())
	}
	return conds, args
}

// whereClause joins the conditions into a " AND ..."-style suffix appended
// after an existing WHERE, or a full " WHERE ..." clause when lead is true.
func whereClause(conds []string, lead bool) string {
	if len(conds) == 0 {
		return ""
	}
	joined := strings.Join(conds, " AND ")
	if lead {
		return " WHERE " + joined
	}
	return " AND " + joined
}
