package domain

// IssueKind classifies a validation issue.
type IssueKind string

const (
	IssueDuplicateEntryID IssueKind = "duplicate_entry_id"
	IssueInvalidFormat    IssueKind = "invalid_format"
)

// ValidationIssue is a detected conflict among pending edits and/or the
// base dataset. Issues are derived, never stored.
type ValidationIssue struct {
	Kind          IssueKind `json:"type"`
	RowID         string    `json:"row_id"`
	Column        string    `json:"column"`
	NewValue      string    `json:"new_value"`
	ConflictsWith []string  `json:"conflicts_with,omitempty"`
	Message       string    `json:"message"`
}
