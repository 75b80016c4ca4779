package tailor

// Issue is a single stylesheet check finding in golangci-lint style
type Issue struct {
	FromLinter string   `json:"FromLinter"` // "tailor"
	Text       string   `json:"Text"`       // "missing rule for \".pt30\""
	Severity   string   `json:"Severity"`   // "error", "warning"
	Selector   string   `json:"Selector"`   // ".pt30"
	Pos        IssuePos `json:"Pos"`
}

// IssuePos locates an issue in the stylesheet
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"` // 0 when the selector is not in the file
}

// LinterName is reported as the origin of every issue
const LinterName = "tailor"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueMissingRule = "missing rule for %q"
	IssueChangedRule = "rule %q has %q, markup implies %q"
	IssueStaleRule   = "stale rule %q is no longer referenced by markup"
)
