package models

// Sort orders accepted by the listing endpoints.
const (
	SortByDate = "date"
	SortByName = "name"
)

// Pagination defaults and limits.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// BookmarkFilter is a validated listing request.
// Offset is a page index: Skip returns the number of records to skip.
type BookmarkFilter struct {
	SortBy   string
	Offset   int
	PageSize int
	Search   string
	Tags     []string
}

// Skip returns how many records precede the requested page.
func (f BookmarkFilter) Skip() int {
	return f.Offset * f.PageSize
}

// FieldViolation is one entry of a validation error list, rendered as {"field": "message"}.
type FieldViolation map[string]string

// ValidationErrors is the body of a 400 response for query-string validation.
// swagger:model ValidationErrors
type ValidationErrors struct {
	Errors []FieldViolation `json:"errors"`
}

// Add appends a violation for field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, FieldViolation{field: message})
}

// Empty reports whether no violation has been recorded.
func (v *ValidationErrors) Empty() bool {
	return len(v.Errors) == 0
}
