package navigation

// ErrorType classifies a structural problem in a navigation item list
type ErrorType string

const (
	ErrorDuplicateID        ErrorType = "duplicate_id"
	ErrorDuplicatePath      ErrorType = "duplicate_path"
	ErrorInvalidParentChild ErrorType = "invalid_parent_child"
	ErrorCircularReference  ErrorType = "circular_reference"
	ErrorSelfReference      ErrorType = "self_reference"
	ErrorMissingParent      ErrorType = "missing_parent"
)

// IsWarning reports whether problems of this type are non-fatal
func (t ErrorType) IsWarning() bool {
	return t == ErrorMissingParent
}

// ValidationError describes one problem found in an item list
type ValidationError struct {
	Type    ErrorType `json:"type"`
	ItemID  string    `json:"itemId,omitempty"`
	Message string    `json:"message"`
	Items   []string  `json:"items,omitempty"`
}

// CircularReferenceError is a ValidationError of type circular_reference or
// self_reference; Items holds the ids forming the cycle.
type CircularReferenceError = ValidationError

// ValidationResult is the outcome of validating a flat item list.
// Valid is true iff Errors is empty; warnings never affect it.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// Report combines hierarchy validation with cycle detection
type Report struct {
	ValidationResult
	Cycles     []CircularReferenceError `json:"cycles"`
	ItemCount  int                      `json:"itemCount"`
	ValidCount int                      `json:"validCount"`
}

// OK reports whether the report carries no errors and no cycles.
// With strict set, warnings also fail the report.
func (r Report) OK(strict bool) bool {
	if !r.Valid || len(r.Cycles) > 0 {
		return false
	}
	if strict && len(r.Warnings) > 0 {
		return false
	}
	return true
}
