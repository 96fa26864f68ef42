package form

// FieldStatus is a snapshot of one field at the time Status or Submit was
// called.
type FieldStatus struct {
	Name  string // Field label
	Value string // Buffer contents
	Valid bool   // Always true before the form is submitted
}

// String returns the field value
func (fs FieldStatus) String() string {
	return fs.Value
}

// Statuses is the per-field result of Status and Submit, in display order.
type Statuses []FieldStatus

// AllValid reports whether every field is valid.
func (s Statuses) AllValid() bool {
	for _, fs := range s {
		if !fs.Valid {
			return false
		}
	}
	return true
}

// Invalid returns the indices of invalid fields.
func (s Statuses) Invalid() []int {
	var idx []int
	for i, fs := range s {
		if !fs.Valid {
			idx = append(idx, i)
		}
	}
	return idx
}

// Values returns the field values in display order.
func (s Statuses) Values() []string {
	values := make([]string, len(s))
	for i, fs := range s {
		values[i] = fs.Value
	}
	return values
}
