package profile

// Field stores fill statistics for a single column.
type Field struct {
	// Name of this field as it appears in the header.
	Name string `json:"name"`

	// 1-based position of the field in the header.
	Index int `json:"index"`

	// Number of sampled rows with a non-empty value for this field.
	// Whitespace-only values count as empty.
	Filled int64 `json:"filled"`

	// Number of sampled rows with an empty value for this field.
	Empty int64 `json:"empty"`

	// Distinct sample values in first-seen order.
	Samples []string `json:"samples,omitempty"`
}

// FillRate returns the percentage of sampled rows with a value,
// or zero if no rows were sampled.
func (f *Field) FillRate(rows int64) float64 {
	if rows == 0 {
		return 0
	}

	return float64(f.Filled) / float64(rows) * 100
}

type Profile struct {
	// Total number of rows sampled.
	RowCount int64 `json:"row_count"`

	// Field names in header order.
	Columns []string `json:"columns"`

	// Flat set of fields that were profiled.
	Fields map[string]*Field `json:"fields"`
}

func NewProfile() *Profile {
	return &Profile{
		Fields: make(map[string]*Field),
	}
}
