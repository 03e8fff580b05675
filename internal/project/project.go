package project

// Record represents one flood control project extracted from the
// national data document. Records are immutable once built; a project
// whose coordinates cannot be resolved never becomes a Record.
type Record struct {
	Title      string  `json:"title"`
	Contractor string  `json:"contractor"`
	StartDate  string  `json:"start_date"`
	Cost       float64 `json:"cost"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Location   string  `json:"location"`
}

// Field defaults applied when the matching template omits a sub-field.
const (
	DefaultContractor = "N/A"
	DefaultStartDate  = "Unknown"
	DefaultLocation   = "Unknown"
)
