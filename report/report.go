package report

// Result statuses
const (
	StatusOK      = "ok"
	StatusWrapped = "wrapped"
	StatusFailed  = "failed"
)

// Report holds the results of one evaluation run
type Report struct {
	Metadata Metadata `json:"metadata"`
	Results  []Result `json:"results"`
}

// Metadata describes how the results were produced
type Metadata struct {
	Overflow string `json:"overflow"`
	Jobs     int    `json:"jobs"`
}

// Result is the outcome of a single job
type Result struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Input   string `json:"input"`
	Value   uint32 `json:"value"`
	Wrapped bool   `json:"wrapped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Status returns StatusFailed, StatusWrapped or StatusOK.
func (r Result) Status() string {
	switch {
	case r.Error != "":
		return StatusFailed
	case r.Wrapped:
		return StatusWrapped
	default:
		return StatusOK
	}
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{Results: []Result{}}
}

// Add appends a result
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
	r.Metadata.Jobs = len(r.Results)
}

// CountFailed returns the number of results carrying an error
func (r *Report) CountFailed() int {
	n := 0
	for _, res := range r.Results {
		if res.Status() == StatusFailed {
			n++
		}
	}
	return n
}

// CountWrapped returns the number of results whose value wrapped without
// being reported as an error
func (r *Report) CountWrapped() int {
	n := 0
	for _, res := range r.Results {
		if res.Status() == StatusWrapped {
			n++
		}
	}
	return n
}
