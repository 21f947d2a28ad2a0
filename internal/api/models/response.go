package models

// ErrorResponse is the error envelope for all API failures.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code plus a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SummaryReport is the analyze result over one output target.
type SummaryReport struct {
	Target string  `json:"target"`
	Count  int64   `json:"count"`
	Mean   float64 `json:"mean"`
	Edge   float64 `json:"edge"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// RecordRow mirrors one output record for include_rows responses.
type RecordRow struct {
	Sample       int     `json:"sample"`
	RoundsPlayed int     `json:"rounds_played"`
	FinalBalance float64 `json:"final_balance"`
}

// SimulateResponse is returned by POST /simulate.
type SimulateResponse struct {
	Status  string        `json:"status"`
	Summary SummaryReport `json:"summary"`
	Rows    []RecordRow   `json:"rows,omitempty"`
}

// VariantReport is one swept variant's ranked summary.
type VariantReport struct {
	Variant string        `json:"variant"`
	Summary SummaryReport `json:"summary"`
}

// SweepResponse is returned by POST /sweep, best edge first.
type SweepResponse struct {
	Status  string          `json:"status"`
	Ranked  []VariantReport `json:"ranked"`
	Failure string          `json:"failure,omitempty"`
}

// AxisInfo describes one strategy axis for the strategies listing.
type AxisInfo struct {
	Axis        string   `json:"axis"`
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
}

// ResultFile describes one file in the server's results directory.
type ResultFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
