package trace

import (
	"encoding/json"
	"fmt"
	"io"
)

// Parse decodes and validates a leak report from a reader. Unknown fields
// are rejected so schema drift in the producing analyzer surfaces here
// instead of as silently missing data.
func Parse(r io.Reader) (*Report, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var report Report
	if err := dec.Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}
	return &report, nil
}
