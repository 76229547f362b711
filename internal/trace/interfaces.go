package trace

// Repository loads and persists leak reports.
type Repository interface {
	// Load reads and validates a leak report from a JSON file.
	Load(path string) (*Report, error)

	// Save persists a leak report as pretty-printed JSON.
	Save(report *Report, path string) error
}
