package shared

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// Offset returns the row offset for the filter's page
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit()
}

// Limit returns the page size, bounded to sane values
func (f Filter) Limit() int {
	if f.PageSize < 1 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
