package books

// ListFilters is the request-scoped list/pagination intent. Zero-value
// Genre and nil Year mean "no filter".
type ListFilters struct {
	Genre string
	Year  *int
	Page  int
	Limit int
}

// Offset derives the row offset for the data statement.
func (f ListFilters) Offset() int { return (f.Page - 1) * f.Limit }

// Stats is the collection summary served by /api/stats.
type Stats struct {
	TotalBooks int64          `json:"total_books"`
	Genres     map[string]int `json:"genres"`
	YearMin    *int           `json:"year_min"`
	YearMax    *int           `json:"year_max"`
}
