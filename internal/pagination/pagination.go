// Package pagination holds the page/records/filter triple shared by all list
// endpoints. Pages are 1-based and a zero records-per-page falls back to the
// default of 10.
package pagination

import "math"

// DefaultRecordsNumber is used when the client sends zero or omits the parameter.
const DefaultRecordsNumber = 10

// Pagination carries list query parameters.
type Pagination struct {
	Page          int
	RecordsNumber int
	// Filter is a case-insensitive substring matched against the entity's name.
	Filter string
}

// Normalize clamps the page to 1 and applies the records-per-page default.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.RecordsNumber <= 0 {
		p.RecordsNumber = DefaultRecordsNumber
	}
	return p
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.RecordsNumber
}

// Limit returns the page size.
func (p Pagination) Limit() int {
	return p.Normalize().RecordsNumber
}

// TotalPages computes ceil(count / recordsNumber) for a normalized page size.
func (p Pagination) TotalPages(count int64) int {
	return int(math.Ceil(float64(count) / float64(p.Limit())))
}
