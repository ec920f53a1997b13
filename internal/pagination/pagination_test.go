package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		in          Pagination
		wantPage    int
		wantRecords int
	}{
		{name: "defaults applied", in: Pagination{}, wantPage: 1, wantRecords: 10},
		{name: "zero records falls back to ten", in: Pagination{Page: 3}, wantPage: 3, wantRecords: 10},
		{name: "negative page clamped", in: Pagination{Page: -1, RecordsNumber: 5}, wantPage: 1, wantRecords: 5},
		{name: "explicit values kept", in: Pagination{Page: 2, RecordsNumber: 25}, wantPage: 2, wantRecords: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantRecords, got.RecordsNumber)
		})
	}
}

func TestOffsetAndLimit(t *testing.T) {
	p := Pagination{Page: 3, RecordsNumber: 10}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())

	// Zero records behaves identically to the default of 10.
	zero := Pagination{Page: 3}
	assert.Equal(t, Pagination{Page: 3, RecordsNumber: 10}.Offset(), zero.Offset())
	assert.Equal(t, Pagination{Page: 3, RecordsNumber: 10}.Limit(), zero.Limit())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		count   int64
		records int
		want    int
	}{
		{name: "exact multiple", count: 20, records: 10, want: 2},
		{name: "partial last page", count: 21, records: 10, want: 3},
		{name: "empty result", count: 0, records: 10, want: 0},
		{name: "zero records uses default", count: 25, records: 0, want: 3},
		{name: "single page", count: 3, records: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{RecordsNumber: tt.records}
			assert.Equal(t, tt.want, p.TotalPages(tt.count))
		})
	}
}
