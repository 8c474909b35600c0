package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		params   Params
		want     []int
		wantMeta Meta
	}{
		{
			name:     "no page size returns everything",
			params:   Params{Page: 1},
			want:     items,
			wantMeta: Meta{Page: 1, TotalItems: 5},
		},
		{
			name:     "first page",
			params:   Params{Page: 1, PageSize: 2},
			want:     []int{1, 2},
			wantMeta: Meta{Page: 1, PageSize: 2, TotalItems: 5, TotalPages: 3},
		},
		{
			name:     "last partial page",
			params:   Params{Page: 3, PageSize: 2},
			want:     []int{5},
			wantMeta: Meta{Page: 3, PageSize: 2, TotalItems: 5, TotalPages: 3},
		},
		{
			name:     "past the end",
			params:   Params{Page: 9, PageSize: 2},
			want:     []int{},
			wantMeta: Meta{Page: 9, PageSize: 2, TotalItems: 5, TotalPages: 3},
		},
		{
			name:     "zero page is treated as first",
			params:   Params{PageSize: 4},
			want:     []int{1, 2, 3, 4},
			wantMeta: Meta{Page: 1, PageSize: 4, TotalItems: 5, TotalPages: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := Slice(items, tt.params)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMeta, meta)
		})
	}
}
