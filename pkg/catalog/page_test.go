package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                  string
		page, pageSize, total int
		want                  PageWindow
	}{
		{
			name: "empty result",
			page: 1, pageSize: 8, total: 0,
			want: PageWindow{Page: 1, Skip: 0, Limit: 8, TotalPages: 0},
		},
		{
			name: "exactly one page",
			page: 1, pageSize: 8, total: 8,
			want: PageWindow{Page: 1, Skip: 0, Limit: 8, TotalPages: 1},
		},
		{
			name: "partial second page",
			page: 2, pageSize: 8, total: 9,
			want: PageWindow{Page: 2, Skip: 8, Limit: 8, TotalPages: 2},
		},
		{
			name: "page zero clamps to one",
			page: 0, pageSize: 8, total: 20,
			want: PageWindow{Page: 1, Skip: 0, Limit: 8, TotalPages: 3},
		},
		{
			name: "negative page clamps to one",
			page: -4, pageSize: 10, total: 5,
			want: PageWindow{Page: 1, Skip: 0, Limit: 10, TotalPages: 1},
		},
		{
			name: "page beyond the end",
			page: 5, pageSize: 8, total: 9,
			want: PageWindow{Page: 5, Skip: 32, Limit: 8, TotalPages: 2},
		},
		{
			name: "unconstrained with results",
			page: 3, pageSize: 0, total: 12,
			want: PageWindow{Page: 3, Skip: 0, Limit: 0, TotalPages: 1},
		},
		{
			name: "unconstrained empty",
			page: 1, pageSize: 0, total: 0,
			want: PageWindow{Page: 1, Skip: 0, Limit: 0, TotalPages: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Window(tt.page, tt.pageSize, tt.total))
		})
	}
}

func TestWindow_TotalPagesIsCeiling(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 50; total++ {
		for size := 1; size <= 10; size++ {
			w := Window(1, size, total)
			assert.GreaterOrEqual(t, w.TotalPages*size, total)
			if total > 0 {
				assert.Less(t, (w.TotalPages-1)*size, total)
			} else {
				assert.Zero(t, w.TotalPages)
			}
		}
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-2":  1,
		"1":   1,
		"3":   3,
		" 7 ": 7,
		"2.5": 1,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParsePage(in), "ParsePage(%q)", in)
	}
}
