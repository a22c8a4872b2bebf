package pagination_test

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/JaimeStill/discvault/pkg/pagination"
	"github.com/JaimeStill/discvault/pkg/query"
)

func TestPageRequestFromQuery(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantSearch   string
		wantSort     []query.SortField
	}{
		{"empty uses defaults", "", 1, 20, "", nil},
		{"page and size", "page=2&page_size=50", 2, 50, "", nil},
		{"search", "search=abbey", 1, 20, "abbey", nil},
		{"sort", "sort=title,-year", 1, 20, "", []query.SortField{{Field: "title"}, {Field: "year", Descending: true}}},
		{"invalid page", "page=x", 1, 20, "", nil},
		{"size capped", "page_size=500", 1, 100, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}

			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}

			var search string
			if req.Search != nil {
				search = *req.Search
			}
			if search != tt.wantSearch {
				t.Errorf("Search = %q, want %q", search, tt.wantSearch)
			}

			if !reflect.DeepEqual(req.Sort, tt.wantSort) {
				t.Errorf("Sort = %v, want %v", req.Sort, tt.wantSort)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"empty", 0, 20, 1},
		{"exact", 40, 20, 2},
		{"remainder", 41, 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[string](nil, tt.total, 1, tt.pageSize)

			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}

			if result.Data == nil {
				t.Error("Data = nil, want empty slice")
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}
	if got := req.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
}
