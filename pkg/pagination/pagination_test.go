package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/weekly/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := pagination.Config{}
		if err := c.Finalize(nil); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if c.DefaultPageSize != 20 || c.MaxPageSize != 100 {
			t.Errorf("defaults: got %+v", c)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_PAGE_DEFAULT", "10")
		c := pagination.Config{}
		if err := c.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_DEFAULT"}); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if c.DefaultPageSize != 10 {
			t.Errorf("default page size: got %d, want 10", c.DefaultPageSize)
		}
	})

	t.Run("default exceeds max", func(t *testing.T) {
		c := pagination.Config{DefaultPageSize: 50, MaxPageSize: 10}
		if err := c.Finalize(nil); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"empty", "", 1, 20, 0},
		{"explicit", "page=3&page_size=10", 3, 10, 20},
		{"clamped", "page=-1&page_size=500", 1, 100, 0},
		{"garbage", "page=x&page_size=y", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage || req.PageSize != tt.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", req.Page, req.PageSize, tt.wantPage, tt.wantSize)
			}
			if req.Offset() != tt.wantOffset {
				t.Errorf("offset: got %d, want %d", req.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{95, 10, 10},
	}

	for _, tt := range tests {
		r := pagination.NewPageResult[string](nil, tt.total, 1, tt.size)
		if r.TotalPages != tt.want {
			t.Errorf("total=%d size=%d: got %d pages, want %d", tt.total, tt.size, r.TotalPages, tt.want)
		}
		if r.Data == nil {
			t.Error("data should be an empty slice, not nil")
		}
	}
}
