package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetParams_ClampsPage(t *testing.T) {
	var got *Params
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		got = GetParams(c)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		url        string
		wantPage   int
		wantOffset int
	}{
		{"/list", 1, 0},
		{"/list?page=3", 3, 2 * PageSize},
		{"/list?page=0", 1, 0},
		{"/list?page=-2", 1, 0},
		{"/list?page=garbage", 1, 0},
	}
	for _, tc := range cases {
		if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.url, nil)); err != nil {
			t.Fatalf("%s: request failed: %v", tc.url, err)
		}
		if got.Page != tc.wantPage || got.Offset != tc.wantOffset {
			t.Fatalf("%s: page=%d offset=%d, want page=%d offset=%d",
				tc.url, got.Page, got.Offset, tc.wantPage, tc.wantOffset)
		}
		if got.Limit != PageSize {
			t.Fatalf("%s: limit=%d, want %d", tc.url, got.Limit, PageSize)
		}
	}
}

func TestGetMeta_Boundaries(t *testing.T) {
	cases := []struct {
		page       int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{1, 25, 3, true, false},
		{2, 25, 3, true, true},
		{3, 25, 3, false, true},
		{1, 10, 1, false, false},
		{1, 0, 0, false, false},
	}
	for _, tc := range cases {
		meta := GetMeta(&Params{Page: tc.page, Limit: PageSize}, tc.total)
		if meta.TotalPages != tc.totalPages || meta.HasNext != tc.hasNext || meta.HasPrev != tc.hasPrev {
			t.Fatalf("page %d of %d items: got pages=%d next=%t prev=%t, want pages=%d next=%t prev=%t",
				tc.page, tc.total, meta.TotalPages, meta.HasNext, meta.HasPrev,
				tc.totalPages, tc.hasNext, tc.hasPrev)
		}
	}
}

func TestNewResponse_WrapsDataWithMeta(t *testing.T) {
	resp := NewResponse([]string{"a", "b"}, &Params{Page: 1, Limit: PageSize}, 2)
	if resp.Meta == nil || resp.Meta.Total != 2 || resp.Meta.TotalPages != 1 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
	data, ok := resp.Data.([]string)
	if !ok || len(data) != 2 {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}
