package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ashara.health/site/internal/availability"
	"ashara.health/site/internal/http/handler"
)

var _ = Describe("AvailabilityHandler", func() {
	var (
		router   *gin.Engine
		provider *mockProvider
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		provider = &mockProvider{}
		router.GET("/api/availability", handler.NewAvailabilityHandler(provider).List)
	})

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("asks the provider for a 30 day window by default", func() {
		var gotDays int
		provider.slotsFn = func(_ context.Context, _ time.Time, days int) (map[string][]availability.Slot, error) {
			gotDays = days
			return map[string][]availability.Slot{}, nil
		}

		w := get("/api/availability")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotDays).To(Equal(30))
	})

	It("honours the days query parameter", func() {
		var gotDays int
		provider.slotsFn = func(_ context.Context, _ time.Time, days int) (map[string][]availability.Slot, error) {
			gotDays = days
			return map[string][]availability.Slot{}, nil
		}

		get("/api/availability?days=7")

		Expect(gotDays).To(Equal(7))
	})

	It("caps oversized windows at 90 days", func() {
		var gotDays int
		provider.slotsFn = func(_ context.Context, _ time.Time, days int) (map[string][]availability.Slot, error) {
			gotDays = days
			return map[string][]availability.Slot{}, nil
		}

		get("/api/availability?days=365")

		Expect(gotDays).To(Equal(90))
	})

	It("rejects a non-numeric days parameter", func() {
		w := get("/api/availability?days=soon")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("rejects zero and negative windows", func() {
		Expect(get("/api/availability?days=0").Code).To(Equal(http.StatusBadRequest))
		Expect(get("/api/availability?days=-3").Code).To(Equal(http.StatusBadRequest))
	})

	It("returns the provider's slots keyed by date", func() {
		slot := availability.Slot{
			Time:      "09:00",
			Display:   "9:00 AM",
			Available: true,
		}
		provider.slotsFn = func(context.Context, time.Time, int) (map[string][]availability.Slot, error) {
			return map[string][]availability.Slot{"2026-09-07": {slot}}, nil
		}

		w := get("/api/availability")

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp struct {
			Days map[string][]availability.Slot `json:"days"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Days).To(HaveKey("2026-09-07"))
		Expect(resp.Days["2026-09-07"]).To(ConsistOf(slot))
	})

	It("returns 500 when the provider fails", func() {
		provider.slotsFn = func(context.Context, time.Time, int) (map[string][]availability.Slot, error) {
			return nil, errors.New("calendar unreachable")
		}

		w := get("/api/availability")

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("failed to load availability"))
	})
})
