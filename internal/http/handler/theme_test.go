package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ashara.health/site/internal/http/handler"
)

var _ = Describe("ThemeHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewThemeHandler(false)
		router.POST("/api/theme", h.Set)
		router.GET("/api/theme", h.Get)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/theme", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Set", func() {
		It("persists a valid theme in a year-long cookie", func() {
			w := post(`{"theme":"dark"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["ok"]).To(BeTrue())

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal("theme"))
			Expect(cookies[0].Value).To(Equal("dark"))
			Expect(cookies[0].Path).To(Equal("/"))
			Expect(cookies[0].MaxAge).To(Equal(365 * 24 * 60 * 60))
			Expect(cookies[0].SameSite).To(Equal(http.SameSiteLaxMode))
			Expect(cookies[0].HttpOnly).To(BeFalse())
			Expect(cookies[0].Secure).To(BeFalse())
		})

		It("rejects an unknown theme without setting a cookie", func() {
			w := post(`{"theme":"purple"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Invalid theme"))
			Expect(w.Result().Cookies()).To(BeEmpty())
		})

		It("rejects a body that is not JSON", func() {
			w := post("theme=dark")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Bad request"))
			Expect(w.Result().Cookies()).To(BeEmpty())
		})

		It("marks the cookie Secure when configured for production", func() {
			prodRouter := gin.New()
			prodRouter.POST("/api/theme", handler.NewThemeHandler(true).Set)

			req := httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(`{"theme":"light"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			prodRouter.ServeHTTP(w, req)

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Secure).To(BeTrue())
		})
	})

	Describe("Get", func() {
		get := func(mutate func(*http.Request)) map[string]string {
			req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
			if mutate != nil {
				mutate(req)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			return resp
		}

		It("prefers the theme cookie", func() {
			resp := get(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
				req.Header.Set("X-Dark-Mode", "false")
			})
			Expect(resp["theme"]).To(Equal("dark"))
		})

		It("falls back to the legacy dark mode flag", func() {
			resp := get(func(req *http.Request) {
				req.Header.Set("X-Dark-Mode", "true")
			})
			Expect(resp["theme"]).To(Equal("dark"))
		})

		It("defaults to light with no stored preference", func() {
			resp := get(nil)
			Expect(resp["theme"]).To(Equal("light"))
		})
	})
})
