package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithRoutes(Route{
			Path:   "/v1/cron/:type/run",
			Method: http.MethodPost,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("type")))
			}),
			Middlewares: []func(http.Handler) http.Handler{mark("first"), mark("second")},
		}),
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
	)

	t.Run("aplica middlewares na ordem declarada", func(t *testing.T) {
		order = nil
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/brand-ranking/run", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "brand-ranking", rec.Body.String())
		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})

	t.Run("usa o handler de rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}
