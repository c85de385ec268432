package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware_HeaderWins(t *testing.T) {
	var seen string
	handler := SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = getSessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "from-header")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "from-header", seen)
	assert.Equal(t, "from-header", rec.Header().Get(SessionHeader))
	assert.Empty(t, rec.Result().Cookies(), "existing sessions get no new cookie")
}

func TestGetSessionID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", getSessionID(req.Context()))
	assert.Equal(t, "abc", getSessionID(context.WithValue(req.Context(), sessionIDKey, "abc")))
}

func TestCartHandler_NoSession(t *testing.T) {
	handler := NewCartHandler(nil, nil)

	rec := httptest.NewRecorder()
	handler.GetCart(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
