package search_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

type quickSearchView struct {
	Filters models.SearchFilters `json:"filters"`
	Query   string               `json:"query"`
	Target  string               `json:"target"`
}

func newSearchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/search/quick", QuickSearch)
	return router
}

func TestQuickSearch(t *testing.T) {
	router := newSearchRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search/quick?q="+url.QueryEscape("red bmw suv automatic"), nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data quickSearchView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := models.SearchFilters{Make: "Bmw", BodyType: "SUV", Transmission: "Automatic", Search: "red bmw suv automatic"}
	if resp.Data.Filters != want {
		t.Errorf("filters = %+v, want %+v", resp.Data.Filters, want)
	}
	if resp.Data.Target != "/cars?"+resp.Data.Query {
		t.Errorf("target %q does not embed query %q", resp.Data.Target, resp.Data.Query)
	}

	// The target query string must parse back to the same filters, so the
	// listing page lands on exactly what the header search resolved.
	values, err := url.ParseQuery(resp.Data.Query)
	if err != nil {
		t.Fatalf("bad query string %q: %v", resp.Data.Query, err)
	}
	if got := models.ParseSearchFilters(values); got != want {
		t.Errorf("reparsed filters = %+v, want %+v", got, want)
	}
}

func TestQuickSearchMissingQuery(t *testing.T) {
	router := newSearchRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search/quick", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQuickSearchUnstructuredQuery(t *testing.T) {
	router := newSearchRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search/quick?q="+url.QueryEscape("low mileage family car"), nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data quickSearchView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := (models.SearchFilters{Search: "low mileage family car"}); resp.Data.Filters != want {
		t.Errorf("filters = %+v, want only the search field", resp.Data.Filters)
	}
}
