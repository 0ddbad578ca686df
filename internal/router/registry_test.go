package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingModule struct{ path string }

func (m pingModule) Register(rg *gin.RouterGroup) {
	rg.GET(m.path, func(c *gin.Context) { c.String(http.StatusOK, c.GetString("mw")) })
}

func TestRegistry_RegisterAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRegistry(gin.New())
	r.Use(func(c *gin.Context) { c.Set("mw", "applied"); c.Next() })
	r.Add(pingModule{path: "/a"})
	r.Add(pingModule{path: "/b"})
	r.RegisterAll()

	for _, p := range []string{"/api/a", "/api/b"} {
		w := httptest.NewRecorder()
		r.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Code != http.StatusOK || w.Body.String() != "applied" {
			t.Fatalf("%s: %d %q", p, w.Code, w.Body.String())
		}
	}
}

func TestRegistry_OpsModulesOnRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRegistry(gin.New())
	r.Use(func(c *gin.Context) { c.Set("mw", "applied"); c.Next() })
	r.AddOps(pingModule{path: "/health"})
	r.RegisterAll()

	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("root: %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("ops module leaked under /api: %d", w.Code)
	}
}
