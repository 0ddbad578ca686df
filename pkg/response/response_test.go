package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAbort_WritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("request_id", "rid-1")

	Abort(c, http.StatusNotFound, "resource not found", "user with id 1 not found")

	if w.Code != http.StatusNotFound || !c.IsAborted() {
		t.Fatalf("status = %d aborted = %v", w.Code, c.IsAborted())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["request_id"] != "rid-1" || body["success"] != false || body["message"] != "resource not found" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("data must be omitted on errors")
	}
}

func TestJSON_DefaultsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	JSON(c, 0, map[string]string{"name": "Ana"}, "ok", ListMeta{Count: 1})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Meta    ListMeta          `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Data["name"] != "Ana" || body.Meta.Count != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}
