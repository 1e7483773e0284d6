package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	s := New(false)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(false)
	rec := doJSON(t, s, "/metrics", MetricsRequest{
		FileName: "sample.py",
		Content:  "def f(x):\n    if x:\n        return 1\n    return 2\n",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		FileName string `json:"file_name"`
		Language string `json:"language"`
		Spaces   struct {
			Name   string `json:"name"`
			Kind   string `json:"kind"`
			Spaces []struct {
				Name    string `json:"name"`
				Metrics struct {
					Cyclomatic struct {
						Sum float64 `json:"sum"`
					} `json:"cyclomatic"`
				} `json:"metrics"`
			} `json:"spaces"`
		} `json:"spaces"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "sample.py", resp.FileName)
	assert.Equal(t, "python", resp.Language)
	assert.Equal(t, "sample.py", resp.Spaces.Name)
	require.Len(t, resp.Spaces.Spaces, 1)
	assert.Equal(t, "f", resp.Spaces.Spaces[0].Name)
	assert.Equal(t, 2.0, resp.Spaces.Spaces[0].Metrics.Cyclomatic.Sum)
}

func TestMetricsUnitStripsNestedSpaces(t *testing.T) {
	s := New(false)
	rec := doJSON(t, s, "/metrics", MetricsRequest{
		FileName: "sample.py",
		Content:  "def f():\n    pass\n",
		Unit:     true,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Spaces struct {
			Spaces []json.RawMessage `json:"spaces"`
		} `json:"spaces"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Spaces.Spaces)
}

func TestMetricsUnknownLanguage(t *testing.T) {
	s := New(false)
	rec := doJSON(t, s, "/metrics", MetricsRequest{
		FileName: "notes.txt",
		Content:  "hello",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMetricsBadSelection(t *testing.T) {
	s := New(false)
	rec := doJSON(t, s, "/metrics", MetricsRequest{
		FileName: "a.py",
		Content:  "x = 1\n",
		Metrics:  []string{"bogus"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsMalformedBody(t *testing.T) {
	s := New(false)
	req := httptest.NewRequest(http.MethodPost, "/metrics", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpsEndpoint(t *testing.T) {
	s := New(false)
	rec := doJSON(t, s, "/ops", OpsRequest{
		FileName: "sample.py",
		Content:  "def f(a):\n    return a + 1\n",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Ops struct {
			Name      string   `json:"name"`
			Operators []string `json:"operators"`
			Operands  []string `json:"operands"`
		} `json:"ops"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "sample.py", resp.Ops.Name)
	assert.Contains(t, resp.Ops.Operators, "+")
	assert.Contains(t, resp.Ops.Operands, "a")
}
