package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/jeremyhahn/go-argon2/pkg/logging"
)

func TestWriteJSON(t *testing.T) {

	writer := NewResponseWriter(logging.NoopLogger())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/platform", nil)
	w := httptest.NewRecorder()
	writer.Success200(w, r, map[string]string{"name": "linux"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response WebServiceResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, map[string]interface{}{"name": "linux"}, response.Payload)
}

func TestWriteYAML(t *testing.T) {

	writer := NewResponseWriter(logging.NoopLogger())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/platform", nil)
	r.Header.Set("Accept", "application/yaml")
	w := httptest.NewRecorder()
	writer.Error400(w, r, errors.New("argon2: invalid argument"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var response WebServiceResponse
	require.Nil(t, yaml.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "argon2: invalid argument", response.Error)
}

func TestErrorCodes(t *testing.T) {

	writer := NewResponseWriter(logging.NoopLogger())
	err := errors.New("failed")

	tests := []struct {
		write    func(w http.ResponseWriter, r *http.Request)
		expected int
	}{
		{func(w http.ResponseWriter, r *http.Request) { writer.Error404(w, r, err) }, http.StatusNotFound},
		{func(w http.ResponseWriter, r *http.Request) { writer.Error422(w, r, err, 1) }, http.StatusUnprocessableEntity},
		{func(w http.ResponseWriter, r *http.Request) { writer.Error500(w, r, err) }, http.StatusInternalServerError},
	}

	for _, test := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		test.write(w, r)
		assert.Equal(t, test.expected, w.Code)
	}
}
