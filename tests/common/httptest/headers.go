//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks a set of expected response headers, CORS headers
// mostly, against a recorded response.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()

	for key, want := range expected {
		assert.Equal(t, want, w.Header().Get(key), "header %s mismatch", key)
	}
}
