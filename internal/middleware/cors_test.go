package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	allowedOrigins := []string{"https://fitforge.app/", "http://localhost:3000"}

	testCases := []struct {
		name              string
		origin            string
		userAgent         string
		path              string
		expectAllowOrigin string
		expectedStatus    int
	}{
		{
			name:              "AllowedOrigin",
			origin:            "https://fitforge.app",
			path:              "/gymstats/catalog",
			expectAllowOrigin: "https://fitforge.app",
			expectedStatus:    http.StatusOK,
		},
		{
			name:              "AllowedLocalOrigin",
			origin:            "http://localhost:3000",
			path:              "/gymstats/catalog",
			expectAllowOrigin: "http://localhost:3000",
			expectedStatus:    http.StatusOK,
		},
		{
			name:           "NotAllowedOrigin",
			origin:         "https://www.notallowed.com",
			path:           "/gymstats/catalog",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "AllowedUserAgent",
			userAgent:      "FitForge/1.2",
			path:           "/gymstats/sessions/1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NotAllowedUserAgent",
			userAgent:      "UnknownAgent/1.0",
			path:           "/gymstats/sessions/1",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:              "McpWithoutOrigin",
			path:              "/mcp",
			expectAllowOrigin: "*",
			expectedStatus:    http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req, err := http.NewRequest("GET", tc.path, nil)
			require.NoError(t, err)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			req.Header.Set("User-Agent", tc.userAgent)

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			handler := Cors(allowedOrigins)(nextHandler)

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Unexpected status code")
			assert.Equal(t, tc.expectAllowOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
