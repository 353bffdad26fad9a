// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper provides test doubles shared by the package tests.
package testhelper

import (
	"net/http"
	"os"
	"testing"
)

const (
	// TestOnlineAPIURL is a public endpoint that is only contacted by integration tests.
	TestOnlineAPIURL = "https://api.openweathermap.org/data/2.5/weather"

	integrationEnv = "PERFORM_INTEGRATION_TESTS"
)

// MockRoundTripper is a http.RoundTripper that answers every request with Fn.
type MockRoundTripper struct {
	Fn func(*http.Request) (*http.Response, error)
}

func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// PerformIntegrationTests skips the calling test unless online tests were requested.
func PerformIntegrationTests(t *testing.T) {
	t.Helper()
	if os.Getenv(integrationEnv) == "" {
		t.Skipf("skipping online test, set %s to enable", integrationEnv)
	}
}

// FileResponse returns a RoundTripper func that answers with the given status code and
// the contents of the given file.
func FileResponse(t *testing.T, code int, file string) func(*http.Request) (*http.Response, error) {
	t.Helper()
	return func(*http.Request) (*http.Response, error) {
		data, err := os.Open(file)
		if err != nil {
			t.Fatalf("failed to open response file: %s", err)
		}
		return &http.Response{
			StatusCode: code,
			Body:       data,
			Header:     make(http.Header),
		}, nil
	}
}
