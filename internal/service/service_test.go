// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/vorlif/spreak"

	"github.com/wneessen/weather-cli/internal/config"
	"github.com/wneessen/weather-cli/internal/http"
	"github.com/wneessen/weather-cli/internal/i18n"
	"github.com/wneessen/weather-cli/internal/logger"
	"github.com/wneessen/weather-cli/internal/presenter"
	"github.com/wneessen/weather-cli/internal/terminal"
	"github.com/wneessen/weather-cli/internal/testhelper"
	"github.com/wneessen/weather-cli/internal/weather"
	"github.com/wneessen/weather-cli/internal/weather/provider/openweathermap"
)

const (
	promptCity     = "Please enter the name of the city:"
	promptCountry  = "Please enter the country code (e.g., US for United States):"
	promptContinue = "Do you want to search for weather in another city? (y/n):"
	goodbye        = "Thank you for using our software!"

	parisFile = "../../testdata/owm_paris.json"
)

type result struct {
	report *weather.Report
	err    error
}

// mockProvider answers lookups with a scripted sequence of results.
type mockProvider struct {
	results []result
	queries []weather.Query
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) GetWeather(_ context.Context, query weather.Query) (*weather.Report, error) {
	m.queries = append(m.queries, query)
	if len(m.queries) > len(m.results) {
		return nil, errors.New("no scripted result left")
	}
	res := m.results[len(m.queries)-1]
	return res.report, res.err
}

func TestNew(t *testing.T) {
	t.Run("new service succeeds", func(t *testing.T) {
		serv, err := New(testConfig(), testLogger(), testLocalizer(t))
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		if serv.provider == nil {
			t.Fatal("expected weather provider to be set")
		}
		if serv.provider.Name() != "openweathermap" {
			t.Errorf("expected provider to be openweathermap, got %s", serv.provider.Name())
		}
	})
	t.Run("new service with missing dependencies fails", func(t *testing.T) {
		lang := testLocalizer(t)
		if _, err := New(nil, testLogger(), lang); err == nil {
			t.Error("expected service creation without config to fail")
		}
		if _, err := New(testConfig(), nil, lang); err == nil {
			t.Error("expected service creation without logger to fail")
		}
		if _, err := New(testConfig(), testLogger(), nil); err == nil {
			t.Error("expected service creation without localizer to fail")
		}
	})
	t.Run("new service without api key fails", func(t *testing.T) {
		conf := testConfig()
		conf.APIKey = ""
		if _, err := New(conf, testLogger(), testLocalizer(t)); err == nil {
			t.Error("expected service creation to fail")
		}
	})
}

func TestService_Run(t *testing.T) {
	t.Run("successful lookups continue on y and stop on n", func(t *testing.T) {
		provider := &mockProvider{results: []result{
			{report: testReport(t, "Paris", "clear sky", 22.5)},
			{report: testReport(t, "Berlin", "rain", 8)},
		}}
		serv, out := testService(t, "Paris\nFR\ny\n  Berlin \n DE \nn\n", provider)
		if err := serv.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %s", err)
		}

		if len(provider.queries) != 2 {
			t.Fatalf("expected 2 lookups, got %d", len(provider.queries))
		}
		if provider.queries[1] != (weather.Query{City: "Berlin", CountryCode: "DE"}) {
			t.Errorf("expected trimmed query for Berlin, got %+v", provider.queries[1])
		}
		output := out.String()
		for _, want := range []string{
			"Welcome to Weather Station!",
			"Weather in Paris: clear sky " + presenter.IconWarm,
			"Weather in Berlin: rain " + presenter.IconCold,
			goodbye,
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got %q", want, output)
			}
		}
		if got := strings.Count(output, promptContinue); got != 2 {
			t.Errorf("expected continuation prompt twice, got %d", got)
		}
	})
	t.Run("failed lookup re-prompts without asking to continue", func(t *testing.T) {
		provider := &mockProvider{results: []result{
			{err: errors.New("city not found")},
			{report: testReport(t, "Paris", "clear sky", 22.5)},
		}}
		serv, out := testService(t, "Pariss\nFR\nParis\nFR\nno\n", provider)
		if err := serv.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %s", err)
		}

		if len(provider.queries) != 2 {
			t.Fatalf("expected 2 lookups, got %d", len(provider.queries))
		}
		lines := strings.Split(out.String(), "\n")
		errIdx := -1
		for i, line := range lines {
			if line == "Error: city not found" {
				errIdx = i
				break
			}
		}
		if errIdx == -1 {
			t.Fatalf("expected error line in output, got %q", out.String())
		}
		if lines[errIdx+1] != promptCity {
			t.Errorf("expected city prompt after error, got %q", lines[errIdx+1])
		}
		if got := strings.Count(out.String(), promptContinue); got != 1 {
			t.Errorf("expected continuation prompt once, got %d", got)
		}
	})
	t.Run("continuation answers", func(t *testing.T) {
		tests := []struct {
			answer      string
			wantLookups int
		}{
			{"y", 2},
			{"Y", 2},
			{" y ", 2},
			{"", 1},
			{"yes", 1},
			{"n", 1},
			{"no", 1},
			{"garbage", 1},
		}
		for _, tc := range tests {
			t.Run("answer "+tc.answer, func(t *testing.T) {
				provider := &mockProvider{results: []result{
					{report: testReport(t, "Paris", "clear sky", 22.5)},
					{report: testReport(t, "Paris", "clear sky", 22.5)},
				}}
				serv, _ := testService(t, "Paris\nFR\n"+tc.answer+"\nParis\nFR\nn\n", provider)
				if err := serv.Run(context.Background()); err != nil {
					t.Fatalf("run failed: %s", err)
				}
				if len(provider.queries) != tc.wantLookups {
					t.Errorf("expected %d lookups, got %d", tc.wantLookups, len(provider.queries))
				}
			})
		}
	})
	t.Run("end of input ends the session", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{"before city", ""},
			{"before country code", "Paris\n"},
			{"before continuation", "Paris\nFR\n"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				provider := &mockProvider{results: []result{{report: testReport(t, "Paris", "clear sky", 22.5)}}}
				serv, out := testService(t, tc.input, provider)
				if err := serv.Run(context.Background()); err != nil {
					t.Fatalf("run failed: %s", err)
				}
				if !strings.HasSuffix(out.String(), goodbye+"\n") {
					t.Errorf("expected output to end with goodbye, got %q", out.String())
				}
			})
		}
	})
	t.Run("cancelled context ends the session", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		serv, _ := testService(t, "Paris\nFR\n", &mockProvider{})
		if err := serv.Run(ctx); err != nil {
			t.Errorf("expected cancelled session to end without error, got %s", err)
		}
	})
	t.Run("read failures are returned", func(t *testing.T) {
		serv, _ := testService(t, "", &mockProvider{})
		serv.term = terminal.New(failReader{}, io.Discard, true)
		if err := serv.Run(context.Background()); err == nil {
			t.Error("expected run to fail")
		}
	})
	t.Run("paris round trip through the OpenWeatherMap provider", func(t *testing.T) {
		serv, out := testService(t, "Paris\nFR\nn\n", nil)
		serv.provider = testOpenWeatherMap(t, testhelper.FileResponse(t, 200, parisFile))
		if err := serv.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %s", err)
		}
		for _, want := range []string{"Weather in Paris: clear sky " + presenter.IconWarm, "22.5°C"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("expected output to contain %q, got %q", want, out.String())
			}
		}
	})
	t.Run("unreachable network is reported and the next city is asked for", func(t *testing.T) {
		calls := 0
		serv, out := testService(t, "Paris\nFR\n", nil)
		serv.provider = testOpenWeatherMap(t, func(*stdhttp.Request) (*stdhttp.Response, error) {
			calls++
			return nil, errors.New("dial tcp: connect: network is unreachable")
		})
		if err := serv.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %s", err)
		}
		if calls != 1 {
			t.Errorf("expected exactly one request, got %d", calls)
		}
		output := out.String()
		if !strings.Contains(output, "network is unreachable") {
			t.Errorf("expected output to contain the cause, got %q", output)
		}
		if strings.Contains(output, promptContinue) {
			t.Error("did not expect the continuation prompt after a failed lookup")
		}
		if got := strings.Count(output, promptCity); got != 2 {
			t.Errorf("expected city prompt twice, got %d", got)
		}
	})
}

func TestContinueRequested(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"  y\t", true},
		{"", false},
		{"yes", false},
		{"n", false},
		{"no", false},
		{"yy", false},
		{"j", false},
	}
	for _, tc := range tests {
		if got := ContinueRequested(tc.answer); got != tc.want {
			t.Errorf("ContinueRequested(%q): expected %t, got %t", tc.answer, tc.want, got)
		}
	}
}

func testService(t *testing.T, input string, provider weather.Provider) (*Service, *bytes.Buffer) {
	t.Helper()
	serv, err := New(testConfig(), testLogger(), testLocalizer(t))
	if err != nil {
		t.Fatalf("failed to create service: %s", err)
	}
	out := bytes.NewBuffer(nil)
	serv.term = terminal.New(strings.NewReader(input), out, true)
	if provider != nil {
		serv.provider = provider
	}
	return serv, out
}

func testOpenWeatherMap(t *testing.T, fn func(*stdhttp.Request) (*stdhttp.Response, error)) weather.Provider {
	t.Helper()
	log := testLogger()
	client := http.New(log)
	client.Transport = testhelper.MockRoundTripper{Fn: fn}
	provider, err := openweathermap.New(client, log, config.DefaultBaseURL, "test-key", time.Second)
	if err != nil {
		t.Fatalf("failed to create provider: %s", err)
	}
	return provider
}

func testConfig() *config.Config {
	return &config.Config{
		APIKey:   "test-key",
		BaseURL:  config.DefaultBaseURL,
		Timeout:  time.Second,
		LogLevel: slog.LevelError,
		NoColor:  true,
	}
}

func testLogger() *logger.Logger {
	return logger.NewLogger(slog.LevelError, io.Discard)
}

func testLocalizer(t *testing.T) *spreak.Localizer {
	t.Helper()
	lang, err := i18n.New("en")
	if err != nil {
		t.Fatalf("failed to create localizer: %s", err)
	}
	return lang
}

func testReport(t *testing.T, location, description string, temp float64) *weather.Report {
	t.Helper()
	report, err := weather.NewReport(location, []weather.Condition{{Description: description}}, temp, 60, 1012, 3.2)
	if err != nil {
		t.Fatalf("failed to build report: %s", err)
	}
	return report
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("intentionally failing") }
