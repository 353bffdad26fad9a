// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openweathermap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wneessen/weather-cli/internal/http"
	"github.com/wneessen/weather-cli/internal/logger"
	"github.com/wneessen/weather-cli/internal/weather"
)

const (
	name        = "openweathermap"
	apiEndpoint = "weather"
	apiTimeout  = time.Second * 10
	units       = "metric"
)

type OpenWeatherMap struct {
	apikey   string
	endpoint string
	timeout  time.Duration
	http     *http.Client
	log      *logger.Logger
	validate *validator.Validate
}

// response mirrors the subset of the current weather document that is displayed. All
// fields are pointers, so that a missing value can be told apart from a zero value.
type response struct {
	Weather []condition `json:"weather" validate:"required,min=1,dive"`
	Main    *mainData   `json:"main" validate:"required"`
	Wind    *windData   `json:"wind" validate:"required"`
	Name    *string     `json:"name" validate:"required"`

	// Only present in error documents
	Code    any    `json:"cod"`
	Message string `json:"message"`
}

type condition struct {
	Description *string `json:"description" validate:"required"`
}

type mainData struct {
	Temp     *float64 `json:"temp" validate:"required"`
	Humidity *float64 `json:"humidity" validate:"required"`
	Pressure *float64 `json:"pressure" validate:"required"`
}

type windData struct {
	Speed *float64 `json:"speed" validate:"required"`
}

// New returns an OpenWeatherMap provider that queries the current weather endpoint below
// baseURL. A timeout of zero selects the default timeout.
func New(http *http.Client, log *logger.Logger, baseURL, apikey string, timeout time.Duration) (*OpenWeatherMap, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if apikey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	endpoint, err := url.JoinPath(baseURL, apiEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to build API endpoint: %w", err)
	}
	if timeout <= 0 {
		timeout = apiTimeout
	}

	return &OpenWeatherMap{
		apikey:   apikey,
		endpoint: endpoint,
		timeout:  timeout,
		http:     http,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (o *OpenWeatherMap) Name() string {
	return name
}

// GetWeather performs exactly one request for the current weather at the queried place.
func (o *OpenWeatherMap) GetWeather(ctx context.Context, q weather.Query) (*weather.Report, error) {
	res := new(response)

	query := url.Values{}
	query.Set("q", q.String())
	query.Set("units", units)
	query.Set("appid", o.apikey)

	o.log.Debug("requesting current weather", slog.String("provider", name),
		slog.String("city", q.City), slog.String("country", q.CountryCode))
	code, err := o.http.GetWithTimeout(ctx, o.endpoint, res, query, nil, o.timeout)
	if err != nil {
		if errors.Is(err, http.ErrUnexpectedStatus) {
			return nil, fmt.Errorf("OpenWeatherMap API returned non-positive response code %d: %w", code,
				weather.ErrUnexpectedStatus)
		}
		return nil, fmt.Errorf("failed to retrieve weather data from OpenWeatherMap API: %w", err)
	}
	if !http.IsSuccess(code) {
		msg := res.Message
		if msg == "" {
			msg = "no error message given"
		}
		return nil, fmt.Errorf("OpenWeatherMap API returned non-positive response code %d: %s: %w", code, msg,
			weather.ErrUnexpectedStatus)
	}

	return o.report(res)
}

// report validates the decoded response and turns it into a weather.Report.
func (o *OpenWeatherMap) report(res *response) (*weather.Report, error) {
	if err := o.validate.Struct(res); err != nil {
		return nil, fmt.Errorf("%w: %w", weather.ErrInvalidResponse, err)
	}

	conditions := make([]weather.Condition, 0, len(res.Weather))
	for _, cond := range res.Weather {
		conditions = append(conditions, weather.Condition{Description: *cond.Description})
	}

	return weather.NewReport(*res.Name, conditions, *res.Main.Temp, *res.Main.Humidity, *res.Main.Pressure,
		*res.Wind.Speed)
}
