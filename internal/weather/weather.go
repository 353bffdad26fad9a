// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrInvalidResponse is returned when a provider response does not match the expected shape.
	ErrInvalidResponse = errors.New("invalid weather response")

	// ErrNoConditions is returned when a report would be built without any weather condition.
	ErrNoConditions = errors.New("weather report contains no conditions")

	// ErrUnexpectedStatus is returned when a provider answers with a non-2xx status code.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	GetWeather(ctx context.Context, query Query) (*Report, error)
}

// Query identifies the place a weather report is requested for.
type Query struct {
	City        string
	CountryCode string
}

// Report is the current weather for a single place. It is not modified after it has
// been built by NewReport.
type Report struct {
	LocationName string
	Conditions   []Condition
	Temperature  float64
	Humidity     float64
	Pressure     float64
	WindSpeed    float64
}

// Condition describes the state of the sky or precipitation, e.g. "clear sky".
type Condition struct {
	Description string
}

// NewQuery returns a Query with surrounding whitespace removed from city and country code.
// Empty values are kept as they are, the provider decides whether they are valid.
func NewQuery(city, countryCode string) Query {
	return Query{
		City:        strings.TrimSpace(city),
		CountryCode: strings.TrimSpace(countryCode),
	}
}

// String returns the query in the "{city},{country code}" notation.
func (q Query) String() string {
	return q.City + "," + q.CountryCode
}

// NewReport builds a Report. At least one condition is required.
func NewReport(location string, conditions []Condition, temperature, humidity, pressure,
	windSpeed float64,
) (*Report, error) {
	if len(conditions) == 0 {
		return nil, ErrNoConditions
	}
	conds := make([]Condition, len(conditions))
	copy(conds, conditions)

	return &Report{
		LocationName: location,
		Conditions:   conds,
		Temperature:  temperature,
		Humidity:     humidity,
		Pressure:     pressure,
		WindSpeed:    windSpeed,
	}, nil
}

// PrimaryCondition returns the first condition of the report. Only this one is displayed.
func (r *Report) PrimaryCondition() Condition {
	if r == nil || len(r.Conditions) == 0 {
		return Condition{}
	}
	return r.Conditions[0]
}
