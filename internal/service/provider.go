// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"

	"github.com/wneessen/weather-cli/internal/config"
	"github.com/wneessen/weather-cli/internal/http"
	"github.com/wneessen/weather-cli/internal/logger"
	"github.com/wneessen/weather-cli/internal/weather"
	"github.com/wneessen/weather-cli/internal/weather/provider/openweathermap"
)

func (s *Service) selectWeatherProvider(conf *config.Config, log *logger.Logger) (weather.Provider, error) {
	provider, err := openweathermap.New(http.New(log), log, conf.BaseURL, conf.APIKey, conf.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenWeatherMap provider: %w", err)
	}
	return provider, nil
}
