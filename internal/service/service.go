// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vorlif/spreak"

	"github.com/wneessen/weather-cli/internal/config"
	"github.com/wneessen/weather-cli/internal/logger"
	"github.com/wneessen/weather-cli/internal/presenter"
	"github.com/wneessen/weather-cli/internal/terminal"
	"github.com/wneessen/weather-cli/internal/weather"
)

// ContinueAnswer is the only answer that starts another lookup.
const ContinueAnswer = "y"

// errInputClosed signals that the session ended because no more input is available.
var errInputClosed = errors.New("input closed")

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	t         *spreak.Localizer
	provider  weather.Provider
	presenter *presenter.Presenter
	term      *terminal.Terminal
}

func New(conf *config.Config, log *logger.Logger, t *spreak.Localizer) (*Service, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if t == nil {
		return nil, errors.New("localizer is required")
	}

	service := &Service{
		config:    conf,
		logger:    log,
		t:         t,
		presenter: presenter.New(t),
		term:      terminal.NewStdio(conf.NoColor),
	}

	provider, err := service.selectWeatherProvider(conf, log)
	if err != nil {
		return nil, err
	}
	service.provider = provider

	return service, nil
}

// Run drives the interactive session until the user declines to continue, the input ends or
// ctx is cancelled. Failed lookups are reported and followed by the next lookup right away,
// only successful lookups ask whether to continue.
func (s *Service) Run(ctx context.Context) error {
	if err := s.term.Banner(s.t.Get("Welcome to Weather Station!"), terminal.ColorBrightYellow); err != nil {
		return err
	}

	for {
		query, err := s.readQuery(ctx)
		if err != nil {
			return s.finish(err)
		}

		report, err := s.provider.GetWeather(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return s.finish(ctx.Err())
			}
			s.logger.Debug("weather lookup failed", logger.Err(err), slog.String("provider", s.provider.Name()),
				slog.String("query", query.String()))
			if err = s.term.PrintError(fmt.Sprintf(s.t.Get("Error: %s"), err)); err != nil {
				return err
			}
			continue
		}

		block := s.presenter.Render(report)
		if err = s.term.Println(block.Text, block.Color); err != nil {
			return err
		}

		answer, err := s.prompt(ctx, s.t.Get("Do you want to search for weather in another city? (y/n):"))
		if err != nil {
			return s.finish(err)
		}
		if !ContinueRequested(answer) {
			return s.finish(nil)
		}
	}
}

// ContinueRequested reports whether the answer to the continuation prompt asks for
// another lookup.
func ContinueRequested(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == ContinueAnswer
}

func (s *Service) readQuery(ctx context.Context) (weather.Query, error) {
	city, err := s.prompt(ctx, s.t.Get("Please enter the name of the city:"))
	if err != nil {
		return weather.Query{}, err
	}
	country, err := s.prompt(ctx, s.t.Get("Please enter the country code (e.g., US for United States):"))
	if err != nil {
		return weather.Query{}, err
	}
	return weather.NewQuery(city, country), nil
}

func (s *Service) prompt(ctx context.Context, text string) (string, error) {
	answer, err := s.term.Prompt(ctx, text)
	if errors.Is(err, io.EOF) {
		return "", errInputClosed
	}
	return answer, err
}

// finish ends the session. The end of input and a cancelled context are regular ways
// to leave the session, every other error is returned.
func (s *Service) finish(err error) error {
	switch {
	case err == nil, errors.Is(err, errInputClosed):
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Debug("session cancelled", logger.Err(err))
		return nil
	default:
		return err
	}
	return s.term.Println(s.t.Get("Thank you for using our software!"), terminal.ColorDefault)
}
