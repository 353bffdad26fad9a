// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"strings"

	"github.com/vorlif/spreak"

	"github.com/wneessen/weather-cli/internal/terminal"
	"github.com/wneessen/weather-cli/internal/weather"
)

// DisplayBlock is the rendered form of a weather report.
type DisplayBlock struct {
	Text  string
	Color terminal.Color
}

// Presenter turns weather reports into display blocks. It performs no I/O.
type Presenter struct {
	localizer *spreak.Localizer
}

// New returns a Presenter. A nil localizer renders the English texts.
func New(localizer *spreak.Localizer) *Presenter {
	return &Presenter{localizer: localizer}
}

// Render formats the report. The color is chosen by the primary condition, the icon by
// the temperature.
func (p *Presenter) Render(report *weather.Report) DisplayBlock {
	description := report.PrimaryCondition().Description

	lines := []string{
		fmt.Sprintf(p.loc("headline"), report.LocationName, description, TemperatureIcon(report.Temperature)),
		fmt.Sprintf("> %s: %s°C,", p.loc("temp"), floatFormat(report.Temperature, 1)),
		fmt.Sprintf("> %s: %s%%,", p.loc("humidity"), floatFormat(report.Humidity, 1)),
		fmt.Sprintf("> %s: %s hPa,", p.loc("pressure"), floatFormat(report.Pressure, 1)),
		fmt.Sprintf("> %s: %s m/s", p.loc("windspeed"), floatFormat(report.WindSpeed, 1)),
	}

	return DisplayBlock{
		Text:  strings.Join(lines, "\n"),
		Color: ConditionColor(description),
	}
}
