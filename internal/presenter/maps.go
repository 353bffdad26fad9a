// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"math"

	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/weather-cli/internal/terminal"
)

const (
	IconFreezing = "❄️"
	IconCold     = "☁️"
	IconMild     = "⛅"
	IconWarm     = "🌤️"
	IconHot      = "🔥"
)

// temperatureIcon assigns an icon to all temperatures below a threshold.
type temperatureIcon struct {
	below float64
	icon  string
}

// TemperatureIcons is evaluated top to bottom, the first matching bucket wins. Each bucket
// includes its lower bound and excludes its upper bound.
var TemperatureIcons = []temperatureIcon{
	{below: 0, icon: IconFreezing},
	{below: 10, icon: IconCold},
	{below: 20, icon: IconMild},
	{below: 30, icon: IconWarm},
	{below: math.Inf(1), icon: IconHot},
}

// ConditionColors maps the exact, lowercase condition descriptions of the provider to a
// display color. Descriptions not listed here are displayed without color.
var ConditionColors = map[string]terminal.Color{
	"clear sky": terminal.ColorBrightYellow,

	"few clouds":       terminal.ColorBrightBlue,
	"scattered clouds": terminal.ColorBrightBlue,
	"broken clouds":    terminal.ColorBrightBlue,

	"overcast clouds": terminal.ColorDimmed,
	"mist":            terminal.ColorDimmed,
	"haze":            terminal.ColorDimmed,
	"smoke":           terminal.ColorDimmed,
	"sand":            terminal.ColorDimmed,
	"dust":            terminal.ColorDimmed,
	"fog":             terminal.ColorDimmed,
	"squalls":         terminal.ColorDimmed,

	"shower rain":  terminal.ColorBrightCyan,
	"rain":         terminal.ColorBrightCyan,
	"thunderstorm": terminal.ColorBrightCyan,
	"snow":         terminal.ColorBrightCyan,
}

var i18nVars = map[string]localize.MsgID{
	"headline":  "Weather in %s: %s %s",
	"temp":      "Temperature",
	"humidity":  "Humidity",
	"pressure":  "Pressure",
	"windspeed": "Wind Speed",
}
