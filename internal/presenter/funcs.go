// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"

	"github.com/wneessen/weather-cli/internal/terminal"
)

// TemperatureIcon returns the icon of the bucket the temperature (in °C) falls into.
func TemperatureIcon(temp float64) string {
	for _, bucket := range TemperatureIcons {
		if temp < bucket.below {
			return bucket.icon
		}
	}
	return IconHot
}

// ConditionColor returns the color for a condition description. The match is exact and
// case-sensitive.
func ConditionColor(description string) terminal.Color {
	if c, ok := ConditionColors[description]; ok {
		return c
	}
	return terminal.ColorDefault
}

func (p *Presenter) loc(key string) string {
	raw, ok := i18nVars[key]
	if !ok {
		return key
	}
	if p.localizer == nil {
		return string(raw)
	}
	return p.localizer.Get(raw)
}

func floatFormat(val float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, val)
}
