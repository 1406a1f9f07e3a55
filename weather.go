// Copyright 2025 The wattdash Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"
)

// weatherConditions are the possible condition labels with their relative
// draw weights
var weatherConditions = []struct {
	Label  string
	Weight int
}{
	{"Sunny", 40},
	{"Partly Cloudy", 30},
	{"Cloudy", 20},
	{"Rainy", 8},
	{"Stormy", 2},
}

// GenerateWeather synthesizes daily weather context for the same inclusive
// date range as GenerateDaily. Temperatures follow a seasonal sine curve
// around 70F; degree days use the usual 65F heating and 75F cooling bases.
func (g *Generator) GenerateWeather(days int) ([]WeatherRecord, error) {
	if days <= 0 {
		return nil, &ValidationError{
			Field:   "days",
			Value:   fmt.Sprintf("%d", days),
			Message: "day count must be positive",
		}
	}

	end := g.now()
	start := end.AddDate(0, 0, -days)

	records := make([]WeatherRecord, 0, days+1)
	for i := 0; i <= days; i++ {
		date := start.AddDate(0, 0, i)
		dayOfYear := float64(date.YearDay())

		baseTemp := 70 + 25*math.Sin(2*math.Pi*dayOfYear/365)
		temp := baseTemp + g.uniform(-10, 10)

		records = append(records, WeatherRecord{
			Date:              date,
			Temperature:       math.Round(temp*10) / 10,
			Humidity:          math.Round(g.uniform(30, 80)*10) / 10,
			Conditions:        g.drawCondition(),
			HeatingDegreeDays: math.Max(0, 65-temp),
			CoolingDegreeDays: math.Max(0, temp-75),
		})
	}

	g.logger.LogGenerationStage("weather_series", len(records))

	return records, nil
}

// drawCondition makes a weighted draw from the condition table
func (g *Generator) drawCondition() string {
	total := 0
	for _, c := range weatherConditions {
		total += c.Weight
	}

	pick := g.rng.Intn(total)
	for _, c := range weatherConditions {
		pick -= c.Weight
		if pick < 0 {
			return c.Label
		}
	}

	return weatherConditions[0].Label
}
