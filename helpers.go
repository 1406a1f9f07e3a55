// Copyright 2025 The wattdash Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
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

	"github.com/dustin/go-humanize"
)

// FormatCurrency formats a value as dollars with cents and thousands grouping
func FormatCurrency(value float64) string {
	return "$" + humanize.FormatFloat("#,###.##", value)
}

// FormatCurrencyWhole formats a value as whole dollars
func FormatCurrencyWhole(value float64) string {
	return "$" + humanize.Comma(int64(math.Round(value)))
}

// FormatEnergy formats a kWh amount with one decimal place
func FormatEnergy(kwh float64) string {
	return humanize.FormatFloat("#,###.#", kwh) + " kWh"
}

// FormatCarbon formats a CO2 amount in pounds
func FormatCarbon(lbs float64) string {
	return humanize.FormatFloat("#,###.#", lbs) + " lbs CO2"
}

// FormatPercentage formats a value as a percentage
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
