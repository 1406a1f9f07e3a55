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

// Peak schedule: 07:00-09:00 and 17:00-21:00, both ranges inclusive,
// covering hours 7, 8, 9, 17, 18, 19, 20 and 21.
const (
	morningPeakStart = 7
	morningPeakEnd   = 9
	eveningPeakStart = 17
	eveningPeakEnd   = 21
)

// IsPeakHour reports whether the given hour falls in the peak schedule
func IsPeakHour(hour int) bool {
	if hour >= morningPeakStart && hour <= morningPeakEnd {
		return true
	}
	return hour >= eveningPeakStart && hour <= eveningPeakEnd
}

// CalculateTimeOfUseSavings partitions an hourly series into peak and
// off-peak usage, costs each partition at its rate and reports the delta
// against a flat-rate baseline. A zero flat-rate total yields a zero
// savings percentage.
func CalculateTimeOfUseSavings(hourly []HourlyRecord, rates EnergyRates) TimeOfUseSavings {
	var peakUsage, offPeakUsage float64
	for _, r := range hourly {
		if IsPeakHour(r.Hour) {
			peakUsage += r.Consumption
		} else {
			offPeakUsage += r.Consumption
		}
	}

	flatTotal := (peakUsage + offPeakUsage) * rates.Standard
	touTotal := peakUsage*rates.Peak + offPeakUsage*rates.OffPeak
	savings := flatTotal - touTotal

	savingsPercentage := 0.0
	if flatTotal > 0 {
		savingsPercentage = (savings / flatTotal) * 100
	}

	return TimeOfUseSavings{
		FlatRateCost:      flatTotal,
		TOUCost:           touTotal,
		Savings:           savings,
		SavingsPercentage: savingsPercentage,
		PeakUsage:         peakUsage,
		OffPeakUsage:      offPeakUsage,
	}
}
