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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPeakHour(t *testing.T) {
	peakHours := map[int]bool{
		7: true, 8: true, 9: true,
		17: true, 18: true, 19: true, 20: true, 21: true,
	}

	for hour := 0; hour < 24; hour++ {
		assert.Equal(t, peakHours[hour], IsPeakHour(hour), "hour %d", hour)
	}
}

// flatHourly builds 24 hourly records with the same consumption
func flatHourly(kwh float64) []HourlyRecord {
	records := make([]HourlyRecord, 0, 24)
	for hour := 0; hour < 24; hour++ {
		records = append(records, HourlyRecord{
			Hour:        hour,
			Consumption: kwh,
			Time:        fmt.Sprintf("%02d:00", hour),
			Period:      PeriodForHour(hour),
		})
	}
	return records
}

func TestCalculateTimeOfUseSavings(t *testing.T) {
	rates := EnergyRates{Standard: 0.12, Peak: 0.18, OffPeak: 0.08}

	// 24 hours at 1 kWh: 8 peak, 16 off-peak
	tou := CalculateTimeOfUseSavings(flatHourly(1.0), rates)

	assert.InDelta(t, 8.0, tou.PeakUsage, 0.001)
	assert.InDelta(t, 16.0, tou.OffPeakUsage, 0.001)
	assert.InDelta(t, 2.88, tou.FlatRateCost, 0.001)
	assert.InDelta(t, 2.72, tou.TOUCost, 0.001)
	assert.InDelta(t, 0.16, tou.Savings, 0.001)
	assert.InDelta(t, 5.5556, tou.SavingsPercentage, 0.001)
}

func TestCalculateTimeOfUseSavingsZeroUsage(t *testing.T) {
	rates := EnergyRates{Standard: 0.12, Peak: 0.18, OffPeak: 0.08}

	tou := CalculateTimeOfUseSavings(flatHourly(0), rates)

	assert.Zero(t, tou.FlatRateCost)
	assert.Zero(t, tou.TOUCost)
	assert.Zero(t, tou.Savings)
	assert.Zero(t, tou.SavingsPercentage)
}

func TestCalculateTimeOfUseSavingsPeakHeavy(t *testing.T) {
	rates := EnergyRates{Standard: 0.12, Peak: 0.18, OffPeak: 0.08}

	// All consumption during peak hours: TOU costs more than flat rate
	records := flatHourly(0)
	for i := range records {
		if IsPeakHour(records[i].Hour) {
			records[i].Consumption = 2.0
		}
	}

	tou := CalculateTimeOfUseSavings(records, rates)

	assert.InDelta(t, 16.0, tou.PeakUsage, 0.001)
	assert.Zero(t, tou.OffPeakUsage)
	assert.Negative(t, tou.Savings)
}
