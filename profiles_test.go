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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupProfile(t *testing.T) {
	tests := []struct {
		name          string
		baseDailyKWh  float64
		baseHourlyKWh float64
		appliances    int
	}{
		{name: HouseSmallApartment, baseDailyKWh: 15, baseHourlyKWh: 0.8, appliances: 8},
		{name: HouseMediumHouse, baseDailyKWh: 25, baseHourlyKWh: 1.2, appliances: 8},
		{name: HouseLargeHouse, baseDailyKWh: 45, baseHourlyKWh: 2.1, appliances: 9},
		{name: HouseMansion, baseDailyKWh: 80, baseHourlyKWh: 3.5, appliances: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, ok := LookupProfile(tt.name)
			require.True(t, ok)

			assert.Equal(t, tt.name, profile.Type)
			assert.InDelta(t, tt.baseDailyKWh, profile.BaseDailyKWh, 0.001)
			assert.InDelta(t, tt.baseHourlyKWh, profile.BaseHourlyKWh, 0.001)
			assert.Len(t, profile.Appliances, tt.appliances)
		})
	}
}

func TestLookupProfileUnknown(t *testing.T) {
	_, ok := LookupProfile("Treehouse")
	assert.False(t, ok)

	// Lookups are exact, not case-insensitive
	_, ok = LookupProfile("medium house")
	assert.False(t, ok)
}

func TestProfileOrDefault(t *testing.T) {
	assert.Equal(t, HouseMansion, ProfileOrDefault(HouseMansion).Type)
	assert.Equal(t, DefaultHouseType, ProfileOrDefault("Treehouse").Type)
	assert.Equal(t, DefaultHouseType, ProfileOrDefault("").Type)
}

func TestHouseTypes(t *testing.T) {
	types := HouseTypes()

	// Ordered smallest to largest
	assert.Equal(t, []string{
		HouseSmallApartment,
		HouseMediumHouse,
		HouseLargeHouse,
		HouseMansion,
	}, types)
}

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month  time.Month
		season string
	}{
		{time.December, "Winter"},
		{time.January, "Winter"},
		{time.February, "Winter"},
		{time.March, "Spring"},
		{time.May, "Spring"},
		{time.June, "Summer"},
		{time.August, "Summer"},
		{time.September, "Fall"},
		{time.November, "Fall"},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.season, SeasonForMonth(tt.month))
		})
	}
}

func TestPeriodForHour(t *testing.T) {
	tests := []struct {
		hour   int
		period string
	}{
		{0, "Night"},
		{4, "Night"},
		{5, "Morning"},
		{11, "Morning"},
		{12, "Afternoon"},
		{16, "Afternoon"},
		{17, "Evening"},
		{21, "Evening"},
		{22, "Night"},
		{23, "Night"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.period, PeriodForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestHourlyPatternShape(t *testing.T) {
	// Morning and evening peaks must dominate the overnight trough
	assert.Greater(t, hourlyPattern[7], hourlyPattern[3])
	assert.Greater(t, hourlyPattern[19], hourlyPattern[3])
	assert.Equal(t, 2.0, hourlyPattern[19], "evening peak is the maximum")
}
