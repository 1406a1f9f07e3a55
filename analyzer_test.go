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

// seriesFromValues builds a daily series starting 2025-01-01 with the given
// consumption values
func seriesFromValues(values ...float64) Series {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	series := make(Series, 0, len(values))
	for i, v := range values {
		date := start.AddDate(0, 0, i)
		series = append(series, DailyRecord{
			Date:        date,
			Consumption: v,
			Weekday:     date.Weekday().String(),
			Month:       date.Month().String(),
			Season:      SeasonForMonth(date.Month()),
		})
	}
	return series
}

func testAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return NewAnalyzer(DefaultConfig(), NewLogger(false))
}

func TestSummarize(t *testing.T) {
	a := testAnalyzer(t)

	summary, err := a.Summarize(seriesFromValues(10, 20, 30, 40, 50))
	require.NoError(t, err)

	assert.InDelta(t, 150.0, summary.TotalConsumption, 0.001)
	assert.InDelta(t, 30.0, summary.AverageDaily, 0.001)
	assert.InDelta(t, 50.0, summary.PeakDay.Consumption, 0.001)
	assert.InDelta(t, 10.0, summary.LowDay.Consumption, 0.001)
}

func TestSummarizeEmptySeries(t *testing.T) {
	a := testAnalyzer(t)

	summary, err := a.Summarize(Series{})
	assert.Nil(t, summary)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "series", dataErr.DataType)
}

func TestSummarizePeakTieKeepsFirst(t *testing.T) {
	a := testAnalyzer(t)

	series := seriesFromValues(10, 50, 20, 50, 10)
	summary, err := a.Summarize(series)
	require.NoError(t, err)

	assert.Equal(t, series[1].Date, summary.PeakDay.Date)
	assert.Equal(t, series[0].Date, summary.LowDay.Date)
}

func TestCalculateTrend(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		trend       string
		expectedPct float64
	}{
		{
			name:        "too few records",
			values:      []float64{10, 20, 30, 40, 50, 60},
			trend:       "insufficient_data",
			expectedPct: 0,
		},
		{
			name:        "increasing",
			values:      []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
			trend:       "increasing",
			expectedPct: 175, // first-window mean 4, last-window mean 11
		},
		{
			name:        "decreasing",
			values:      []float64{14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			trend:       "decreasing",
			expectedPct: 63.636363,
		},
		{
			name:        "flat",
			values:      []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
			trend:       "decreasing",
			expectedPct: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, pct := calculateTrend(tt.values)
			assert.Equal(t, tt.trend, trend)
			assert.InDelta(t, tt.expectedPct, pct, 0.001)
		})
	}
}

func TestSummarizeVariability(t *testing.T) {
	a := testAnalyzer(t)

	t.Run("constant series is low", func(t *testing.T) {
		summary, err := a.Summarize(seriesFromValues(25, 25, 25, 25, 25))
		require.NoError(t, err)
		assert.Equal(t, "low", summary.Variability)
		assert.Zero(t, summary.StandardDeviation)
	})

	t.Run("alternating series is high", func(t *testing.T) {
		// mean 15, stddev 5, threshold 4.5
		summary, err := a.Summarize(seriesFromValues(10, 20, 10, 20, 10, 20))
		require.NoError(t, err)
		assert.Equal(t, "high", summary.Variability)
		assert.InDelta(t, 5.0, summary.StandardDeviation, 0.001)
	})
}

func TestProjectCosts(t *testing.T) {
	a := testAnalyzer(t)

	series := seriesFromValues(10, 10, 10, 10, 10, 10, 10, 10, 10, 10)
	costs := a.ProjectCosts(series, 0.12)

	assert.InDelta(t, 0.12, costs.RatePerKWh, 0.0001)
	assert.InDelta(t, 1.20, costs.DailyCost, 0.001)
	assert.InDelta(t, 36.0, costs.MonthlyCost, 0.001)
	assert.InDelta(t, 432.0, costs.YearlyCost, 0.001)
}

func TestProjectCostsEmptySeries(t *testing.T) {
	a := testAnalyzer(t)

	costs := a.ProjectCosts(Series{}, 0.12)
	assert.Zero(t, costs.DailyCost)
	assert.Zero(t, costs.MonthlyCost)
	assert.Zero(t, costs.YearlyCost)
}

func TestCalculateCarbonFootprint(t *testing.T) {
	assert.InDelta(t, 92.0, CalculateCarbonFootprint(100, 0.92), 0.001)
	assert.Zero(t, CalculateCarbonFootprint(0, 0.92))
}

func TestGetEfficiencyRating(t *testing.T) {
	tests := []struct {
		name        string
		consumption float64
		baseline    float64
		rating      string
		score       int
	}{
		{name: "excellent at threshold", consumption: 70, baseline: 100, rating: "Excellent", score: 95},
		{name: "good just above excellent", consumption: 70.001, baseline: 100, rating: "Good", score: 85},
		{name: "good at threshold", consumption: 85, baseline: 100, rating: "Good", score: 85},
		{name: "average at baseline", consumption: 100, baseline: 100, rating: "Average", score: 75},
		{name: "below average at threshold", consumption: 120, baseline: 100, rating: "Below Average", score: 60},
		{name: "poor above threshold", consumption: 120.001, baseline: 100, rating: "Poor", score: 40},
		{name: "zero baseline is average", consumption: 50, baseline: 0, rating: "Average", score: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rating := GetEfficiencyRating(tt.consumption, tt.baseline)
			assert.Equal(t, tt.rating, rating.Rating)
			assert.Equal(t, tt.score, rating.Score)
			assert.NotEmpty(t, rating.Color)
		})
	}
}

func TestCalculateSavingsPotential(t *testing.T) {
	p := CalculateSavingsPotential(100, 0.12)

	assert.InDelta(t, 20.0, p.SavingsKWh, 0.001)
	assert.InDelta(t, 2.4, p.SavingsCost, 0.001)
	assert.InDelta(t, 20.0, p.Percentage, 0.001)
	assert.InDelta(t, 80.0, p.TargetUsage, 0.001)
}

func TestCalculateSavingsPotentialZeroUsage(t *testing.T) {
	p := CalculateSavingsPotential(0, 0.12)
	assert.Zero(t, p.SavingsKWh)
	assert.Zero(t, p.TargetUsage)
}

func TestCompareToBaseline(t *testing.T) {
	current := seriesFromValues(10, 10, 10)
	baseline := seriesFromValues(20, 20, 20)

	metrics := CompareToBaseline(current, baseline)

	assert.InDelta(t, 10.0, metrics.CurrentAverage, 0.001)
	assert.InDelta(t, 20.0, metrics.BaselineAverage, 0.001)
	assert.InDelta(t, -10.0, metrics.Difference, 0.001)
	assert.InDelta(t, -50.0, metrics.PercentageChange, 0.001)
	assert.True(t, metrics.Improvement)
}

func TestCleanSeries(t *testing.T) {
	// 30 ordinary days, one negative reading, one extreme outlier. The
	// ordinary block must be long enough that the outlier actually exceeds
	// the 5-sigma limit.
	values := make([]float64, 0, 32)
	for i := 0; i < 30; i++ {
		values = append(values, 10)
	}
	values = append(values, -5, 500)
	series := seriesFromValues(values...)

	cleaned := CleanSeries(series)

	require.Len(t, cleaned, 30)
	for _, r := range cleaned {
		assert.InDelta(t, 10.0, r.Consumption, 0.001)
	}

	for i := 1; i < len(cleaned); i++ {
		assert.True(t, cleaned[i].Date.After(cleaned[i-1].Date))
	}

	// Input untouched
	assert.Len(t, series, 32)
}

func TestAnalyze(t *testing.T) {
	g := testGenerator(t, 42)
	data, err := g.GenerateAll(30, HouseMediumHouse, "Grid Electricity")
	require.NoError(t, err)

	a := testAnalyzer(t)
	result, err := a.Analyze(data)
	require.NoError(t, err)

	assert.Equal(t, HouseMediumHouse, result.HouseType)
	assert.Equal(t, 30, result.PeriodDays)
	assert.Equal(t, data.Series[0].Date, result.PeriodStart)
	assert.Equal(t, data.Series[len(data.Series)-1].Date, result.PeriodEnd)

	assert.Positive(t, result.Summary.TotalConsumption)
	assert.Positive(t, result.Costs.MonthlyCost)
	assert.Positive(t, result.CarbonLbsCO2)
	assert.NotEmpty(t, result.Efficiency.Rating)
	assert.Positive(t, result.Potential.SavingsKWh)

	// Peak and off-peak must partition the full hourly series
	total := result.TimeOfUse.PeakUsage + result.TimeOfUse.OffPeakUsage
	hourlyTotal := 0.0
	for _, r := range data.Hourly {
		hourlyTotal += r.Consumption
	}
	assert.InDelta(t, hourlyTotal, total, 0.001)
}

func TestAnalyzeEmptySeries(t *testing.T) {
	a := testAnalyzer(t)

	result, err := a.Analyze(&GeneratedData{Series: Series{}})
	assert.Nil(t, result)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
}

func TestLinearFit(t *testing.T) {
	slope, intercept := linearFit([]float64{1, 3, 5, 7, 9})
	assert.InDelta(t, 2.0, slope, 0.001)
	assert.InDelta(t, 1.0, intercept, 0.001)

	slope, intercept = linearFit([]float64{5, 5, 5})
	assert.InDelta(t, 0.0, slope, 0.001)
	assert.InDelta(t, 5.0, intercept, 0.001)
}
