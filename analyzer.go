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
	"math"
	"sort"
)

// Analyzer derives statistics and projections from generated data. All
// methods are pure over their inputs: no randomness, no clock, no mutation
// of the supplied series.
type Analyzer struct {
	config *Config
	logger *Logger
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(config *Config, logger *Logger) *Analyzer {
	return &Analyzer{
		config: config,
		logger: logger,
	}
}

// Analyze derives the complete dashboard metrics from generated data
func (a *Analyzer) Analyze(data *GeneratedData) (*DashboardResult, error) {
	a.logger.Info("Starting analysis",
		"house_type", data.HouseType,
		"period_days", data.PeriodDays,
	)

	summary, err := a.Summarize(data.Series)
	if err != nil {
		return nil, err
	}
	a.logger.LogAnalysisStage("usage_summary")

	result := &DashboardResult{
		GeneratedAt:  data.GeneratedAt,
		HouseType:    data.HouseType,
		EnergySource: data.EnergySource,
		PeriodDays:   data.PeriodDays,
		PeriodStart:  data.Series[0].Date,
		PeriodEnd:    data.Series[len(data.Series)-1].Date,
		Series:       data.Series,
		Hourly:       data.Hourly,
		Appliances:   data.Appliances,
		Weather:      data.Weather,
		Summary:      *summary,
	}

	result.Costs = a.ProjectCosts(data.Series, a.config.EnergyRates.Standard)
	a.logger.LogAnalysisStage("cost_projection")

	result.TimeOfUse = CalculateTimeOfUseSavings(data.Hourly, a.config.EnergyRates)
	a.logger.LogAnalysisStage("time_of_use")

	result.CarbonLbsCO2 = CalculateCarbonFootprint(summary.TotalConsumption, a.config.CarbonEmissionFactor)

	profile := ProfileOrDefault(data.HouseType)
	result.Efficiency = GetEfficiencyRating(summary.AverageDaily, profile.BaseDailyKWh)
	result.Potential = CalculateSavingsPotential(summary.AverageDaily, a.config.EnergyRates.Standard)
	a.logger.LogAnalysisStage("efficiency")

	a.logger.Info("Analysis completed",
		"trend", summary.Trend,
		"variability", summary.Variability,
		"rating", result.Efficiency.Rating,
	)

	return result, nil
}

// Summarize computes aggregate statistics over a daily series
func (a *Analyzer) Summarize(series Series) (*UsageSummary, error) {
	if len(series) == 0 {
		return nil, &DataError{
			DataType: "series",
			Message:  "at least one record is required",
		}
	}

	values := make([]float64, len(series))
	for i, r := range series {
		values[i] = r.Consumption
	}

	total := 0.0
	for _, v := range values {
		total += v
	}
	mean := total / float64(len(values))
	stdDev := calculateStdDev(values, mean)

	peak, low := series[0], series[0]
	for _, r := range series[1:] {
		// Strict comparisons keep the first occurrence on ties
		if r.Consumption > peak.Consumption {
			peak = r
		}
		if r.Consumption < low.Consumption {
			low = r
		}
	}

	trend, trendPct := calculateTrend(values)

	variability := "low"
	if stdDev > mean*0.3 {
		variability = "high"
	}

	return &UsageSummary{
		TotalConsumption:  total,
		AverageDaily:      mean,
		PeakDay:           peak,
		LowDay:            low,
		Trend:             trend,
		TrendPercentage:   trendPct,
		Variability:       variability,
		StandardDeviation: stdDev,
	}, nil
}

// calculateTrend compares the mean of the first window against the last
// window, where the window is min(7, len/2) records. Fewer than 7 records
// total is reported as insufficient_data with a zero percentage.
func calculateTrend(values []float64) (string, float64) {
	if len(values) < 7 {
		return "insufficient_data", 0
	}

	window := len(values) / 2
	if window > 7 {
		window = 7
	}

	older := calculateMean(values[:window])
	recent := calculateMean(values[len(values)-window:])

	trend := "decreasing"
	if recent > older {
		trend = "increasing"
	}

	if older == 0 {
		return trend, 0
	}

	return trend, math.Abs((recent-older)/older) * 100
}

// ProjectCosts extrapolates the series total to daily, monthly and yearly
// cost at the given rate
func (a *Analyzer) ProjectCosts(series Series, ratePerKWh float64) CostProjection {
	if len(series) == 0 {
		return CostProjection{RatePerKWh: ratePerKWh}
	}

	total := 0.0
	for _, r := range series {
		total += r.Consumption
	}

	totalCost := total * ratePerKWh
	days := float64(len(series))
	monthly := totalCost * 30 / days

	return CostProjection{
		RatePerKWh:  ratePerKWh,
		DailyCost:   totalCost / days,
		MonthlyCost: monthly,
		YearlyCost:  monthly * 12,
	}
}

// CalculateCarbonFootprint converts consumption to lbs of CO2
func CalculateCarbonFootprint(kwh, emissionFactor float64) float64 {
	return kwh * emissionFactor
}

// GetEfficiencyRating maps a consumption/baseline ratio to one of five
// ordered categories. Thresholds are inclusive; a non-positive baseline is
// treated as a ratio of 1.
func GetEfficiencyRating(consumption, baseline float64) EfficiencyRating {
	ratio := 1.0
	if baseline > 0 {
		ratio = consumption / baseline
	}

	switch {
	case ratio <= 0.70:
		return EfficiencyRating{Rating: "Excellent", Score: 95, Color: "#28a745"}
	case ratio <= 0.85:
		return EfficiencyRating{Rating: "Good", Score: 85, Color: "#20c997"}
	case ratio <= 1.00:
		return EfficiencyRating{Rating: "Average", Score: 75, Color: "#ffc107"}
	case ratio <= 1.20:
		return EfficiencyRating{Rating: "Below Average", Score: 60, Color: "#fd7e14"}
	default:
		return EfficiencyRating{Rating: "Poor", Score: 40, Color: "#dc3545"}
	}
}

// CalculateSavingsPotential estimates savings from reaching 80% of current
// usage at the given rate
func CalculateSavingsPotential(currentUsage, ratePerKWh float64) SavingsPotential {
	if currentUsage <= 0 {
		return SavingsPotential{}
	}

	target := currentUsage * 0.8
	savingsKWh := currentUsage - target

	return SavingsPotential{
		SavingsKWh:  savingsKWh,
		SavingsCost: savingsKWh * ratePerKWh,
		Percentage:  (savingsKWh / currentUsage) * 100,
		TargetUsage: target,
	}
}

// CompareToBaseline compares mean consumption of the current series against
// a baseline series
func CompareToBaseline(current, baseline Series) ComparisonMetrics {
	currentValues := make([]float64, len(current))
	for i, r := range current {
		currentValues[i] = r.Consumption
	}
	baselineValues := make([]float64, len(baseline))
	for i, r := range baseline {
		baselineValues[i] = r.Consumption
	}

	currentAvg := calculateMean(currentValues)
	baselineAvg := calculateMean(baselineValues)
	difference := currentAvg - baselineAvg

	percentageChange := 0.0
	if baselineAvg > 0 {
		percentageChange = (difference / baselineAvg) * 100
	}

	return ComparisonMetrics{
		CurrentAverage:   currentAvg,
		BaselineAverage:  baselineAvg,
		Difference:       difference,
		PercentageChange: percentageChange,
		Improvement:      difference < 0,
	}
}

// CleanSeries returns a copy of the series with negative values and extreme
// outliers (more than 5 standard deviations above the mean) removed, sorted
// by date ascending. The input is not modified.
func CleanSeries(series Series) Series {
	values := make([]float64, 0, len(series))
	for _, r := range series {
		if r.Consumption >= 0 {
			values = append(values, r.Consumption)
		}
	}

	mean := calculateMean(values)
	stdDev := calculateStdDev(values, mean)
	upperLimit := mean + 5*stdDev

	cleaned := make(Series, 0, len(series))
	for _, r := range series {
		if r.Consumption < 0 {
			continue
		}
		if stdDev > 0 && r.Consumption > upperLimit {
			continue
		}
		cleaned = append(cleaned, r)
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].Date.Before(cleaned[j].Date)
	})

	return cleaned
}

// Statistical helper functions

// calculateMean calculates the mean of a slice of float64 values
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// calculateStdDev calculates the population standard deviation
func calculateStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sumSquaredDiff := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	variance := sumSquaredDiff / float64(len(values))
	return math.Sqrt(variance)
}

// linearFit fits values to a line by least squares and returns slope and
// intercept over the index domain
func linearFit(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	if n < 2 {
		return 0, calculateMean(values)
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, calculateMean(values)
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
