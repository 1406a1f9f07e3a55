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
	"encoding/base64"
	"fmt"

	charts "github.com/vicanso/go-charts/v2"
)

// ChartGenerator handles chart generation
type ChartGenerator struct {
	theme  string
	logger *Logger
}

// NewChartGenerator creates a new chart generator
func NewChartGenerator(logger *Logger) *ChartGenerator {
	return &ChartGenerator{
		theme:  "dark", // Match the HTML dashboard dark theme
		logger: logger,
	}
}

// AttachCharts renders every dashboard chart and stores the encoded images
// on the result. Chart failures are non-fatal: the report renders without
// the missing image.
func (cg *ChartGenerator) AttachCharts(result *DashboardResult) {
	attach := func(name string, render func() (string, error), target *string) {
		encoded, err := render()
		if err != nil {
			cg.logger.Warn("Failed to render chart", "chart", name, "error", err)
			return
		}
		*target = encoded
	}

	attach("consumption", func() (string, error) { return cg.GenerateConsumptionChart(result.Series) }, &result.ConsumptionChart)
	attach("appliances", func() (string, error) { return cg.GenerateApplianceChart(result.Appliances) }, &result.ApplianceChart)
	attach("costs", func() (string, error) { return cg.GenerateCostChart(result.Series, result.Costs.RatePerKWh) }, &result.CostChart)
	attach("hourly", func() (string, error) { return cg.GenerateHourlyChart(result.Hourly) }, &result.HourlyChart)
	attach("seasonal", func() (string, error) { return cg.GenerateSeasonalChart(result.Series) }, &result.SeasonalChart)
}

// GenerateConsumptionChart creates a line chart of daily consumption with
// average and linear-trend overlays
func (cg *ChartGenerator) GenerateConsumptionChart(series Series) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("no consumption data available")
	}

	values := make([]float64, len(series))
	labels := make([]string, len(series))
	for i, r := range series {
		values[i] = r.Consumption
		labels[i] = r.Date.Format("Jan 2")
	}

	avg := calculateMean(values)
	avgLine := make([]float64, len(values))
	for i := range avgLine {
		avgLine[i] = avg
	}

	chartValues := [][]float64{values, avgLine}
	legendLabels := []string{"Daily Consumption (kWh)", "Average"}

	// Trend overlay only once there is enough data for a meaningful fit
	if len(values) > 7 {
		slope, intercept := linearFit(values)
		trendLine := make([]float64, len(values))
		for i := range trendLine {
			trendLine[i] = intercept + slope*float64(i)
		}
		chartValues = append(chartValues, trendLine)
		legendLabels = append(legendLabels, "Trend")
	}

	return cg.renderLine(chartValues, labels, legendLabels, "Energy Consumption Trend")
}

// GenerateApplianceChart creates a pie chart of the appliance breakdown
func (cg *ChartGenerator) GenerateApplianceChart(appliances []ApplianceRecord) (string, error) {
	if len(appliances) == 0 {
		return "", fmt.Errorf("no appliance data available")
	}

	values := make([]float64, len(appliances))
	labels := make([]string, len(appliances))
	for i, a := range appliances {
		values[i] = a.DailyKWh
		labels[i] = a.Appliance
	}

	p, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc("Appliance Energy Breakdown"),
		charts.LegendLabelsOptionFunc(labels, charts.PositionRight),
		charts.ThemeOptionFunc(cg.theme),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(500),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render appliance chart: %w", err)
	}

	return cg.encode("appliances", p)
}

// GenerateCostChart creates a line chart of daily and cumulative cost
func (cg *ChartGenerator) GenerateCostChart(series Series, ratePerKWh float64) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("no consumption data available")
	}

	daily := make([]float64, len(series))
	cumulative := make([]float64, len(series))
	labels := make([]string, len(series))

	running := 0.0
	for i, r := range series {
		cost := r.Consumption * ratePerKWh
		running += cost
		daily[i] = cost
		cumulative[i] = running
		labels[i] = r.Date.Format("Jan 2")
	}

	return cg.renderLine(
		[][]float64{daily, cumulative},
		labels,
		[]string{"Daily Cost ($)", "Cumulative Cost ($)"},
		"Energy Cost Analysis",
	)
}

// GenerateHourlyChart creates a line chart of the 24-hour usage pattern
func (cg *ChartGenerator) GenerateHourlyChart(hourly []HourlyRecord) (string, error) {
	if len(hourly) == 0 {
		return "", fmt.Errorf("no hourly data available")
	}

	values := make([]float64, len(hourly))
	labels := make([]string, len(hourly))
	for i, r := range hourly {
		values[i] = r.Consumption
		labels[i] = r.Time
	}

	return cg.renderLine(
		[][]float64{values},
		labels,
		[]string{"Hourly Consumption (kWh)"},
		"Hourly Usage Pattern",
	)
}

// GenerateSeasonalChart creates a bar chart of average consumption by season
func (cg *ChartGenerator) GenerateSeasonalChart(series Series) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("no consumption data available")
	}

	seasons := []string{"Winter", "Spring", "Summer", "Fall"}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range series {
		sums[r.Season] += r.Consumption
		counts[r.Season]++
	}

	var labels []string
	var means []float64
	for _, s := range seasons {
		if counts[s] == 0 {
			continue
		}
		labels = append(labels, s)
		means = append(means, sums[s]/float64(counts[s]))
	}

	p, err := charts.BarRender(
		[][]float64{means},
		charts.TitleTextOptionFunc("Seasonal Energy Consumption"),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc([]string{"Average Consumption (kWh)"}, charts.PositionRight),
		charts.ThemeOptionFunc(cg.theme),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render seasonal chart: %w", err)
	}

	return cg.encode("seasonal", p)
}

// renderLine renders a multi-series line chart with the shared styling
func (cg *ChartGenerator) renderLine(values [][]float64, labels, legendLabels []string, title string) (string, error) {
	p, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc(legendLabels, charts.PositionRight),
		charts.ThemeOptionFunc(cg.theme),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(400),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %q chart: %w", title, err)
	}

	return cg.encode(title, p)
}

// encode converts a rendered chart to base64 for embedding in HTML
func (cg *ChartGenerator) encode(name string, p *charts.Painter) (string, error) {
	buf, err := p.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to generate chart bytes: %w", err)
	}

	cg.logger.LogChartRendered(name, len(buf))

	return base64.StdEncoding.EncodeToString(buf), nil
}
