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
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChartGenerator(t *testing.T) *ChartGenerator {
	t.Helper()
	return NewChartGenerator(NewLogger(false))
}

// assertPNG checks a base64 chart decodes to a PNG image
func assertPNG(t *testing.T, encoded string) {
	t.Helper()

	require.NotEmpty(t, encoded)
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Greater(t, len(raw), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestGenerateConsumptionChart(t *testing.T) {
	cg := testChartGenerator(t)

	encoded, err := cg.GenerateConsumptionChart(seriesFromValues(20, 22, 25, 21, 23, 24, 26, 22, 25, 23))
	require.NoError(t, err)
	assertPNG(t, encoded)
}

func TestGenerateConsumptionChartShortSeries(t *testing.T) {
	cg := testChartGenerator(t)

	// Below the trend-overlay threshold the chart still renders
	encoded, err := cg.GenerateConsumptionChart(seriesFromValues(20, 22, 25))
	require.NoError(t, err)
	assertPNG(t, encoded)
}

func TestGenerateConsumptionChartEmptySeries(t *testing.T) {
	cg := testChartGenerator(t)

	_, err := cg.GenerateConsumptionChart(Series{})
	assert.Error(t, err)
}

func TestGenerateApplianceChart(t *testing.T) {
	cg := testChartGenerator(t)
	g := testGenerator(t, 42)

	encoded, err := cg.GenerateApplianceChart(g.GenerateAppliances(HouseMediumHouse))
	require.NoError(t, err)
	assertPNG(t, encoded)

	_, err = cg.GenerateApplianceChart(nil)
	assert.Error(t, err)
}

func TestGenerateCostChart(t *testing.T) {
	cg := testChartGenerator(t)

	encoded, err := cg.GenerateCostChart(seriesFromValues(20, 22, 25, 21, 23), 0.12)
	require.NoError(t, err)
	assertPNG(t, encoded)
}

func TestGenerateHourlyChart(t *testing.T) {
	cg := testChartGenerator(t)
	g := testGenerator(t, 42)

	encoded, err := cg.GenerateHourlyChart(g.GenerateHourly(g.now(), HouseMediumHouse))
	require.NoError(t, err)
	assertPNG(t, encoded)

	_, err = cg.GenerateHourlyChart(nil)
	assert.Error(t, err)
}

func TestGenerateSeasonalChart(t *testing.T) {
	cg := testChartGenerator(t)
	g := testGenerator(t, 42)

	// 180 days spans at least two seasons
	series, err := g.GenerateDaily(180, HouseMediumHouse)
	require.NoError(t, err)

	encoded, err := cg.GenerateSeasonalChart(series)
	require.NoError(t, err)
	assertPNG(t, encoded)
}

func TestAttachCharts(t *testing.T) {
	g := testGenerator(t, 42)
	data, err := g.GenerateAll(30, HouseMediumHouse, "Grid Electricity")
	require.NoError(t, err)

	a := testAnalyzer(t)
	result, err := a.Analyze(data)
	require.NoError(t, err)

	testChartGenerator(t).AttachCharts(result)

	assertPNG(t, result.ConsumptionChart)
	assertPNG(t, result.ApplianceChart)
	assertPNG(t, result.CostChart)
	assertPNG(t, result.HourlyChart)
	assertPNG(t, result.SeasonalChart)
}
