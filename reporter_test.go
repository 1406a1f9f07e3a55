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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullResult builds a complete analyzed dashboard for reporter tests
func fullResult(t *testing.T) *DashboardResult {
	t.Helper()

	g := testGenerator(t, 42)
	data, err := g.GenerateAll(30, HouseMediumHouse, "Grid Electricity")
	require.NoError(t, err)

	result, err := testAnalyzer(t).Analyze(data)
	require.NoError(t, err)

	e := testTipEngine(t)
	result.Tips = e.TipsFor(result.HouseType, result.EnergySource, 30, result.Summary.AverageDaily, "Summer")

	return result
}

func TestGenerateReport(t *testing.T) {
	result := fullResult(t)
	path := filepath.Join(t.TempDir(), "report.md")

	r := NewReporter(NewLogger(false))
	require.NoError(t, r.GenerateReport(result, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(content)

	assert.Contains(t, report, "# ⚡ Energy Dashboard")
	assert.Contains(t, report, "## 📊 Usage Summary")
	assert.Contains(t, report, "## 💵 Cost Projection")
	assert.Contains(t, report, "## ⏰ Time-of-Use Analysis")
	assert.Contains(t, report, "## 🔌 Appliance Breakdown")
	assert.Contains(t, report, "## 🌤️ Weather Context")
	assert.Contains(t, report, "## 💡 Personalized Tips")
	assert.Contains(t, report, HouseMediumHouse)
	assert.Contains(t, report, "synthetic and illustrative")

	// Every appliance row makes it into the table
	for _, a := range result.Appliances {
		assert.Contains(t, report, a.Appliance)
	}
}

func TestGenerateReportNoTips(t *testing.T) {
	result := fullResult(t)
	result.Tips = nil
	path := filepath.Join(t.TempDir(), "report.md")

	r := NewReporter(NewLogger(false))
	require.NoError(t, r.GenerateReport(result, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(content), "## 💡 Personalized Tips")
}

func TestGenerateHTMLReport(t *testing.T) {
	result := fullResult(t)
	testChartGenerator(t).AttachCharts(result)
	path := filepath.Join(t.TempDir(), "dashboard.html")

	r := NewHTMLReporter(NewLogger(false))
	require.NoError(t, r.GenerateHTMLReport(result, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Energy Dashboard")
	assert.Contains(t, html, "data:image/png;base64,")
	assert.Contains(t, html, HouseMediumHouse)
	assert.Contains(t, html, "</html>")
}

func TestGenerateHTMLReportEscapesContent(t *testing.T) {
	result := fullResult(t)
	result.EnergySource = "<script>alert(1)</script>"
	path := filepath.Join(t.TempDir(), "dashboard.html")

	r := NewHTMLReporter(NewLogger(false))
	require.NoError(t, r.GenerateHTMLReport(result, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(content), "<script>alert(1)</script>")
	assert.Contains(t, string(content), "&lt;script&gt;")
}
