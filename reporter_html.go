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
	"html"
	"io"
	"os"
)

// HTMLReporter generates the HTML dashboard from analysis results
type HTMLReporter struct {
	logger *Logger
}

// NewHTMLReporter creates a new HTML report generator
func NewHTMLReporter(logger *Logger) *HTMLReporter {
	return &HTMLReporter{
		logger: logger,
	}
}

// GenerateHTMLReport generates an HTML dashboard
func (r *HTMLReporter) GenerateHTMLReport(result *DashboardResult, outputPath string) error {
	r.logger.Info("Generating HTML report")

	var writer io.Writer
	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create HTML report file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	r.writeHTMLHeader(writer, result)
	r.writeHTMLMetrics(writer, result)
	r.writeHTMLCharts(writer, result)
	r.writeHTMLAppliances(writer, result)
	r.writeHTMLTips(writer, result)
	r.writeHTMLFooter(writer)

	if outputPath != "" {
		r.logger.Info("HTML report saved", "path", outputPath)
	}

	return nil
}

func (r *HTMLReporter) writeHTMLHeader(w io.Writer, result *DashboardResult) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Energy Dashboard</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: linear-gradient(135deg, #0a0a0a 0%%, #1a1a1a 100%%);
            color: #e0e0e0;
            margin: 0;
            padding: 2rem;
        }
        .header {
            background: linear-gradient(135deg, #1a1a1a 0%%, #2a2a2a 100%%);
            border: 1px solid #333;
            padding: 2rem;
            border-radius: 15px;
            text-align: center;
            margin-bottom: 2rem;
        }
        .header h1 { color: #ffffff; font-weight: 300; letter-spacing: 2px; margin: 0 0 0.5rem; }
        .header p { color: #b0b0b0; margin: 0; }
        .metrics { display: flex; flex-wrap: wrap; gap: 1rem; margin-bottom: 2rem; }
        .metric {
            flex: 1 1 200px;
            background: rgba(30, 30, 30, 0.8);
            border: 1px solid #333;
            padding: 1.5rem;
            border-radius: 12px;
        }
        .metric .label { color: #b0b0b0; font-size: 0.85rem; }
        .metric .value { color: #f0f0f0; font-size: 1.6rem; font-weight: 500; }
        .metric .detail { color: #888; font-size: 0.8rem; }
        .section {
            background: rgba(30, 30, 30, 0.6);
            border: 1px solid #333;
            border-radius: 12px;
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .section h2 { color: #f0f0f0; font-weight: 400; margin-top: 0; }
        .section img { max-width: 100%%; border-radius: 8px; }
        table { width: 100%%; border-collapse: collapse; }
        th, td { padding: 0.6rem; text-align: left; border-bottom: 1px solid #333; }
        th { color: #b0b0b0; font-weight: 500; }
        .tip {
            border: 1px solid #333;
            border-left: 4px solid #4CAF50;
            border-radius: 10px;
            padding: 1rem 1.5rem;
            margin-bottom: 1rem;
        }
        .tip.moderate { border-left-color: #b0b0b0; }
        .tip.hard { border-left-color: #f44336; }
        .tip h4 { margin: 0 0 0.5rem; color: #f0f0f0; font-weight: 400; }
        .tip p { margin: 0 0 0.5rem; color: #d0d0d0; }
        .tip .meta { color: #888; font-size: 0.85rem; }
        .footer { color: #666; text-align: center; font-size: 0.85rem; margin-top: 2rem; }
    </style>
</head>
<body>
    <div class="header">
        <h1>⚡ Energy Dashboard</h1>
        <p>%s · %s · %s to %s (%d days)</p>
    </div>
`,
		html.EscapeString(result.HouseType),
		html.EscapeString(result.EnergySource),
		result.PeriodStart.Format("Jan 2, 2006"),
		result.PeriodEnd.Format("Jan 2, 2006"),
		result.PeriodDays,
	)
}

func (r *HTMLReporter) writeHTMLMetrics(w io.Writer, result *DashboardResult) {
	s := result.Summary

	fmt.Fprintf(w, `    <div class="metrics">
`)

	metric := func(label, value, detail string) {
		fmt.Fprintf(w, `        <div class="metric">
            <div class="label">%s</div>
            <div class="value">%s</div>
            <div class="detail">%s</div>
        </div>
`, html.EscapeString(label), html.EscapeString(value), html.EscapeString(detail))
	}

	trendDetail := "trend: " + s.Trend
	if s.Trend != "insufficient_data" {
		trendDetail = fmt.Sprintf("trend: %s %s", s.Trend, FormatPercentage(s.TrendPercentage))
	}

	metric("Total Consumption", FormatEnergy(s.TotalConsumption), trendDetail)
	metric("Average Daily", FormatEnergy(s.AverageDaily), fmt.Sprintf("variability: %s", s.Variability))
	metric("Projected Monthly Cost", FormatCurrency(result.Costs.MonthlyCost), fmt.Sprintf("at %s/kWh", FormatCurrency(result.Costs.RatePerKWh)))
	metric("Carbon Footprint", FormatCarbon(result.CarbonLbsCO2), "over the period")
	metric("Efficiency", result.Efficiency.Rating, fmt.Sprintf("score %d", result.Efficiency.Score))
	metric("TOU Savings", FormatCurrency(result.TimeOfUse.Savings), fmt.Sprintf("%s vs flat rate", FormatPercentage(result.TimeOfUse.SavingsPercentage)))

	fmt.Fprintf(w, `    </div>
`)
}

func (r *HTMLReporter) writeHTMLCharts(w io.Writer, result *DashboardResult) {
	chart := func(title, encoded string) {
		if encoded == "" {
			return
		}
		fmt.Fprintf(w, `    <div class="section">
        <h2>%s</h2>
        <img src="data:image/png;base64,%s" alt="%s">
    </div>
`, html.EscapeString(title), encoded, html.EscapeString(title))
	}

	chart("Consumption Trend", result.ConsumptionChart)
	chart("Cost Analysis", result.CostChart)
	chart("Hourly Pattern", result.HourlyChart)
	chart("Appliance Breakdown", result.ApplianceChart)
	chart("Seasonal Averages", result.SeasonalChart)
}

func (r *HTMLReporter) writeHTMLAppliances(w io.Writer, result *DashboardResult) {
	if len(result.Appliances) == 0 {
		return
	}

	fmt.Fprintf(w, `    <div class="section">
        <h2>🔌 Appliances</h2>
        <table>
            <tr><th>Appliance</th><th>Daily kWh</th><th>Daily Cost</th><th>Monthly Cost</th><th>Rating</th><th>Share</th></tr>
`)
	for _, a := range result.Appliances {
		fmt.Fprintf(w, "            <tr><td>%s</td><td>%.2f</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(a.Appliance),
			a.DailyKWh,
			FormatCurrency(a.DailyCost),
			FormatCurrency(a.MonthlyCost),
			html.EscapeString(a.EfficiencyRating),
			FormatPercentage(a.Percentage),
		)
	}
	fmt.Fprintf(w, `        </table>
    </div>
`)
}

func (r *HTMLReporter) writeHTMLTips(w io.Writer, result *DashboardResult) {
	if len(result.Tips) == 0 {
		return
	}

	fmt.Fprintf(w, `    <div class="section">
        <h2>💡 Personalized Tips</h2>
`)
	for _, tip := range result.Tips {
		class := "tip"
		switch tip.Difficulty {
		case "Moderate":
			class = "tip moderate"
		case "Hard":
			class = "tip hard"
		}
		fmt.Fprintf(w, `        <div class="%s">
            <h4>%s</h4>
            <p>%s</p>
            <div class="meta">%s · %s · %s</div>
        </div>
`,
			class,
			html.EscapeString(tip.Title),
			html.EscapeString(tip.Description),
			html.EscapeString(tip.Difficulty),
			html.EscapeString(tip.Savings),
			html.EscapeString(tip.Category),
		)
	}
	fmt.Fprintf(w, `    </div>
`)
}

func (r *HTMLReporter) writeHTMLFooter(w io.Writer) {
	fmt.Fprintf(w, `    <div class="footer">All consumption data is synthetic and illustrative · wattdash %s</div>
</body>
</html>
`, html.EscapeString(GetVersion()))
}
