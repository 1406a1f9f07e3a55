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
	"io"
	"os"
)

// Reporter generates markdown dashboards from analysis results
type Reporter struct {
	logger *Logger
}

// NewReporter creates a new report generator
func NewReporter(logger *Logger) *Reporter {
	return &Reporter{
		logger: logger,
	}
}

// GenerateReport creates a markdown dashboard from a result
func (r *Reporter) GenerateReport(result *DashboardResult, outputPath string) error {
	r.logger.Info("Generating report")

	var writer io.Writer
	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	r.writeHeader(writer, result)
	r.writeSummary(writer, result)
	r.writeCostAnalysis(writer, result)
	r.writeTimeOfUse(writer, result)
	r.writeAppliances(writer, result)
	r.writeWeather(writer, result)
	r.writeTips(writer, result)
	r.writeFooter(writer)

	if outputPath != "" {
		r.logger.Info("Report saved", "path", outputPath)
	}

	return nil
}

// writeHeader writes the report header
func (r *Reporter) writeHeader(w io.Writer, result *DashboardResult) {
	fmt.Fprintf(w, "# ⚡ Energy Dashboard\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**Household:** %s · %s\n\n", result.HouseType, result.EnergySource)
	fmt.Fprintf(w, "**Period:** %s to %s (%d days)\n\n",
		result.PeriodStart.Format("2006-01-02"),
		result.PeriodEnd.Format("2006-01-02"),
		result.PeriodDays,
	)
	fmt.Fprintf(w, "**wattdash version:** %s\n\n", GetVersion())
	fmt.Fprintf(w, "---\n\n")
}

// writeSummary writes the usage summary section
func (r *Reporter) writeSummary(w io.Writer, result *DashboardResult) {
	s := result.Summary

	fmt.Fprintf(w, "## 📊 Usage Summary\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| 🔋 Total Consumption | %s |\n", FormatEnergy(s.TotalConsumption))
	fmt.Fprintf(w, "| 📅 Average Daily | %s |\n", FormatEnergy(s.AverageDaily))
	fmt.Fprintf(w, "| ⬆️ Peak Day | %s (%s) |\n", FormatEnergy(s.PeakDay.Consumption), s.PeakDay.Date.Format("2006-01-02"))
	fmt.Fprintf(w, "| ⬇️ Lowest Day | %s (%s) |\n", FormatEnergy(s.LowDay.Consumption), s.LowDay.Date.Format("2006-01-02"))
	fmt.Fprintf(w, "| 🌍 Carbon Footprint | %s |\n", FormatCarbon(result.CarbonLbsCO2))
	fmt.Fprintf(w, "\n")

	trendIndicator := "➡️"
	switch s.Trend {
	case "increasing":
		trendIndicator = "📈"
	case "decreasing":
		trendIndicator = "📉"
	}

	if s.Trend == "insufficient_data" {
		fmt.Fprintf(w, "> **Trend:** not enough data for a trend (need at least 7 days)\n\n")
	} else {
		fmt.Fprintf(w, "> **Trend:** %s %s by %s · **Variability:** %s (σ = %.2f kWh)\n\n",
			trendIndicator, s.Trend, FormatPercentage(s.TrendPercentage), s.Variability, s.StandardDeviation)
	}

	fmt.Fprintf(w, "**Efficiency Rating:** %s (score %d) against a %s baseline of %s/day\n\n",
		result.Efficiency.Rating,
		result.Efficiency.Score,
		result.HouseType,
		FormatEnergy(ProfileOrDefault(result.HouseType).BaseDailyKWh),
	)
}

// writeCostAnalysis writes the cost projection section
func (r *Reporter) writeCostAnalysis(w io.Writer, result *DashboardResult) {
	fmt.Fprintf(w, "## 💵 Cost Projection\n\n")
	fmt.Fprintf(w, "At %s/kWh:\n\n", FormatCurrency(result.Costs.RatePerKWh))
	fmt.Fprintf(w, "| Period | Cost |\n")
	fmt.Fprintf(w, "|--------|------|\n")
	fmt.Fprintf(w, "| Daily | %s |\n", FormatCurrency(result.Costs.DailyCost))
	fmt.Fprintf(w, "| Monthly | %s |\n", FormatCurrency(result.Costs.MonthlyCost))
	fmt.Fprintf(w, "| Yearly | %s |\n", FormatCurrency(result.Costs.YearlyCost))
	fmt.Fprintf(w, "\n")

	p := result.Potential
	if p.SavingsKWh > 0 {
		fmt.Fprintf(w, "> 💡 Reaching %s/day (a %s reduction) would save about %s per day.\n\n",
			FormatEnergy(p.TargetUsage), FormatPercentage(p.Percentage), FormatCurrency(p.SavingsCost))
	}
}

// writeTimeOfUse writes the time-of-use savings section
func (r *Reporter) writeTimeOfUse(w io.Writer, result *DashboardResult) {
	tou := result.TimeOfUse

	fmt.Fprintf(w, "## ⏰ Time-of-Use Analysis\n\n")
	fmt.Fprintf(w, "Peak hours are 07:00-09:00 and 17:00-21:00.\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Peak Usage | %s |\n", FormatEnergy(tou.PeakUsage))
	fmt.Fprintf(w, "| Off-Peak Usage | %s |\n", FormatEnergy(tou.OffPeakUsage))
	fmt.Fprintf(w, "| Flat-Rate Cost | %s |\n", FormatCurrency(tou.FlatRateCost))
	fmt.Fprintf(w, "| Time-of-Use Cost | %s |\n", FormatCurrency(tou.TOUCost))
	fmt.Fprintf(w, "\n")

	if tou.Savings > 0 {
		fmt.Fprintf(w, "> ✅ A time-of-use plan would save **%s** (%s) per day at this usage pattern.\n\n",
			FormatCurrency(tou.Savings), FormatPercentage(tou.SavingsPercentage))
	} else {
		fmt.Fprintf(w, "> ℹ️ A flat rate is cheaper for this usage pattern by %s per day.\n\n",
			FormatCurrency(-tou.Savings))
	}
}

// writeAppliances writes the appliance breakdown table
func (r *Reporter) writeAppliances(w io.Writer, result *DashboardResult) {
	if len(result.Appliances) == 0 {
		return
	}

	fmt.Fprintf(w, "## 🔌 Appliance Breakdown\n\n")
	fmt.Fprintf(w, "| Appliance | Daily kWh | Daily Cost | Monthly Cost | Rating | Share |\n")
	fmt.Fprintf(w, "|-----------|-----------|------------|--------------|--------|-------|\n")
	for _, a := range result.Appliances {
		fmt.Fprintf(w, "| %s | %.2f | %s | %s | %s | %s |\n",
			a.Appliance,
			a.DailyKWh,
			FormatCurrency(a.DailyCost),
			FormatCurrency(a.MonthlyCost),
			a.EfficiencyRating,
			FormatPercentage(a.Percentage),
		)
	}
	fmt.Fprintf(w, "\n")
}

// writeWeather writes the weather context section
func (r *Reporter) writeWeather(w io.Writer, result *DashboardResult) {
	if len(result.Weather) == 0 {
		return
	}

	var tempSum, hdd, cdd float64
	for _, rec := range result.Weather {
		tempSum += rec.Temperature
		hdd += rec.HeatingDegreeDays
		cdd += rec.CoolingDegreeDays
	}
	avgTemp := tempSum / float64(len(result.Weather))

	fmt.Fprintf(w, "## 🌤️ Weather Context\n\n")
	fmt.Fprintf(w, "Average temperature over the period was **%.1f°F**, with %.0f heating degree days and %.0f cooling degree days.\n\n",
		avgTemp, hdd, cdd)
}

// writeTips writes the personalized tips section
func (r *Reporter) writeTips(w io.Writer, result *DashboardResult) {
	if len(result.Tips) == 0 {
		return
	}

	fmt.Fprintf(w, "## 💡 Personalized Tips\n\n")
	for _, tip := range result.Tips {
		fmt.Fprintf(w, "### %s\n\n", tip.Title)
		fmt.Fprintf(w, "%s\n\n", tip.Description)
		fmt.Fprintf(w, "- **Savings:** %s\n", tip.Savings)
		fmt.Fprintf(w, "- **Difficulty:** %s\n", tip.Difficulty)
		fmt.Fprintf(w, "- **Category:** %s\n\n", tip.Category)
	}

	if estimate := EstimateTipSavings(result.Tips); estimate > 0 {
		fmt.Fprintf(w, "> Combined potential from these tips: about **%s/month**.\n\n", FormatCurrencyWhole(estimate))
	}
}

// writeFooter writes the report footer
func (r *Reporter) writeFooter(w io.Writer) {
	fmt.Fprintf(w, "---\n\n")
	fmt.Fprintf(w, "*All consumption data is synthetic and illustrative. Generated by wattdash %s.*\n", GetVersion())
}
