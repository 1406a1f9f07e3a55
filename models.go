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
	"time"
)

// DailyRecord represents one day of synthesized consumption
type DailyRecord struct {
	Date        time.Time `json:"date"`
	Consumption float64   `json:"consumption"` // kWh
	Weekday     string    `json:"weekday"`
	Month       string    `json:"month"`
	Season      string    `json:"season"`
}

// Series is an ordered, gapless sequence of daily records.
// Dates increase strictly by one calendar day.
type Series []DailyRecord

// HourlyRecord represents one hour of synthesized consumption for a single day
type HourlyRecord struct {
	Hour        int     `json:"hour"`
	Consumption float64 `json:"consumption"` // kWh
	Time        string  `json:"time"`        // "HH:00"
	Period      string  `json:"period"`      // Night/Morning/Afternoon/Evening
}

// ApplianceRecord represents one appliance sub-load for a profile
type ApplianceRecord struct {
	Appliance        string  `json:"appliance"`
	DailyKWh         float64 `json:"dailyKwh"`
	DailyCost        float64 `json:"dailyCost"`
	MonthlyCost      float64 `json:"monthlyCost"`
	EfficiencyRating string  `json:"efficiencyRating"` // A+++ .. C
	Percentage       float64 `json:"percentage"`       // share of the profile total, sums to 100
}

// WeatherRecord represents synthesized weather context for a single day
type WeatherRecord struct {
	Date              time.Time `json:"date"`
	Temperature       float64   `json:"temperature"` // Fahrenheit
	Humidity          float64   `json:"humidity"`    // percent
	Conditions        string    `json:"conditions"`
	HeatingDegreeDays float64   `json:"heatingDegreeDays"`
	CoolingDegreeDays float64   `json:"coolingDegreeDays"`
}

// GeneratedData holds everything the generator produced for one dashboard run
type GeneratedData struct {
	HouseType    string            `json:"houseType"`
	EnergySource string            `json:"energySource"`
	PeriodDays   int               `json:"periodDays"`
	Series       Series            `json:"series"`
	Hourly       []HourlyRecord    `json:"hourly"`
	Appliances   []ApplianceRecord `json:"appliances"`
	Weather      []WeatherRecord   `json:"weather"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}

// UsageSummary holds aggregate statistics derived from a daily series
type UsageSummary struct {
	TotalConsumption  float64     `json:"totalConsumption"` // kWh
	AverageDaily      float64     `json:"averageDaily"`     // kWh
	PeakDay           DailyRecord `json:"peakDay"`
	LowDay            DailyRecord `json:"lowDay"`
	Trend             string      `json:"trend"` // increasing/decreasing/insufficient_data
	TrendPercentage   float64     `json:"trendPercentage"`
	Variability       string      `json:"variability"` // high/low
	StandardDeviation float64     `json:"standardDeviation"`
}

// CostProjection holds cost estimates extrapolated from the analysis period
type CostProjection struct {
	RatePerKWh  float64 `json:"ratePerKwh"`
	DailyCost   float64 `json:"dailyCost"`
	MonthlyCost float64 `json:"monthlyCost"`
	YearlyCost  float64 `json:"yearlyCost"`
}

// TimeOfUseSavings compares time-of-use billing against a flat rate
type TimeOfUseSavings struct {
	FlatRateCost      float64 `json:"flatRateCost"`
	TOUCost           float64 `json:"touCost"`
	Savings           float64 `json:"savings"`
	SavingsPercentage float64 `json:"savingsPercentage"`
	PeakUsage         float64 `json:"peakUsage"`    // kWh
	OffPeakUsage      float64 `json:"offPeakUsage"` // kWh
}

// SavingsPotential estimates the effect of reaching a usage target
type SavingsPotential struct {
	SavingsKWh  float64 `json:"savingsKwh"`
	SavingsCost float64 `json:"savingsCost"`
	Percentage  float64 `json:"percentage"`
	TargetUsage float64 `json:"targetUsage"`
}

// ComparisonMetrics compares a current period against a baseline period
type ComparisonMetrics struct {
	CurrentAverage   float64 `json:"currentAverage"`
	BaselineAverage  float64 `json:"baselineAverage"`
	Difference       float64 `json:"difference"`
	PercentageChange float64 `json:"percentageChange"`
	Improvement      bool    `json:"improvement"`
}

// EfficiencyRating maps a consumption/baseline ratio to an ordered category
type EfficiencyRating struct {
	Rating string `json:"rating"`
	Score  int    `json:"score"`
	Color  string `json:"color"`
}

// Tip represents a personalized energy-saving recommendation
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Savings     string `json:"savings"` // e.g. "$15-30/month"
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
}

// DashboardResult holds the complete dashboard output for one run
type DashboardResult struct {
	GeneratedAt  time.Time         `json:"generatedAt"`
	HouseType    string            `json:"houseType"`
	EnergySource string            `json:"energySource"`
	PeriodDays   int               `json:"periodDays"`
	PeriodStart  time.Time         `json:"periodStart"`
	PeriodEnd    time.Time         `json:"periodEnd"`
	Series       Series            `json:"series"`
	Hourly       []HourlyRecord    `json:"hourly"`
	Appliances   []ApplianceRecord `json:"appliances"`
	Weather      []WeatherRecord   `json:"weather"`
	Summary      UsageSummary      `json:"summary"`
	Costs        CostProjection    `json:"costs"`
	TimeOfUse    TimeOfUseSavings  `json:"timeOfUse"`
	CarbonLbsCO2 float64           `json:"carbonLbsCo2"`
	Efficiency   EfficiencyRating  `json:"efficiency"`
	Potential    SavingsPotential  `json:"potential"`
	Tips         []Tip             `json:"tips"`
	// Charts (base64 encoded PNG images)
	ConsumptionChart string `json:"consumptionChart,omitempty"`
	ApplianceChart   string `json:"applianceChart,omitempty"`
	CostChart        string `json:"costChart,omitempty"`
	HourlyChart      string `json:"hourlyChart,omitempty"`
	SeasonalChart    string `json:"seasonalChart,omitempty"`
}
