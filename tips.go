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
	"math/rand"
	"strconv"
	"strings"
)

// maxTips caps how many tips one dashboard shows
const maxTips = 8

// TipEngine selects personalized saving tips from the fixed tip tables.
// The random source only affects presentation order.
type TipEngine struct {
	rng    *rand.Rand
	logger *Logger
}

// NewTipEngine creates a tip engine with the given random source
func NewTipEngine(rng *rand.Rand, logger *Logger) *TipEngine {
	return &TipEngine{
		rng:    rng,
		logger: logger,
	}
}

// TipsFor builds the personalized tip list for a household. Current usage is
// banded against the average (above 1.2x is high, below 0.8x is efficient),
// then house type, energy source, seasonal and general tips are appended.
// Duplicates are dropped by title and the result is shuffled and capped.
func (e *TipEngine) TipsFor(houseType, energySource string, currentUsage, avgUsage float64, season string) []Tip {
	var tips []Tip

	switch {
	case currentUsage > avgUsage*1.2:
		tips = append(tips, highUsageTips(season)...)
	case currentUsage < avgUsage*0.8:
		tips = append(tips, efficientUsageTips()...)
	default:
		tips = append(tips, moderateUsageTips(houseType)...)
	}

	tips = append(tips, houseTypeTips(houseType)...)
	tips = append(tips, energySourceTips(energySource)...)
	tips = append(tips, seasonalTips(season)...)
	tips = append(tips, generalTips()...)

	unique := dedupeTips(tips)
	e.rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if len(unique) > maxTips {
		unique = unique[:maxTips]
	}

	e.logger.Debug("Tips selected",
		"candidates", len(tips),
		"selected", len(unique),
	)

	return unique
}

// dedupeTips drops duplicate titles, keeping first occurrence
func dedupeTips(tips []Tip) []Tip {
	seen := make(map[string]bool, len(tips))
	unique := make([]Tip, 0, len(tips))
	for _, tip := range tips {
		if seen[tip.Title] {
			continue
		}
		seen[tip.Title] = true
		unique = append(unique, tip)
	}
	return unique
}

// FilterTipsByCategory returns the tips matching a category
func FilterTipsByCategory(tips []Tip, category string) []Tip {
	var filtered []Tip
	for _, tip := range tips {
		if tip.Category == category {
			filtered = append(filtered, tip)
		}
	}
	return filtered
}

// TipCategories returns all categories used by the tip tables
func TipCategories() []string {
	return []string{
		"HVAC", "Lighting", "Electronics", "Water Heating",
		"Appliances", "Insulation", "Solar", "Seasonal",
		"Technology", "Assessment", "Pool", "Timing", "Renewable", "Motivation",
	}
}

// EstimateTipSavings sums the midpoints of the monthly savings ranges across
// a tip list. Tips without a parseable dollar range contribute nothing.
func EstimateTipSavings(tips []Tip) float64 {
	total := 0.0
	for _, tip := range tips {
		s := strings.TrimSuffix(strings.TrimPrefix(tip.Savings, "$"), "/month")
		lo, hi, ok := strings.Cut(s, "-")
		if !ok {
			continue
		}
		low, errLo := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		high, errHi := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if errLo != nil || errHi != nil {
			continue
		}
		total += (low + high) / 2
	}
	return total
}

func highUsageTips(season string) []Tip {
	tips := []Tip{
		{
			Title:       "Optimize Your Thermostat",
			Description: "Set your thermostat 2-3°F higher in summer and lower in winter. This can save 10-15% on your energy bill.",
			Savings:     "$15-30/month",
			Difficulty:  "Easy",
			Category:    "HVAC",
		},
		{
			Title:       "Unplug Phantom Loads",
			Description: "Unplug electronics when not in use. Devices in standby mode can account for 5-10% of your electricity bill.",
			Savings:     "$8-15/month",
			Difficulty:  "Easy",
			Category:    "Electronics",
		},
		{
			Title:       "LED Light Upgrade",
			Description: "Replace incandescent bulbs with LED lights. LEDs use 75% less energy and last 25 times longer.",
			Savings:     "$12-25/month",
			Difficulty:  "Easy",
			Category:    "Lighting",
		},
	}

	switch season {
	case "Summer":
		tips = append(tips, Tip{
			Title:       "AC Maintenance",
			Description: "Clean or replace AC filters monthly. A dirty filter makes your AC work harder and use more energy.",
			Savings:     "$20-40/month",
			Difficulty:  "Easy",
			Category:    "HVAC",
		})
	case "Winter":
		tips = append(tips, Tip{
			Title:       "Heating Efficiency",
			Description: "Use ceiling fans to circulate warm air. Set fans to rotate clockwise in winter to push warm air down.",
			Savings:     "$10-20/month",
			Difficulty:  "Easy",
			Category:    "HVAC",
		})
	}

	return tips
}

func efficientUsageTips() []Tip {
	return []Tip{
		{
			Title:       "You're Doing Great!",
			Description: "Your energy usage is below average. Keep up the good work with these advanced optimization tips.",
			Savings:     "Continued savings",
			Difficulty:  "Easy",
			Category:    "Motivation",
		},
		{
			Title:       "Smart Home Upgrade",
			Description: "Consider smart thermostats and energy monitors to optimize your already efficient usage patterns.",
			Savings:     "$5-15/month",
			Difficulty:  "Moderate",
			Category:    "Technology",
		},
		{
			Title:       "Solar Panel Consideration",
			Description: "With your low usage, solar panels could make you energy independent and potentially earn money.",
			Savings:     "$50-100/month",
			Difficulty:  "Hard",
			Category:    "Renewable",
		},
	}
}

func moderateUsageTips(houseType string) []Tip {
	tips := []Tip{
		{
			Title:       "Water Heater Optimization",
			Description: "Lower your water heater temperature to 120°F and insulate the tank and pipes.",
			Savings:     "$10-25/month",
			Difficulty:  "Easy",
			Category:    "Water Heating",
		},
		{
			Title:       "Seal Air Leaks",
			Description: "Use caulk and weatherstripping to seal air leaks around windows, doors, and other openings.",
			Savings:     "$15-30/month",
			Difficulty:  "Moderate",
			Category:    "Insulation",
		},
	}

	if houseType == HouseLargeHouse || houseType == HouseMansion {
		tips = append(tips, Tip{
			Title:       "Zone Heating/Cooling",
			Description: "Use programmable thermostats for different zones. Only heat/cool rooms you're using.",
			Savings:     "$25-50/month",
			Difficulty:  "Moderate",
			Category:    "HVAC",
		})
	}

	return tips
}

func houseTypeTips(houseType string) []Tip {
	switch houseType {
	case HouseSmallApartment:
		return []Tip{
			{
				Title:       "Efficient Cooking",
				Description: "Use microwave, toaster oven, or electric kettle instead of conventional oven when possible.",
				Savings:     "$5-12/month",
				Difficulty:  "Easy",
				Category:    "Appliances",
			},
			{
				Title:       "Window Treatments",
				Description: "Use blinds or curtains to block sun in summer and retain heat in winter.",
				Savings:     "$8-15/month",
				Difficulty:  "Easy",
				Category:    "Insulation",
			},
		}
	case HouseLargeHouse, HouseMansion:
		return []Tip{
			{
				Title:       "Pool Efficiency",
				Description: "Use a pool cover to reduce evaporation and run the pump during off-peak hours.",
				Savings:     "$30-60/month",
				Difficulty:  "Easy",
				Category:    "Pool",
			},
			{
				Title:       "Smart Zoning",
				Description: "Install smart thermostats for different zones to avoid heating/cooling unused areas.",
				Savings:     "$40-80/month",
				Difficulty:  "Hard",
				Category:    "HVAC",
			},
		}
	}
	return nil
}

func energySourceTips(energySource string) []Tip {
	var tips []Tip

	if strings.Contains(energySource, "Solar") {
		tips = append(tips,
			Tip{
				Title:       "Maximize Solar Usage",
				Description: "Run major appliances during peak sun hours (10 AM - 4 PM) to use your solar energy directly.",
				Savings:     "$20-40/month",
				Difficulty:  "Easy",
				Category:    "Solar",
			},
			Tip{
				Title:       "Battery Storage",
				Description: "Consider adding battery storage to store excess solar power for evening use.",
				Savings:     "$30-60/month",
				Difficulty:  "Hard",
				Category:    "Solar",
			},
		)
	}

	if energySource == "Grid Electricity" {
		tips = append(tips, Tip{
			Title:       "Time-of-Use Optimization",
			Description: "Shift energy-intensive activities to off-peak hours if your utility offers time-of-use rates.",
			Savings:     "$15-35/month",
			Difficulty:  "Moderate",
			Category:    "Timing",
		})
	}

	return tips
}

func seasonalTips(season string) []Tip {
	switch season {
	case "Summer":
		return []Tip{
			{
				Title:       "Summer Cooling Tips",
				Description: "Use fans to circulate air, close blinds during the day, and cook outdoors when possible.",
				Savings:     "$20-35/month",
				Difficulty:  "Easy",
				Category:    "Seasonal",
			},
			{
				Title:       "Reduce Hot Water Use",
				Description: "Take shorter showers and wash clothes in cold water during hot months.",
				Savings:     "$10-20/month",
				Difficulty:  "Easy",
				Category:    "Water Heating",
			},
		}
	case "Winter":
		return []Tip{
			{
				Title:       "Layer Up Indoors",
				Description: "Wear warm clothes indoors and use blankets to stay comfortable at lower temperatures.",
				Savings:     "$25-45/month",
				Difficulty:  "Easy",
				Category:    "Seasonal",
			},
			{
				Title:       "Use Natural Heat",
				Description: "Open curtains on sunny days to let natural heat in, close them at night for insulation.",
				Savings:     "$15-25/month",
				Difficulty:  "Easy",
				Category:    "Seasonal",
			},
		}
	}
	return nil
}

func generalTips() []Tip {
	return []Tip{
		{
			Title:       "Energy Audit",
			Description: "Conduct a home energy audit to identify specific areas where you can save energy.",
			Savings:     "$50-100/month",
			Difficulty:  "Moderate",
			Category:    "Assessment",
		},
		{
			Title:       "Energy Star Appliances",
			Description: "When replacing appliances, choose Energy Star certified models for maximum efficiency.",
			Savings:     "$20-40/month",
			Difficulty:  "Hard",
			Category:    "Appliances",
		},
		{
			Title:       "Programmable Thermostat",
			Description: "Install a programmable thermostat to automatically adjust temperature based on your schedule.",
			Savings:     "$15-30/month",
			Difficulty:  "Moderate",
			Category:    "HVAC",
		},
	}
}
