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
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	houseType := flag.String("profile", DefaultHouseType, "Household profile (e.g. \"Small Apartment\", \"Mansion\")")
	energySource := flag.String("source", "Grid Electricity", "Primary energy source")
	days := flag.Int("days", 0, "Analysis period in days (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed for reproducible output (0 = time-based)")
	outputPath := flag.String("output", "", "Output file for dashboard (default: stdout)")
	htmlOutput := flag.Bool("html", false, "Generate HTML dashboard instead of Markdown")
	noCache := flag.Bool("no-cache", false, "Skip the daily result cache")
	saveConfig := flag.String("save-config", "", "Write the active configuration to this path and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("wattdash %s\n", GetVersion())
		os.Exit(0)
	}

	// Initialize logger
	logger := NewLogger(*debug)
	logger.Info("Starting wattdash", "version", GetVersion())

	// Load configuration
	logger.Info("Loading configuration", "config_file", *configPath)
	config, err := LoadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Override with command-line flags
	if *days > 0 {
		config.AnalysisPeriodDays = *days
	}
	if *debug {
		config.Debug = true
		logger = NewLogger(true)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Configuration loaded successfully")

	// Write the active configuration on demand
	if *saveConfig != "" {
		if err := config.Save(*saveConfig); err != nil {
			logger.Error("Failed to save configuration", "error", err)
			os.Exit(1)
		}
		logger.Info("Configuration saved", "path", *saveConfig)
		os.Exit(0)
	}

	// Initialize storage
	logger.Info("Initializing storage", "path", config.StoragePath)
	storage, err := NewStorage(config.StoragePath, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	// The generated range ends "now", so results are cacheable per calendar
	// day for a given profile and window
	cacheKey := DashboardCacheKey(*houseType, config.AnalysisPeriodDays, time.Now())

	var result *DashboardResult
	if !*noCache && *seed == 0 {
		var cached DashboardResult
		found, err := storage.LoadCache(cacheKey, &cached)
		if err != nil {
			logger.Warn("Failed to read cache", "error", err)
		} else if found {
			logger.Info("Using cached dashboard", "key", cacheKey)
			result = &cached
		}
	}

	if result == nil {
		result, err = buildDashboard(config, logger, *houseType, *energySource, *seed)
		if err != nil {
			logger.Error("Failed to build dashboard", "error", err)
			os.Exit(1)
		}

		if !*noCache && *seed == 0 {
			if err := storage.SaveCache(cacheKey, result, 24*time.Hour); err != nil {
				logger.Warn("Failed to cache dashboard", "error", err)
			}
		}

		// Archive the result
		if err := storage.SaveDashboardResult(result); err != nil {
			logger.Warn("Failed to save dashboard result", "error", err)
		}
	}

	// Generate the dashboard (HTML or Markdown)
	if *htmlOutput {
		logger.Info("Generating HTML dashboard")
		htmlReporter := NewHTMLReporter(logger)
		if err := htmlReporter.GenerateHTMLReport(result, *outputPath); err != nil {
			logger.Error("Failed to generate HTML dashboard", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("Generating Markdown dashboard")
		reporter := NewReporter(logger)
		if err := reporter.GenerateReport(result, *outputPath); err != nil {
			logger.Error("Failed to generate dashboard", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Dashboard generated successfully")
}

// buildDashboard runs generation, analysis, tip selection and chart
// rendering for one dashboard
func buildDashboard(config *Config, logger *Logger, houseType, energySource string, seed int64) (*DashboardResult, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("Generating synthetic data",
		"profile", houseType,
		"days", config.AnalysisPeriodDays,
	)
	generator := NewSeededGenerator(config, logger, seed)
	data, err := generator.GenerateAll(config.AnalysisPeriodDays, houseType, energySource)
	if err != nil {
		return nil, err
	}

	logger.Info("Performing analysis")
	analyzer := NewAnalyzer(config, logger)
	result, err := analyzer.Analyze(data)
	if err != nil {
		return nil, err
	}

	// Personalized tips: latest day against the period average
	tipEngine := NewTipEngine(rand.New(rand.NewSource(seed)), logger)
	currentUsage := result.Series[len(result.Series)-1].Consumption
	season := SeasonForMonth(time.Now().Month())
	result.Tips = tipEngine.TipsFor(result.HouseType, energySource, currentUsage, result.Summary.AverageDaily, season)

	logger.Info("Rendering charts")
	chartGen := NewChartGenerator(logger)
	chartGen.AttachCharts(result)

	return result, nil
}
