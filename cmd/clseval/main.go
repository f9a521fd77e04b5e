//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package main provides the clseval binary: it evaluates configured
// classification/retrieval metrics over a file of data samples and
// prints the metric mapping as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-clseval-go/evalsample"
	"trpc.group/trpc-go/trpc-clseval-go/evaluator/registry"
	"trpc.group/trpc-go/trpc-clseval-go/log"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

var (
	configPath  string
	samplesPath string
	logLevel    string
)

// Report is the JSON document emitted for one evaluation run.
type Report struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Samples     int           `json:"samples"`
	Metrics     metric.Values `json:"metrics"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "clseval",
		Short: "clseval - classification/retrieval metric evaluation",
		Long: `clseval evaluates classification and retrieval metrics over a file
of model predictions paired with ground-truth labels.

Examples:
  clseval --config eval.yaml --samples samples.json
  clseval --config eval.yaml --samples samples.json --log-level debug`,
		RunE:         runEval,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&configPath, "config", "eval.yaml", "evaluation config file (YAML)")
	rootCmd.Flags().StringVar(&samplesPath, "samples", "samples.json", "data samples file (JSON array)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", log.LevelInfo, "log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEval(cmd *cobra.Command, _ []string) error {
	log.SetLevel(logLevel)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	samples, err := loadSamples(samplesPath)
	if err != nil {
		return err
	}
	log.Infof("loaded %d samples and %d metric configs", len(samples), len(cfg.Metrics))

	values, err := evaluate(cfg, samples)
	if err != nil {
		return err
	}

	report := Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Samples:     len(samples),
		Metrics:     values,
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// evaluate runs every configured metric over the samples and merges
// the rendered mappings. Name prefixes keep homonymous metrics of
// different evaluators apart; a genuine collision is an error.
func evaluate(cfg *Config, samples []*evalsample.DataSample) (metric.Values, error) {
	reg := registry.New()
	merged := metric.Values{}
	for i, metricCfg := range cfg.Metrics {
		evalMetric, err := metricCfg.EvalMetric()
		if err != nil {
			return nil, fmt.Errorf("metrics[%d]: %w", i, err)
		}
		e, err := reg.New(metricCfg.MetricName, evalMetric)
		if err != nil {
			return nil, fmt.Errorf("metrics[%d]: %w", i, err)
		}
		if err := e.Process(samples); err != nil {
			return nil, fmt.Errorf("metrics[%d] %s: process: %w", i, metricCfg.MetricName, err)
		}
		values, err := e.Compute(e.Results())
		if err != nil {
			return nil, fmt.Errorf("metrics[%d] %s: compute: %w", i, metricCfg.MetricName, err)
		}
		for name, value := range values {
			if _, ok := merged[name]; ok {
				return nil, fmt.Errorf("metrics[%d] %s: duplicate metric name %q, "+
					"set distinct prefixes", i, metricCfg.MetricName, name)
			}
			merged[name] = value
		}
		log.Debugf("computed %s over %d results", metricCfg.MetricName, len(e.Results()))
	}
	return merged, nil
}

func loadSamples(path string) ([]*evalsample.DataSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples %s: %w", path, err)
	}
	var samples []*evalsample.DataSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse samples %s: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("samples file %s holds no samples", path)
	}
	return samples, nil
}
