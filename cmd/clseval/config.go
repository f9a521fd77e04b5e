//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

// Config is the YAML evaluation configuration consumed by clseval.
type Config struct {
	// Metrics lists the metrics to evaluate over the sample file.
	Metrics []MetricConfig `yaml:"metrics"`
}

// MetricConfig is the YAML form of one metric definition.
type MetricConfig struct {
	MetricName     string   `yaml:"metric_name"`
	Threshold      *float64 `yaml:"threshold"`
	TopK           int      `yaml:"topk"`
	Items          []string `yaml:"items"`
	Average        string   `yaml:"average"`
	NumClasses     int      `yaml:"num_classes"`
	MaxPredictions int      `yaml:"max_predictions"`
	Option         string   `yaml:"option"`
	Prefix         *string  `yaml:"prefix"`
}

// LoadConfig reads and validates the evaluation configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Metrics) == 0 {
		return nil, fmt.Errorf("config %s declares no metrics", path)
	}
	for i, m := range cfg.Metrics {
		if m.MetricName == "" {
			return nil, fmt.Errorf("config %s: metrics[%d] is missing metric_name", path, i)
		}
	}
	return &cfg, nil
}

// EvalMetric converts the YAML form into the registry's definition.
func (m MetricConfig) EvalMetric() (*metric.EvalMetric, error) {
	average, err := metric.ParseAverage(m.Average)
	if err != nil {
		return nil, err
	}
	items, err := metric.ParseItems(m.Items)
	if err != nil {
		return nil, err
	}
	return &metric.EvalMetric{
		MetricName:     m.MetricName,
		Threshold:      m.Threshold,
		TopK:           m.TopK,
		Items:          items,
		Average:        average,
		NumClasses:     m.NumClasses,
		MaxPredictions: m.MaxPredictions,
		Option:         m.Option,
		Prefix:         m.Prefix,
	}, nil
}
