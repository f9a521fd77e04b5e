//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package metric provides the shared metric vocabulary: value types,
// averaging modes, metric items, name rendering and the error taxonomy.
package metric

// EvalMetric describes one configured metric to evaluate. It is the
// declarative form consumed by the evaluator registry factories; the
// zero value of every optional field means "use the evaluator default".
type EvalMetric struct {
	// MetricName identifies the metric, one of the Metric* constants.
	MetricName string `json:"metric_name"`
	// Threshold marks predictions with scores at or above it as
	// positive. Nil leaves the decision rule to TopK or the default.
	Threshold *float64 `json:"threshold,omitempty"`
	// TopK marks the k highest-scoring classes per sample as positive.
	TopK int `json:"topk,omitempty"`
	// Items selects the confusion-based items to report.
	Items []Item `json:"items,omitempty"`
	// Average selects the averaging mode.
	Average Average `json:"average,omitempty"`
	// NumClasses declares the class count, required when samples carry
	// index-encoded ground-truth labels.
	NumClasses int `json:"num_classes,omitempty"`
	// MaxPredictions is k in mAP@k for retrieval metrics.
	MaxPredictions int `json:"max_predictions,omitempty"`
	// Option selects the retrieval AP summation convention.
	Option string `json:"option,omitempty"`
	// Prefix overrides the default metric name prefix. A pointer so an
	// explicit empty prefix can be distinguished from "use default".
	Prefix *string `json:"prefix,omitempty"`
}
