//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import "fmt"

// Canonical metric names registered by default, shared between the
// registry and entry packages so they are defined only once.
const (
	MetricMultiLabel       = "multi_label"
	MetricAveragePrecision = "average_precision"
	MetricRetrievalAP      = "retrieval_average_precision"
)

// Default name prefixes, prepended as "{prefix}/{name}" to
// disambiguate homonymous metrics of different evaluators.
const (
	DefaultMultiLabelPrefix = "multi-label"
	DefaultRetrievalPrefix  = "retrieval"
)

// DefaultThreshold is the decision threshold used when neither a
// threshold nor a top-k is configured.
const DefaultThreshold = 0.5

// ClasswiseSuffix marks values that are per-class vectors.
const ClasswiseSuffix = "_classwise"

// ThresholdSuffix renders the name suffix encoding a decision
// threshold. The default threshold produces no suffix.
func ThresholdSuffix(thr float64) string {
	if thr == DefaultThreshold {
		return ""
	}
	return fmt.Sprintf("_thr-%.2f", thr)
}

// TopKSuffix renders the name suffix encoding a top-k decision rule.
func TopKSuffix(k int) string {
	return fmt.Sprintf("_top%d", k)
}

// AverageSuffix renders the name suffix encoding a non-default
// averaging mode. Macro is the default and produces no suffix;
// classwise rendering is handled separately by ClasswiseSuffix.
func AverageSuffix(a Average) string {
	if a == AverageMicro {
		return fmt.Sprintf("_%s", a)
	}
	return ""
}

// Prefixed joins a metric name with its evaluator prefix.
func Prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
