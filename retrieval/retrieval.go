//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package retrieval computes average precision for ranked retrieval
// queries: a gallery ranked by similarity against a set of relevant
// gallery ids, truncated to a maximum rank.
package retrieval

import (
	"fmt"

	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

// Option selects the summation convention for the ranked AP.
type Option string

const (
	// OptionStandard is the finite-sum method common in information
	// retrieval literature.
	OptionStandard Option = "standard"
	// OptionAverage integrates over the precision-recall curve by
	// averaging two adjacent precision points, the convention for the
	// Revisited Oxford/Paris datasets.
	OptionAverage Option = "average"
)

// ParseOption resolves a configuration string into an Option.
// The empty string resolves to OptionStandard, the default.
func ParseOption(s string) (Option, error) {
	switch Option(s) {
	case "":
		return OptionStandard, nil
	case OptionStandard, OptionAverage:
		return Option(s), nil
	default:
		return "", fmt.Errorf("%w: unknown retrieval option %q, choose from %q or %q",
			metric.ErrInvalidConfig, s, OptionStandard, OptionAverage)
	}
}

// Calculate computes the average precision of a single query.
//
// rankedIDs is the query's gallery ranked by similarity, most similar
// first; relevantIDs is the set of relevant gallery ids. The ranked
// list is truncated to the first maxPredictions entries, and the sum
// is normalized by min(len(relevantIDs), maxPredictions). A query
// with no relevant ids is defined to have AP 0. The result is a
// percentage in [0, 100].
func Calculate(rankedIDs, relevantIDs []int64, maxPredictions int, option Option) (float64, error) {
	switch option {
	case OptionStandard, OptionAverage:
	default:
		return 0, fmt.Errorf("%w: unknown retrieval option %q, choose from %q or %q",
			metric.ErrInvalidConfig, option, OptionStandard, OptionAverage)
	}
	if maxPredictions <= 0 {
		return 0, fmt.Errorf("%w: max_predictions must be positive, got %d",
			metric.ErrInvalidConfig, maxPredictions)
	}
	if len(rankedIDs) > maxPredictions {
		rankedIDs = rankedIDs[:maxPredictions]
	}
	numExpected := len(relevantIDs)
	if numExpected > maxPredictions {
		numExpected = maxPredictions
	}
	if numExpected == 0 {
		return 0, nil
	}

	relevant := make(map[int64]struct{}, len(relevantIDs))
	for _, id := range relevantIDs {
		relevant[id] = struct{}{}
	}

	sum := 0.0
	found := 0
	for rank, id := range rankedIDs {
		if _, ok := relevant[id]; !ok {
			continue
		}
		switch option {
		case OptionStandard:
			sum += float64(found+1) / float64(rank+1)
		case OptionAverage:
			left := 1.0
			if rank > 0 {
				left = float64(found) / float64(rank)
			}
			right := float64(found+1) / float64(rank+1)
			sum += (left + right) / 2
		}
		found++
	}
	return sum / float64(numExpected) * 100, nil
}
