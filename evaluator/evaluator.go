//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the metric evaluator contract: an
// evaluator accumulates per-sample results batch by batch and renders
// a metric mapping once all batches have been processed.
package evaluator

import (
	"trpc.group/trpc-go/trpc-clseval-go/evalsample"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

// Evaluator is the facade implemented by every metric.
//
// The caller serializes Process and Compute; evaluators hold no locks.
// Compute is a pure function of the results it is given, so results
// gathered from several evaluator instances (for example one per
// distributed worker) can be merged externally and passed to a single
// Compute call. Computing the same results twice yields the same
// mapping.
type Evaluator interface {
	// Name returns the canonical metric name supported by this evaluator.
	Name() string
	// Description explains what the evaluator measures.
	Description() string
	// Process consumes one batch of data samples, appending one record
	// per sample to the internal result buffer.
	Process(samples []*evalsample.DataSample) error
	// Results returns the accumulated per-sample records.
	Results() []*Result
	// Compute renders the metric mapping from the given records.
	Compute(results []*Result) (metric.Values, error)
	// Reset clears the accumulated records for the next evaluation run.
	Reset()
}

// Result is one accumulated per-sample record. Classification
// evaluators fill the score fields; the retrieval evaluator fills the
// id fields. JSON tags let collaborators ship records across workers.
type Result struct {
	// PredScore holds the per-class prediction scores.
	PredScore []float64 `json:"pred_score,omitempty"`
	// GTScore holds the per-class ground truth, one-hot or scores.
	GTScore []float64 `json:"gt_score,omitempty"`
	// PredIDs holds the gallery ids ranked by similarity.
	PredIDs []int64 `json:"pred_ids,omitempty"`
	// GTIDs holds the relevant gallery ids.
	GTIDs []int64 `json:"gt_ids,omitempty"`
}
