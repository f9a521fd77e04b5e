//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package retrievalap provides the evaluator for ranked-retrieval
// average precision (mAP@k) over per-query gallery rankings.
package retrievalap

import (
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-clseval-go/evalsample"
	"trpc.group/trpc-go/trpc-clseval-go/evaluator"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
	"trpc.group/trpc-go/trpc-clseval-go/retrieval"
)

// DefaultMaxPredictions is k in mAP@k when none is configured.
const DefaultMaxPredictions = 100

type options struct {
	maxPredictions int
	option         retrieval.Option
	prefix         *string
}

// Option configures the retrieval evaluator.
type Option func(*options)

// WithMaxPredictions sets k, the maximum number of predictions per
// query taken into account. Defaults to 100.
func WithMaxPredictions(k int) Option {
	return func(o *options) {
		o.maxPredictions = k
	}
}

// WithOption selects the AP summation convention. Defaults to standard.
func WithOption(opt retrieval.Option) Option {
	return func(o *options) {
		o.option = opt
	}
}

// WithPrefix overrides the default "retrieval" metric name prefix.
// An empty prefix disables prefixing.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = &prefix
	}
}

// Evaluator accumulates one ranked prediction list and target id set
// per query, and averages per-query AP at Compute time.
type Evaluator struct {
	maxPredictions int
	option         retrieval.Option
	prefix         string
	results        []*evaluator.Result
}

// New creates a retrieval average precision evaluator.
func New(opts ...Option) (*Evaluator, error) {
	o := &options{
		maxPredictions: DefaultMaxPredictions,
		option:         retrieval.OptionStandard,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxPredictions <= 0 {
		return nil, fmt.Errorf("%w: max_predictions must be positive, got %d",
			metric.ErrInvalidConfig, o.maxPredictions)
	}
	if _, err := retrieval.ParseOption(string(o.option)); err != nil {
		return nil, err
	}
	prefix := metric.DefaultRetrievalPrefix
	if o.prefix != nil {
		prefix = *o.prefix
	}
	return &Evaluator{
		maxPredictions: o.maxPredictions,
		option:         o.option,
		prefix:         prefix,
	}, nil
}

// Name returns the canonical metric name supported by this evaluator.
func (e *Evaluator) Name() string { return metric.MetricRetrievalAP }

// Description explains what the evaluator measures.
func (e *Evaluator) Description() string {
	return "Computes mean average precision at k over similarity-ranked retrieval queries"
}

// Process consumes one batch of query samples. The prediction label
// carries the gallery ids ranked by similarity, most similar first;
// the ground truth label carries the relevant gallery ids.
func (e *Evaluator) Process(samples []*evalsample.DataSample) error {
	for i, sample := range samples {
		if sample == nil {
			continue
		}
		if len(sample.PredLabel.Label) == 0 {
			return fmt.Errorf("sample %d: %w: sample is missing ranked pred_label.label",
				i, metric.ErrUnsupportedLabel)
		}
		e.results = append(e.results, &evaluator.Result{
			PredIDs: append([]int64(nil), sample.PredLabel.Label...),
			GTIDs:   append([]int64(nil), sample.GTLabel.Label...),
		})
	}
	return nil
}

// Results returns the accumulated per-query records.
func (e *Evaluator) Results() []*evaluator.Result { return e.results }

// Reset clears the accumulated records.
func (e *Evaluator) Reset() { e.results = nil }

// Compute averages per-query AP and renders it as "retrieval/mAP@{k}".
func (e *Evaluator) Compute(results []*evaluator.Result) (metric.Values, error) {
	if len(results) == 0 {
		return nil, errors.New("no accumulated results to compute")
	}
	sum := 0.0
	for i, res := range results {
		ap, err := retrieval.Calculate(res.PredIDs, res.GTIDs, e.maxPredictions, e.option)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		sum += ap
	}
	key := metric.Prefixed(e.prefix, fmt.Sprintf("mAP@%d", e.maxPredictions))
	return metric.Values{key: metric.NewScalar(sum / float64(len(results)))}, nil
}

// Ensure interface compliance.
var _ evaluator.Evaluator = (*Evaluator)(nil)
