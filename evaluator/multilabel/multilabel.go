//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package multilabel provides the confusion-matrix based evaluator for
// multi-label multi-class classification: precision, recall, f1-score
// and support.
package multilabel

import (
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-clseval-go/confusion"
	"trpc.group/trpc-go/trpc-clseval-go/evalsample"
	"trpc.group/trpc-go/trpc-clseval-go/evaluator"
	"trpc.group/trpc-go/trpc-clseval-go/label"
	"trpc.group/trpc-go/trpc-clseval-go/log"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

// Evaluator accumulates per-sample prediction scores and one-hot
// ground truth, and computes confusion-based metrics at Compute time.
type Evaluator struct {
	threshold *float64
	topK      int
	items     []metric.Item
	average   metric.Average
	prefix    string
	results   []*evaluator.Result
}

// New creates a multi-label evaluator. The configuration is validated
// here; with neither threshold nor top-k configured, the default
// threshold of 0.5 applies. When both are configured the threshold
// wins and top-k is ignored, which only warrants a warning.
func New(opts ...Option) (*Evaluator, error) {
	o := newOptions(opts...)
	if !o.average.Valid() {
		return nil, fmt.Errorf("%w: unknown average %q", metric.ErrInvalidConfig, o.average)
	}
	for _, item := range o.items {
		if !item.Valid() {
			return nil, fmt.Errorf("%w: the metric item %q is not supported",
				metric.ErrInvalidConfig, item)
		}
	}
	if o.threshold == nil && o.topK == 0 {
		log.Warnf("neither thr nor topk is given, set thr as %.1f by default", metric.DefaultThreshold)
		thr := metric.DefaultThreshold
		o.threshold = &thr
	} else if o.threshold != nil && o.topK > 0 {
		log.Warnf("both thr and topk are given, use threshold in favor of top-k")
	}
	if o.topK < 0 {
		return nil, fmt.Errorf("%w: topk must be positive, got %d", metric.ErrInvalidConfig, o.topK)
	}
	prefix := metric.DefaultMultiLabelPrefix
	if o.prefix != nil {
		prefix = *o.prefix
	}
	return &Evaluator{
		threshold: o.threshold,
		topK:      o.topK,
		items:     o.items,
		average:   o.average,
		prefix:    prefix,
	}, nil
}

// Name returns the canonical metric name supported by this evaluator.
func (e *Evaluator) Name() string { return metric.MetricMultiLabel }

// Description explains what the evaluator measures.
func (e *Evaluator) Description() string {
	return "Computes precision, recall, f1-score and support from the confusion matrix " +
		"of multi-label classification predictions"
}

// Process consumes one batch of data samples. Each sample must carry
// per-class prediction scores; the ground truth may be per-class
// scores or index-encoded labels, which are expanded to one-hot rows
// of the prediction's width.
func (e *Evaluator) Process(samples []*evalsample.DataSample) error {
	for i, sample := range samples {
		if sample == nil {
			continue
		}
		res, err := toResult(sample)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		e.results = append(e.results, res)
	}
	return nil
}

// toResult copies the relevant sample fields into an accumulated
// record, detached from the caller's buffers.
func toResult(sample *evalsample.DataSample) (*evaluator.Result, error) {
	if !sample.PredLabel.HasScore() {
		return nil, fmt.Errorf("%w: sample is missing pred_label.score", metric.ErrUnsupportedLabel)
	}
	numClasses := len(sample.PredLabel.Score)
	res := &evaluator.Result{
		PredScore: append([]float64(nil), sample.PredLabel.Score...),
	}
	if sample.GTLabel.HasScore() {
		res.GTScore = append([]float64(nil), sample.GTLabel.Score...)
		return res, nil
	}
	gtScore, err := label.OneHot(toIntSlice(sample.GTLabel.Label), numClasses)
	if err != nil {
		return nil, err
	}
	res.GTScore = gtScore
	return res, nil
}

// Results returns the accumulated per-sample records.
func (e *Evaluator) Results() []*evaluator.Result { return e.results }

// Reset clears the accumulated records.
func (e *Evaluator) Reset() { e.results = nil }

// Compute stacks the given records and renders the configured items.
// Metric names encode the decision rule and averaging mode, for
// example "multi-label/precision_top1_classwise".
func (e *Evaluator) Compute(results []*evaluator.Result) (metric.Values, error) {
	if len(results) == 0 {
		return nil, errors.New("no accumulated results to compute")
	}
	predRows := make([][]float64, 0, len(results))
	gtRows := make([][]float64, 0, len(results))
	for _, res := range results {
		predRows = append(predRows, res.PredScore)
		gtRows = append(gtRows, res.GTScore)
	}

	callOpts := []confusion.Option{confusion.WithAverage(e.average)}
	suffix := ""
	if e.threshold != nil {
		callOpts = append(callOpts, confusion.WithThreshold(*e.threshold))
		suffix = metric.ThresholdSuffix(*e.threshold)
	} else {
		callOpts = append(callOpts, confusion.WithTopK(e.topK))
		suffix = metric.TopKSuffix(e.topK)
	}
	res, err := confusion.Calculate(label.Scores(predRows), label.Scores(gtRows), callOpts...)
	if err != nil {
		return nil, err
	}

	byItem := map[metric.Item]metric.Value{
		metric.ItemPrecision: res.Precision,
		metric.ItemRecall:    res.Recall,
		metric.ItemF1Score:   res.F1Score,
		metric.ItemSupport:   res.Support,
	}
	values := make(metric.Values, len(e.items))
	for _, item := range e.items {
		key := string(item) + suffix
		if e.average == metric.AverageNone {
			key += metric.ClasswiseSuffix
		} else {
			key += metric.AverageSuffix(e.average)
		}
		values[metric.Prefixed(e.prefix, key)] = byItem[item]
	}
	return values, nil
}

func toIntSlice(in []int64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// Ensure interface compliance.
var _ evaluator.Evaluator = (*Evaluator)(nil)
