//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package multilabel

import "trpc.group/trpc-go/trpc-clseval-go/metric"

type options struct {
	threshold *float64
	topK      int
	items     []metric.Item
	average   metric.Average
	prefix    *string
}

func newOptions(opts ...Option) *options {
	o := &options{
		items:   metric.DefaultItems,
		average: metric.AverageMacro,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures the multi-label evaluator.
type Option func(*options)

// WithThreshold marks predictions with scores at or above thr as
// positive. Takes precedence over WithTopK when both are set.
func WithThreshold(thr float64) Option {
	return func(o *options) {
		o.threshold = &thr
	}
}

// WithTopK marks the k highest-scoring classes per sample as positive.
func WithTopK(k int) Option {
	return func(o *options) {
		o.topK = k
	}
}

// WithItems selects the metric items to report. Defaults to
// precision, recall and f1-score.
func WithItems(items ...metric.Item) Option {
	return func(o *options) {
		o.items = items
	}
}

// WithAverage sets the averaging mode. Defaults to macro.
func WithAverage(a metric.Average) Option {
	return func(o *options) {
		o.average = a
	}
}

// WithPrefix overrides the default "multi-label" metric name prefix.
// An empty prefix disables prefixing.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = &prefix
	}
}
