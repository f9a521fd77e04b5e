//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package confusion

import "trpc.group/trpc-go/trpc-clseval-go/metric"

type options struct {
	average    metric.Average
	threshold  *float64
	topK       int
	numClasses int
}

func newOptions(opts ...Option) *options {
	o := &options{average: metric.AverageMacro}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures Calculate.
type Option func(*options)

// WithAverage sets the averaging mode. Defaults to macro.
func WithAverage(a metric.Average) Option {
	return func(o *options) {
		o.average = a
	}
}

// WithThreshold marks predictions with scores at or above thr as
// positive. When set, it takes precedence over WithTopK.
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

// WithNumClasses declares the class count. Required when either label
// is index-encoded; otherwise validated against the matrix width.
func WithNumClasses(n int) Option {
	return func(o *options) {
		o.numClasses = n
	}
}
