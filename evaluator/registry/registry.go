//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the mapping from metric names to evaluator
// factories.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/trpc-clseval-go/evaluator"
	"trpc.group/trpc-go/trpc-clseval-go/evaluator/avgprecision"
	"trpc.group/trpc-go/trpc-clseval-go/evaluator/multilabel"
	"trpc.group/trpc-go/trpc-clseval-go/evaluator/retrievalap"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
	"trpc.group/trpc-go/trpc-clseval-go/retrieval"
)

// Factory builds a configured evaluator from a metric definition.
// A nil definition yields an evaluator with all defaults.
type Factory func(m *metric.EvalMetric) (evaluator.Evaluator, error)

// Registry defines the interface for the evaluator factory registry.
type Registry interface {
	// Register registers an evaluator factory under the given name.
	Register(name string, f Factory) error
	// New builds a configured evaluator for the named metric.
	New(name string, m *metric.EvalMetric) (evaluator.Evaluator, error)
	// List returns the names of all registered factories.
	List() []string
}

// registry is the default implementation of Registry.
type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an evaluator registry with the built-in metrics registered.
func New() Registry {
	r := &registry{factories: make(map[string]Factory)}
	r.Register(metric.MetricMultiLabel, multiLabelFactory)
	r.Register(metric.MetricAveragePrecision, avgPrecisionFactory)
	r.Register(metric.MetricRetrievalAP, retrievalAPFactory)
	return r
}

// Register registers an evaluator factory.
// A factory registered under an existing name overwrites it.
func (r *registry) Register(name string, f Factory) error {
	if f == nil {
		return errors.New("evaluator factory is nil")
	}
	if name == "" {
		return errors.New("evaluator name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
	return nil
}

// New builds a configured evaluator by metric name.
// Returns os.ErrNotExist if no factory is registered under the name.
func (r *registry) New(name string, m *metric.EvalMetric) (evaluator.Evaluator, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: get evaluator %s: %w",
			metric.ErrInvalidConfig, name, os.ErrNotExist)
	}
	return f(m)
}

// List returns the names of all registered factories sorted lexicographically.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func multiLabelFactory(m *metric.EvalMetric) (evaluator.Evaluator, error) {
	var opts []multilabel.Option
	if m != nil {
		if m.Threshold != nil {
			opts = append(opts, multilabel.WithThreshold(*m.Threshold))
		}
		if m.TopK > 0 {
			opts = append(opts, multilabel.WithTopK(m.TopK))
		}
		if len(m.Items) > 0 {
			opts = append(opts, multilabel.WithItems(m.Items...))
		}
		if m.Average != "" {
			opts = append(opts, multilabel.WithAverage(m.Average))
		}
		if m.Prefix != nil {
			opts = append(opts, multilabel.WithPrefix(*m.Prefix))
		}
	}
	return multilabel.New(opts...)
}

func avgPrecisionFactory(m *metric.EvalMetric) (evaluator.Evaluator, error) {
	var opts []avgprecision.Option
	if m != nil {
		if m.Average != "" {
			opts = append(opts, avgprecision.WithAverage(m.Average))
		}
		if m.Prefix != nil {
			opts = append(opts, avgprecision.WithPrefix(*m.Prefix))
		}
	}
	return avgprecision.New(opts...)
}

func retrievalAPFactory(m *metric.EvalMetric) (evaluator.Evaluator, error) {
	var opts []retrievalap.Option
	if m != nil {
		if m.MaxPredictions > 0 {
			opts = append(opts, retrievalap.WithMaxPredictions(m.MaxPredictions))
		}
		if m.Option != "" {
			option, err := retrieval.ParseOption(m.Option)
			if err != nil {
				return nil, err
			}
			opts = append(opts, retrievalap.WithOption(option))
		}
		if m.Prefix != nil {
			opts = append(opts, retrievalap.WithPrefix(*m.Prefix))
		}
	}
	return retrievalap.New(opts...)
}
