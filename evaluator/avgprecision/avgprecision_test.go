//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package avgprecision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-clseval-go/evalsample"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

func fixtureSamples() []*evalsample.DataSample {
	preds := [][]float64{
		{0.9, 0.8, 0.3, 0.2},
		{0.1, 0.2, 0.2, 0.1},
		{0.7, 0.5, 0.9, 0.3},
		{0.8, 0.1, 0.1, 0.2},
	}
	targets := [][]float64{
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
	}
	samples := make([]*evalsample.DataSample, len(preds))
	for i := range preds {
		samples[i] = &evalsample.DataSample{
			PredLabel: evalsample.LabelRecord{Score: preds[i]},
			GTLabel:   evalsample.LabelRecord{Score: targets[i]},
		}
	}
	return samples
}

func TestComputeMAP(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	require.NoError(t, e.Process(fixtureSamples()))

	values, err := e.Compute(e.Results())
	require.NoError(t, err)
	assert.InDelta(t, 70.833, values["multi-label/mAP"].Scalar, 1e-3)
}

func TestComputeClasswise(t *testing.T) {
	e, err := New(WithAverage(metric.AverageNone))
	require.NoError(t, err)
	require.NoError(t, e.Process(fixtureSamples()))

	values, err := e.Compute(e.Results())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{100, 83.333, 100, 0},
		values["multi-label/AP_classwise"].Classwise, 1e-3)
}

func TestComputeIdempotent(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	require.NoError(t, e.Process(fixtureSamples()))

	first, err := e.Compute(e.Results())
	require.NoError(t, err)
	second, err := e.Compute(e.Results())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProcessExpandsIndexGroundTruth(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	require.NoError(t, e.Process([]*evalsample.DataSample{{
		PredLabel: evalsample.LabelRecord{Score: []float64{0.2, 0.8}},
		GTLabel:   evalsample.LabelRecord{Label: []int64{1}},
	}}))
	assert.Equal(t, []float64{0, 1}, e.Results()[0].GTScore)
}

func TestNewRejectsMicro(t *testing.T) {
	_, err := New(WithAverage(metric.AverageMicro))
	assert.ErrorIs(t, err, metric.ErrInvalidConfig)
}
