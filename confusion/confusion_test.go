//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package confusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-clseval-go/label"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

const tolerance = 1e-4

func oneHotFixture() (label.Label, label.Label) {
	pred := label.Scores([][]float64{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	})
	target := label.Scores([][]float64{
		{1, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	})
	return pred, target
}

func TestCalculateMacro(t *testing.T) {
	pred, target := oneHotFixture()

	res, err := Calculate(pred, target)
	require.NoError(t, err)
	assert.InDelta(t, 43.75, res.Precision.Scalar, tolerance)
	assert.InDelta(t, 31.25, res.Recall.Scalar, tolerance)
	assert.InDelta(t, 33.3333, res.F1Score.Scalar, tolerance)
	assert.Equal(t, 8.0, res.Support.Scalar)
}

func TestCalculateMicro(t *testing.T) {
	pred, target := oneHotFixture()

	res, err := Calculate(pred, target, WithAverage(metric.AverageMicro))
	require.NoError(t, err)
	// Pooled counts: tp=3, fp=4, fn=5.
	assert.InDelta(t, 42.8571, res.Precision.Scalar, tolerance)
	assert.InDelta(t, 37.5, res.Recall.Scalar, tolerance)
	assert.InDelta(t, 40.0, res.F1Score.Scalar, tolerance)
	assert.Equal(t, 8.0, res.Support.Scalar)
}

func TestCalculateClasswise(t *testing.T) {
	pred, target := oneHotFixture()

	res, err := Calculate(pred, target, WithAverage(metric.AverageNone))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{50, 25, 100, 0}, res.Precision.Classwise, tolerance)
	assert.InDeltaSlice(t, []float64{25, 50, 50, 0}, res.Recall.Classwise, tolerance)
	assert.InDeltaSlice(t, []float64{33.3333, 33.3333, 66.6667, 0}, res.F1Score.Classwise, tolerance)
	assert.Equal(t, []float64{4, 2, 2, 0}, res.Support.Classwise)
}

func TestCalculateIndexEncoded(t *testing.T) {
	pred := label.Indices([][]int{{0}, {1}, {0, 1}, {3}})
	target := label.Indices([][]int{{0, 3}, {0, 2}, {1}, {3}})

	res, err := Calculate(pred, target, WithNumClasses(4))
	require.NoError(t, err)
	assert.InDelta(t, 50.0, res.Precision.Scalar, tolerance)
	assert.InDelta(t, 50.0, res.Recall.Scalar, tolerance)
	assert.InDelta(t, 45.8333, res.F1Score.Scalar, tolerance)
	assert.Equal(t, 6.0, res.Support.Scalar)
}

func TestCalculateIndexEncodedRequiresNumClasses(t *testing.T) {
	pred := label.Indices([][]int{{0}})
	target := label.Indices([][]int{{0}})

	_, err := Calculate(pred, target)
	assert.ErrorIs(t, err, metric.ErrInvalidConfig)
}

func TestCalculateTopK(t *testing.T) {
	pred, target := oneHotFixture()

	res, err := Calculate(pred, target, WithTopK(1))
	require.NoError(t, err)
	assert.InDelta(t, 37.5, res.Precision.Scalar, tolerance)
	assert.InDelta(t, 18.75, res.Recall.Scalar, tolerance)
	assert.InDelta(t, 25.0, res.F1Score.Scalar, tolerance)
	assert.Equal(t, 8.0, res.Support.Scalar)
}

func TestCalculateThresholdWinsOverTopK(t *testing.T) {
	pred, target := oneHotFixture()

	thresholdOnly, err := Calculate(pred, target, WithThreshold(0.5))
	require.NoError(t, err)
	both, err := Calculate(pred, target, WithThreshold(0.5), WithTopK(1))
	require.NoError(t, err)
	assert.Equal(t, thresholdOnly, both)
}

func TestCalculateShapeMismatch(t *testing.T) {
	pred := label.Scores([][]float64{{1, 0}, {0, 1}})
	target := label.Scores([][]float64{{1, 0, 0}, {0, 1, 0}})

	_, err := Calculate(pred, target)
	assert.ErrorIs(t, err, metric.ErrShapeMismatch)
}

func TestCalculateInvalidAverage(t *testing.T) {
	pred, target := oneHotFixture()

	_, err := Calculate(pred, target, WithAverage("weighted"))
	assert.ErrorIs(t, err, metric.ErrInvalidConfig)
}

func TestCalculateBounds(t *testing.T) {
	pred := label.Scores([][]float64{{0.9, 0.2, 0.4}, {0.1, 0.8, 0.6}, {0.7, 0.7, 0.2}})
	target := label.Scores([][]float64{{1, 0, 1}, {0, 1, 0}, {1, 0, 0}})

	for _, average := range []metric.Average{metric.AverageMacro, metric.AverageMicro} {
		res, err := Calculate(pred, target, WithAverage(average))
		require.NoError(t, err)
		for name, v := range map[string]float64{
			"precision": res.Precision.Scalar,
			"recall":    res.Recall.Scalar,
			"f1-score":  res.F1Score.Scalar,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s/%s", average, name)
			assert.LessOrEqual(t, v, 100.0, "%s/%s", average, name)
		}
		assert.GreaterOrEqual(t, res.Support.Scalar, 0.0)
		assert.Equal(t, res.Support.Scalar, float64(int(res.Support.Scalar)), "support is integral")
	}
}

// A macro average over a single class must equal that class's own
// value, and micro must agree with macro in the single-class case.
func TestAveragingIdentitySingleClass(t *testing.T) {
	pred := label.Scores([][]float64{{1}, {0}, {1}, {1}})
	target := label.Scores([][]float64{{1}, {1}, {0}, {1}})

	macro, err := Calculate(pred, target)
	require.NoError(t, err)
	classwise, err := Calculate(pred, target, WithAverage(metric.AverageNone))
	require.NoError(t, err)
	micro, err := Calculate(pred, target, WithAverage(metric.AverageMicro))
	require.NoError(t, err)

	assert.InDelta(t, classwise.Precision.Classwise[0], macro.Precision.Scalar, tolerance)
	assert.InDelta(t, classwise.Recall.Classwise[0], macro.Recall.Scalar, tolerance)
	assert.InDelta(t, classwise.F1Score.Classwise[0], macro.F1Score.Scalar, tolerance)
	assert.InDelta(t, macro.Precision.Scalar, micro.Precision.Scalar, tolerance)
	assert.InDelta(t, macro.Recall.Scalar, micro.Recall.Scalar, tolerance)
	assert.InDelta(t, macro.F1Score.Scalar, micro.F1Score.Scalar, tolerance)
}
