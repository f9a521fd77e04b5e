//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSON(t *testing.T) {
	values := Values{
		"precision":           NewScalar(43.75),
		"precision_classwise": NewClasswise([]float64{50, 25, 100, 0}),
	}

	data, err := json.Marshal(values)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"precision":43.75`)
	assert.Contains(t, string(data), `"precision_classwise":[50,25,100,0]`)

	var decoded Values
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 43.75, decoded["precision"].Scalar)
	assert.False(t, decoded["precision"].IsClasswise())
	assert.Equal(t, []float64{50, 25, 100, 0}, decoded["precision_classwise"].Classwise)
}

func TestParseAverage(t *testing.T) {
	cases := []struct {
		in      string
		want    Average
		wantErr bool
	}{
		{"", AverageMacro, false},
		{"macro", AverageMacro, false},
		{"micro", AverageMicro, false},
		{"none", AverageNone, false},
		{"weighted", "", true},
	}
	for _, c := range cases {
		got, err := ParseAverage(c.in)
		if c.wantErr {
			assert.ErrorIs(t, err, ErrInvalidConfig, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got)
	}
}

func TestParseItems(t *testing.T) {
	items, err := ParseItems([]string{"precision", "support"})
	require.NoError(t, err)
	assert.Equal(t, []Item{ItemPrecision, ItemSupport}, items)

	_, err = ParseItems([]string{"accuracy"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNameSuffixes(t *testing.T) {
	assert.Equal(t, "", ThresholdSuffix(0.5))
	assert.Equal(t, "_thr-0.30", ThresholdSuffix(0.3))
	assert.Equal(t, "_top1", TopKSuffix(1))
	assert.Equal(t, "_micro", AverageSuffix(AverageMicro))
	assert.Equal(t, "", AverageSuffix(AverageMacro))
	assert.Equal(t, "multi-label/precision", Prefixed("multi-label", "precision"))
	assert.Equal(t, "precision", Prefixed("", "precision"))
}
