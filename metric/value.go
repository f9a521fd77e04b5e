//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import "encoding/json"

// Value holds a single computed metric: either a scalar (macro/micro
// averaging) or a per-class vector (classwise results).
type Value struct {
	// Scalar is the averaged value. Meaningful only when Classwise is nil.
	Scalar float64
	// Classwise holds one value per class when no averaging is applied.
	Classwise []float64
}

// NewScalar wraps a scalar metric value.
func NewScalar(v float64) Value { return Value{Scalar: v} }

// NewClasswise wraps a per-class metric vector.
func NewClasswise(v []float64) Value { return Value{Classwise: v} }

// IsClasswise reports whether the value carries a per-class vector.
func (v Value) IsClasswise() bool { return v.Classwise != nil }

// MarshalJSON renders the value as a bare number or a number array so
// the metric mapping serializes the way collaborators expect.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsClasswise() {
		return json.Marshal(v.Classwise)
	}
	return json.Marshal(v.Scalar)
}

// UnmarshalJSON accepts either form produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*v = Value{Scalar: scalar}
		return nil
	}
	var classwise []float64
	if err := json.Unmarshal(data, &classwise); err != nil {
		return err
	}
	*v = Value{Classwise: classwise}
	return nil
}

// Values maps a rendered metric name to its computed value.
type Values map[string]Value
