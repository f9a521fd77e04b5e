//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package evalsample defines the per-sample records exchanged with the
// evaluation framework that batches model outputs and collects results.
package evalsample

// DataSample pairs one model output with its ground truth.
type DataSample struct {
	// SampleID optionally identifies this sample.
	SampleID string `json:"sample_id,omitempty"`
	// PredLabel is the model prediction.
	PredLabel LabelRecord `json:"pred_label"`
	// GTLabel is the ground truth.
	GTLabel LabelRecord `json:"gt_label"`
}

// LabelRecord carries one label in either of the two wire forms.
//
// Classification samples put per-class scores (or one-hot values) in
// Score, or index-encoded class labels in Label. Retrieval samples put
// the similarity-ranked gallery ids in the prediction's Label and the
// relevant gallery ids in the ground truth's Label.
type LabelRecord struct {
	Score []float64 `json:"score,omitempty"`
	Label []int64   `json:"label,omitempty"`
}

// HasScore reports whether the record carries continuous scores.
func (r LabelRecord) HasScore() bool { return r.Score != nil }
