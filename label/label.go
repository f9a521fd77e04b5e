//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package label normalizes heterogeneous label representations into a
// canonical dense matrix. A Label is a tagged union over the three
// accepted forms: an (N, C) dense matrix of scores or one-hot values,
// a sequence of per-sample score rows, or a sequence of per-sample
// class index collections.
package label

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

type kind int

const (
	kindNone kind = iota
	kindDense
	kindScores
	kindIndices
)

// Label holds exactly one of the accepted label representations.
// The zero value holds none and fails normalization.
type Label struct {
	kind    kind
	dense   *mat.Dense
	scores  [][]float64
	indices [][]int
}

// Dense wraps an already dense (N, C) matrix of scores or one-hot values.
func Dense(m *mat.Dense) Label {
	return Label{kind: kindDense, dense: m}
}

// Scores wraps a sequence of per-sample score (or one-hot) rows.
func Scores(rows [][]float64) Label {
	return Label{kind: kindScores, scores: rows}
}

// Indices wraps a sequence of per-sample class index collections.
// Normalizing an index-encoded label requires a positive class count.
func Indices(rows [][]int) Label {
	return Label{kind: kindIndices, indices: rows}
}

// IsIndices reports whether the label is index-encoded.
func (l Label) IsIndices() bool { return l.kind == kindIndices }

// Normalize resolves the label into a dense (N, numClasses) matrix.
//
// Dense input is validated against numClasses when one is declared and
// passed through. Score rows must have uniform length. Index rows are
// expanded to one-hot rows of length numClasses, which is mandatory
// for this form. The returned matrix always has two dimensions and
// uniform row length.
func (l Label) Normalize(numClasses int) (*mat.Dense, error) {
	switch l.kind {
	case kindDense:
		_, c := l.dense.Dims()
		if numClasses > 0 && c != numClasses {
			return nil, fmt.Errorf("%w: matrix width %d does not match num_classes %d",
				metric.ErrShapeMismatch, c, numClasses)
		}
		return l.dense, nil
	case kindScores:
		return stackScores(l.scores, numClasses)
	case kindIndices:
		if numClasses <= 0 {
			return nil, fmt.Errorf("%w: num_classes is required for index-encoded labels",
				metric.ErrInvalidConfig)
		}
		return stackIndices(l.indices, numClasses)
	default:
		return nil, fmt.Errorf("%w: label must be a dense matrix, score rows or index rows",
			metric.ErrUnsupportedLabel)
	}
}

func stackScores(rows [][]float64, numClasses int) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: label holds no samples", metric.ErrUnsupportedLabel)
	}
	width := len(rows[0])
	if numClasses > 0 && width != numClasses {
		return nil, fmt.Errorf("%w: row width %d does not match num_classes %d",
			metric.ErrShapeMismatch, width, numClasses)
	}
	if width == 0 {
		return nil, fmt.Errorf("%w: label rows are empty", metric.ErrUnsupportedLabel)
	}
	out := mat.NewDense(len(rows), width, nil)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d",
				metric.ErrShapeMismatch, i, len(row), width)
		}
		out.SetRow(i, row)
	}
	return out, nil
}

func stackIndices(rows [][]int, numClasses int) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: label holds no samples", metric.ErrUnsupportedLabel)
	}
	out := mat.NewDense(len(rows), numClasses, nil)
	for i, row := range rows {
		oneHot, err := OneHot(row, numClasses)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out.SetRow(i, oneHot)
	}
	return out, nil
}

// OneHot expands a collection of class indices into a one-hot row of
// length numClasses with ones at the given indices.
func OneHot(indices []int, numClasses int) ([]float64, error) {
	row := make([]float64, numClasses)
	for _, idx := range indices {
		if idx < 0 || idx >= numClasses {
			return nil, fmt.Errorf("%w: class index %d out of range [0, %d)",
				metric.ErrShapeMismatch, idx, numClasses)
		}
		row[idx] = 1
	}
	return row, nil
}
