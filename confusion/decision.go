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
	"sort"

	"gonum.org/v1/gonum/mat"
)

// positiveMask converts continuous prediction scores into binary
// positive calls. A non-nil threshold wins over top-k; with neither,
// the default threshold applies upstream in Calculate.
func positiveMask(scores *mat.Dense, threshold *float64, topK int) *mat.Dense {
	if threshold != nil {
		return thresholdMask(scores, *threshold)
	}
	return topKMask(scores, topK)
}

// thresholdMask marks a cell positive iff its score is at or above thr.
func thresholdMask(scores *mat.Dense, thr float64) *mat.Dense {
	rows, cols := scores.Dims()
	mask := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if scores.At(i, j) >= thr {
				mask.Set(i, j, 1)
			}
		}
	}
	return mask
}

// topKMask marks, for each row independently, the k highest-scoring
// columns positive. Equal scores are ordered by the stable sort, so
// among ties the lower column index wins; no stronger tie-break is
// guaranteed. k larger than the class count is clamped.
func topKMask(scores *mat.Dense, k int) *mat.Dense {
	rows, cols := scores.Dims()
	if k > cols {
		k = cols
	}
	mask := mat.NewDense(rows, cols, nil)
	order := make([]int, cols)
	for i := 0; i < rows; i++ {
		for j := range order {
			order[j] = j
		}
		row := scores.RawRowView(i)
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]] > row[order[b]]
		})
		for _, j := range order[:k] {
			mask.Set(i, j, 1)
		}
	}
	return mask
}
