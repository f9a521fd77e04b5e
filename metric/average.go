//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import "fmt"

// Average selects how per-class statistics collapse into final values.
type Average string

const (
	// AverageMacro computes each class separately, then takes the
	// unweighted mean over all classes.
	AverageMacro Average = "macro"
	// AverageMicro pools true positives, false positives and false
	// negatives across classes before computing a single value.
	AverageMicro Average = "micro"
	// AverageNone returns the per-class values unaveraged.
	AverageNone Average = "none"
)

// ParseAverage resolves a configuration string into an Average.
// The empty string resolves to AverageMacro, the engine default.
func ParseAverage(s string) (Average, error) {
	switch Average(s) {
	case "":
		return AverageMacro, nil
	case AverageMacro, AverageMicro, AverageNone:
		return Average(s), nil
	default:
		return "", fmt.Errorf("%w: unknown average %q, choose from %q, %q or %q",
			ErrInvalidConfig, s, AverageMacro, AverageMicro, AverageNone)
	}
}

// Valid reports whether the average is one of the supported modes.
func (a Average) Valid() bool {
	switch a {
	case AverageMacro, AverageMicro, AverageNone:
		return true
	}
	return false
}

// Item identifies one of the detailed confusion-based metric items.
type Item string

const (
	// ItemPrecision is the ratio tp / (tp + fp).
	ItemPrecision Item = "precision"
	// ItemRecall is the ratio tp / (tp + fn).
	ItemRecall Item = "recall"
	// ItemF1Score is the harmonic mean of precision and recall.
	ItemF1Score Item = "f1-score"
	// ItemSupport is the number of ground-truth positives per class.
	ItemSupport Item = "support"
)

// DefaultItems are the items reported when none are configured.
var DefaultItems = []Item{ItemPrecision, ItemRecall, ItemF1Score}

// Valid reports whether the item is supported.
func (i Item) Valid() bool {
	switch i {
	case ItemPrecision, ItemRecall, ItemF1Score, ItemSupport:
		return true
	}
	return false
}

// ParseItems resolves configuration strings into metric items.
func ParseItems(names []string) ([]Item, error) {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		item := Item(name)
		if !item.Valid() {
			return nil, fmt.Errorf("%w: the metric item %q is not supported, "+
				"choose from %q, %q, %q and %q",
				ErrInvalidConfig, name, ItemPrecision, ItemRecall, ItemF1Score, ItemSupport)
		}
		items = append(items, item)
	}
	return items, nil
}
