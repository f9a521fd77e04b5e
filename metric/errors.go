//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import "errors"

// Error taxonomy shared by all engines and evaluators. Callers branch
// with errors.Is; detail is carried by the wrapping message.
var (
	// ErrInvalidConfig reports an invalid metric configuration, such as
	// an unknown averaging mode, an unknown metric item, an unknown
	// retrieval option, or a missing num_classes for index-encoded labels.
	ErrInvalidConfig = errors.New("invalid metric configuration")

	// ErrShapeMismatch reports that prediction and target matrices
	// disagree in shape, or that a declared class count disagrees with
	// the matrix width.
	ErrShapeMismatch = errors.New("prediction and target shape mismatch")

	// ErrUnsupportedLabel reports a label input that is neither a dense
	// matrix nor a sequence of per-sample label collections.
	ErrUnsupportedLabel = errors.New("unsupported label type")
)
