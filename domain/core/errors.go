package core

import (
	"errors"
)

// Domain errors - centralized error definitions
var (
	// Dataset construction
	ErrFeatureCountMismatch = errors.New("feature name count does not match column count")
	ErrDuplicateFeature     = errors.New("duplicate feature name")
	ErrRaggedMatrix         = errors.New("matrix rows have unequal length")
	ErrEmptyDataset         = errors.New("dataset has no samples")
	ErrGoldenAlreadySet     = errors.New("golden structure already attached")
	ErrGoldenSizeMismatch   = errors.New("golden structure node count does not match feature count")

	// Structure construction
	ErrNodeOutOfRange = errors.New("node index out of range")
	ErrSelfLoop       = errors.New("self loop not allowed")
	ErrPairConflict   = errors.New("node pair already linked by an arc or edge")
	ErrNodeSetDiffers = errors.New("structures have different node counts")
)
