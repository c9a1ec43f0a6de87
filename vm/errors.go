// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrNoPendingTx    = errors.New("no pending tx")
	ErrInvalidEmptyTx = errors.New("invalid empty transaction")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrNotInitialized = errors.New("vm not initialized")
	ErrMempoolFull    = errors.New("mempool full")
)
