// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Parsing
	ErrInvalidKeyFormat = errors.New("invalid key format")
	ErrNotANumber       = errors.New("not a number")
	ErrAmountOutOfRange = errors.New("amount does not fit in a signed 128-bit integer")

	// Genesis Correctness
	ErrInvalidMagic      = errors.New("invalid magic")
	ErrInvalidTTLWindow  = errors.New("ttl threshold must be non-zero and not exceed extend-to")
	ErrInvalidLookback   = errors.New("lookback window must be positive")
	ErrInvalidLedger     = errors.New("ledger seconds must be positive")
	ErrInvalidBlockLimit = errors.New("block tx limit must be positive")

	// Block Correctness
	ErrTimestampTooEarly      = errors.New("block timestamp too early")
	ErrTimestampTooLate       = errors.New("block timestamp too late")
	ErrInvalidHeight          = errors.New("invalid block height")
	ErrNoTxs                  = errors.New("no transactions")
	ErrTooManyTxs             = errors.New("too many transactions")
	ErrParentBlockNotVerified = errors.New("parent block not verified or accepted")

	// Tx Correctness
	ErrInvalidBlockID   = errors.New("invalid blockID")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrDuplicateTx      = errors.New("duplicate transaction")

	// Execution Correctness
	ErrUnauthorized        = errors.New("sender is not authorized")
	ErrInvalidDeadline     = errors.New("deadline must be in the future")
	ErrUnauthorizedHeir    = errors.New("unauthorized heir")
	ErrAlreadyClaimed      = errors.New("already claimed")
	ErrDeadlineNotReached  = errors.New("cannot claim before deadline")
	ErrInstanceArchived    = errors.New("instance storage archived")
	ErrInstanceNotArchived = errors.New("instance storage not archived")
)
