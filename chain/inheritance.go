// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const AmountLen = 16

var (
	amountModulus = new(big.Int).Lsh(big.NewInt(1), 8*AmountLen)
	maxAmount     = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*AmountLen-1), big.NewInt(1))
	minAmount     = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 8*AmountLen-1))
)

// Amount is a signed 128-bit quantity stored as big-endian two's complement.
// It is never operated on, only carried.
type Amount [AmountLen]byte

func NewAmount(v *big.Int) (Amount, error) {
	var a Amount
	if v.Cmp(minAmount) < 0 || v.Cmp(maxAmount) > 0 {
		return a, ErrAmountOutOfRange
	}
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, amountModulus)
	}
	u.FillBytes(a[:])
	return a, nil
}

func AmountFromInt64(v int64) Amount {
	a, _ := NewAmount(big.NewInt(v))
	return a
}

func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, ErrNotANumber
	}
	return NewAmount(v)
}

func (a Amount) Big() *big.Int {
	v := new(big.Int).SetBytes(a[:])
	if a[0]&0x80 != 0 {
		v.Sub(v, amountModulus)
	}
	return v
}

func (a Amount) String() string { return a.Big().String() }

// MarshalJSON encodes the amount as a decimal string so it survives
// JSON number precision limits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

type Inheritance struct {
	Owner       common.Address `serialize:"true" json:"owner"`
	Heir        common.Address `serialize:"true" json:"heir"`
	AssetAmount Amount         `serialize:"true" json:"assetAmount"`
	Deadline    uint64         `serialize:"true" json:"deadline"`
	IsClaimed   bool           `serialize:"true" json:"isClaimed"`
}

// emptyInheritance is what an owner that never set anything up reads as.
// It cannot be told apart from a real record naming the owner as heir with
// a zero amount and zero deadline.
func emptyInheritance(owner common.Address) *Inheritance {
	return &Inheritance{
		Owner: owner,
		Heir:  owner,
	}
}
