// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava-labs/inheritancevm/chain"
)

type codecCompatibility struct {
	CodecVersion map[string]uint16 `json:"codecVersion"`
}

const compatibilityFile = "../compatibility.json"

func TestCompatibility(t *testing.T) {
	compat, err := os.ReadFile(compatibilityFile)
	assert.NoError(t, err)

	var parsedCompat codecCompatibility
	err = json.Unmarshal(compat, &parsedCompat)
	assert.NoError(t, err)

	v, valueInJSON := parsedCompat.CodecVersion[Version.String()]
	assert.True(t, valueInJSON)
	assert.Equal(t, uint16(chain.CodecVersion), v)
}
