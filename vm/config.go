// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"encoding/json"
	"fmt"
	"time"
)

type Config struct {
	BuildInterval   time.Duration `serialize:"true" json:"buildInterval"`
	CompactInterval time.Duration `serialize:"true" json:"compactInterval"`

	MempoolSize       int `serialize:"true" json:"mempoolSize"`
	ActivityCacheSize int `serialize:"true" json:"activityCacheSize"`
	TxResultCacheSize int `serialize:"true" json:"txResultCacheSize"`
	BlockCacheSize    int `serialize:"true" json:"blockCacheSize"`

	// ManualBuild disables the build loop; blocks are only produced by
	// explicit [VM.BuildBlock] calls.
	ManualBuild bool `serialize:"true" json:"manualBuild"`
}

func (c *Config) SetDefaults() {
	c.BuildInterval = 500 * time.Millisecond
	c.CompactInterval = 1 * time.Minute

	c.MempoolSize = 1024
	c.ActivityCacheSize = 128
	c.TxResultCacheSize = 4096
	c.BlockCacheSize = 128
}

// ParseConfig overlays [b] (JSON) onto the default config.
func ParseConfig(b []byte) (Config, error) {
	var c Config
	c.SetDefaults()
	if len(b) > 0 {
		if err := json.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("%w: unable to parse config", err)
		}
	}
	if c.BuildInterval <= 0 || c.CompactInterval <= 0 {
		return Config{}, ErrInvalidConfig
	}
	if c.MempoolSize <= 0 || c.ActivityCacheSize <= 0 || c.TxResultCacheSize <= 0 || c.BlockCacheSize <= 0 {
		return Config{}, ErrInvalidConfig
	}
	return c, nil
}
