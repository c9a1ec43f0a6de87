// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Every flag can also be set through the environment, e.g.
// INHERITANCEVM_DB_DIR for --db-dir.
const envPrefix = "INHERITANCEVM"

const (
	dbDirKey       = "db-dir"
	genesisFileKey = "genesis-file"
	configFileKey  = "config-file"
	httpHostKey    = "http-host"
	httpPortKey    = "http-port"
	logLevelKey    = "log-level"
)

func init() {
	fs := rootCmd.PersistentFlags()
	addFlags(fs)
	if err := viper.BindPFlags(fs); err != nil {
		panic(err)
	}
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(dbDirKey, "", "leveldb directory (in-memory database if empty)")
	fs.String(genesisFileKey, "", "genesis file path (default genesis if empty)")
	fs.String(configFileKey, "", "VM config file path (default config if empty)")
	fs.String(httpHostKey, "127.0.0.1", "HTTP listen host")
	fs.Uint16(httpPortKey, 9650, "HTTP listen port")
	fs.String(logLevelKey, "info", "log level (trace, debug, info, warn, error, crit)")
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
