// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strconv"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/inheritancevm/vm"
)

const (
	// Handlers are mounted where an avalanchego node would serve them
	baseURL = "/ext/bc/" + vm.Name

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func runFunc(cmd *cobra.Command, args []string) error {
	lvl, err := log.LvlFromString(viper.GetString(logLevelKey))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	genesisBytes, err := readOptional(viper.GetString(genesisFileKey))
	if err != nil {
		return err
	}
	configBytes, err := readOptional(viper.GetString(configFileKey))
	if err != nil {
		return err
	}

	db, err := openDB(viper.GetString(dbDirKey))
	if err != nil {
		return err
	}
	defer db.Close()

	v := &vm.VM{}
	if err := v.Initialize(prefixdb.New([]byte(vm.Name), db), genesisBytes, configBytes); err != nil {
		return err
	}

	handlers, err := v.CreateHandlers()
	if err != nil {
		_ = v.Shutdown()
		return err
	}
	mux := http.NewServeMux()
	for endpoint, h := range handlers {
		mux.Handle(path.Join(baseURL, endpoint), h)
	}
	srv := &http.Server{
		Addr:              net.JoinHostPort(viper.GetString(httpHostKey), strconv.Itoa(viper.GetInt(httpPortKey))),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("serving inheritancevm", "addr", srv.Addr, "base", baseURL)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	err = g.Wait()
	if serr := v.Shutdown(); serr != nil {
		log.Error("unable to shut down vm", "err", serr)
		if err == nil {
			err = serr
		}
	}
	return err
}

func openDB(dir string) (database.Database, error) {
	if dir == "" {
		log.Warn("no database directory given, state will not survive a restart")
		return memdb.New(), nil
	}
	return leveldb.New(dir, nil, logging.NoLog{})
}

func readOptional(file string) ([]byte, error) {
	if file == "" {
		return nil, nil
	}
	return os.ReadFile(file)
}
