// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package server manages the lifecycle of transport servers and their
// signal-driven shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/absmach/errcheck/logger"
)

// Server is a transport server with a blocking Start and an idempotent
// Stop.
type Server interface {
	Start() error
	Stop() error
}

// Config contains server bind and TLS settings, loadable from the
// environment with a per-server prefix.
type Config struct {
	Host     string `env:"HOST"        envDefault:"localhost"`
	Port     string `env:"PORT"        envDefault:""`
	CertFile string `env:"SERVER_CERT" envDefault:""`
	KeyFile  string `env:"SERVER_KEY"  envDefault:""`
}

// BaseServer contains the fields shared by transport servers.
type BaseServer struct {
	Ctx      context.Context
	Cancel   context.CancelFunc
	Name     string
	Address  string
	Config   Config
	Logger   logger.Logger
	Protocol string
}

func stopAllServer(servers ...Server) error {
	var err error
	for _, server := range servers {
		stopErr := server.Stop()
		if stopErr != nil {
			if err == nil {
				err = fmt.Errorf("%w", stopErr)
			} else {
				err = fmt.Errorf("%v ; %w", err, stopErr)
			}
		}
	}

	return err
}

// StopSignalHandler blocks until the context is done or a termination
// signal arrives, then stops all given servers.
func StopSignalHandler(ctx context.Context, cancel context.CancelFunc, logger logger.Logger, svcName string, servers ...Server) error {
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGABRT)
	select {
	case sig := <-c:
		defer cancel()
		err := stopAllServer(servers...)
		if err != nil {
			logger.Error(fmt.Sprintf("%s service error during shutdown: %v", svcName, err))
		}
		logger.Info(fmt.Sprintf("%s service shutdown by signal: %s", svcName, sig))
		return err
	case <-ctx.Done():
		return nil
	}
}
