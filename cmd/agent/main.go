// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main runs the device agent: it drives the simulated bring-up
// sequence against a shared diagnostic state and exposes the
// fault-injection control plane over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/absmach/errcheck"
	"github.com/absmach/errcheck/bringup"
	bringupapi "github.com/absmach/errcheck/bringup/api"
	"github.com/absmach/errcheck/bringup/drivers"
	"github.com/absmach/errcheck/faults"
	faultsapi "github.com/absmach/errcheck/faults/api"
	"github.com/absmach/errcheck/internal"
	jaegerclient "github.com/absmach/errcheck/internal/clients/jaeger"
	"github.com/absmach/errcheck/internal/env"
	"github.com/absmach/errcheck/internal/server"
	httpserver "github.com/absmach/errcheck/internal/server/http"
	mflog "github.com/absmach/errcheck/logger"
	"github.com/absmach/errcheck/pkg/messaging"
	mqttpub "github.com/absmach/errcheck/pkg/messaging/mqtt"
	natspub "github.com/absmach/errcheck/pkg/messaging/nats"
	"github.com/absmach/errcheck/pkg/uuid"
)

const (
	svcName        = "agent"
	envPrefixHTTP  = "EC_AGENT_HTTP_"
	defSvcHTTPPort = "9180"

	brokerMQTT = "mqtt"
	brokerNATS = "nats"
)

type config struct {
	LogLevel      string        `env:"EC_AGENT_LOG_LEVEL"      envDefault:"info"`
	ConfigFile    string        `env:"EC_AGENT_CONFIG_FILE"    envDefault:""`
	InstanceID    string        `env:"EC_AGENT_INSTANCE_ID"    envDefault:""`
	JaegerURL     string        `env:"EC_JAEGER_URL"           envDefault:"http://jaeger:14268/api/traces"`
	Broker        string        `env:"EC_AGENT_BROKER"         envDefault:""`
	BrokerURL     string        `env:"EC_AGENT_BROKER_URL"     envDefault:""`
	BrokerTopic   string        `env:"EC_AGENT_BROKER_TOPIC"   envDefault:"errcheck.faults"`
	MQTTUsername  string        `env:"EC_AGENT_MQTT_USERNAME"  envDefault:""`
	MQTTPassword  string        `env:"EC_AGENT_MQTT_PASSWORD"  envDefault:""`
	MQTTTimeout   time.Duration `env:"EC_AGENT_MQTT_TIMEOUT"   envDefault:"30s"`
	BringupTries  uint64        `env:"EC_AGENT_BRINGUP_TRIES"  envDefault:"5"`
	SelfTestEvery time.Duration `env:"EC_AGENT_SELF_TEST_EVERY" envDefault:"30s"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err.Error())
	}
	if cfg.ConfigFile != "" {
		if err := env.LoadFile(cfg.ConfigFile); err != nil {
			log.Fatalf("failed to load %s configuration file : %s", svcName, err.Error())
		}
		if err := env.Parse(&cfg); err != nil {
			log.Fatalf("failed to load %s configuration : %s", svcName, err.Error())
		}
	}

	logger, err := mflog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err.Error())
	}

	var exitCode int
	defer mflog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	state := errcheck.New()
	errcheck.SetLogFunc(func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	})

	tp, err := jaegerclient.NewProvider(svcName, cfg.JaegerURL, cfg.InstanceID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %v", err))
		}
	}()

	pub, err := newPublisher(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect to %s broker: %s", cfg.Broker, err))
		exitCode = 1
		return
	}
	if pub != nil {
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Error(fmt.Sprintf("failed to close %s publisher: %s", cfg.Broker, err))
			}
		}()
	}

	svc := newService(state, cfg.InstanceID, logger)
	device := newBringup(state, logger)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.Parse(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err.Error()))
		exitCode = 1
		return
	}
	hs := httpserver.New(ctx, cancel, svcName, httpServerConfig, faultsapi.MakeHandler(svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return runDevice(ctx, cfg, device, state, pub, logger)
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(state *errcheck.State, instanceID string, logger mflog.Logger) faults.Service {
	svc := faults.New(state, instanceID)
	svc = faultsapi.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics(svcName, "api")
	svc = faultsapi.MetricsMiddleware(svc, counter, latency)

	return svc
}

func newBringup(state *errcheck.State, logger mflog.Logger) bringup.Service {
	svc := bringup.New(drivers.NewBench(), state)
	svc = bringupapi.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics(svcName, "bringup")
	svc = bringupapi.MetricsMiddleware(svc, counter, latency)

	return svc
}

func newPublisher(cfg config) (messaging.Publisher, error) {
	switch cfg.Broker {
	case brokerMQTT:
		return mqttpub.NewPublisher(cfg.BrokerURL, cfg.MQTTUsername, cfg.MQTTPassword, cfg.MQTTTimeout)
	case brokerNATS:
		return natspub.NewPublisher(cfg.BrokerURL)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown broker type %q", cfg.Broker)
	}
}

// runDevice retries the bring-up sequence with exponential backoff and
// then keeps running periodic self-tests. Every failure is reported to
// the broker, if one is configured.
func runDevice(ctx context.Context, cfg config, device bringup.Service, state *errcheck.State, pub messaging.Publisher, logger mflog.Logger) error {
	operation := func() error {
		return device.Run(ctx)
	}
	notify := func(err error, next time.Duration) {
		logger.Warn(fmt.Sprintf("bring-up failed with code %s: %s, retrying in %s", state.LastError(), err, next))
		publishFault(ctx, cfg, state, pub, logger)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.BringupTries), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		logger.Error(fmt.Sprintf("bring-up did not complete: %s", err))
		publishFault(ctx, cfg, state, pub, logger)
	} else {
		logger.Info("device bring-up sequence completed")
	}

	ticker := time.NewTicker(cfg.SelfTestEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := device.SelfTest(ctx, bringup.ModeFast); err != nil {
				logger.Warn(fmt.Sprintf("self-test failed with code %s: %s", state.LastError(), err))
				publishFault(ctx, cfg, state, pub, logger)
			}
		}
	}
}

func publishFault(ctx context.Context, cfg config, state *errcheck.State, pub messaging.Publisher, logger mflog.Logger) {
	if pub == nil {
		return
	}

	rep := messaging.NewReport(cfg.InstanceID, svcName, state.LastError(), state.Group(), errcheck.InjectionEnabled())
	if err := pub.Publish(ctx, cfg.BrokerTopic, rep); err != nil {
		logger.Warn(fmt.Sprintf("failed to publish fault report: %s", err))
	}
}
