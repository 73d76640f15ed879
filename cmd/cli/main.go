// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the entry point of the fault-injection CLI.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/absmach/errcheck/cli"
	ecsdk "github.com/absmach/errcheck/pkg/sdk"
)

const defFaultsURL = "http://localhost:9180"

func main() {
	sdkConf := ecsdk.Config{
		FaultsURL:      defFaultsURL,
		MsgContentType: ecsdk.CTJSON,
	}

	// Root
	rootCmd := &cobra.Command{
		Use: "errcheck-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			conf, err := cli.ParseConfig(sdkConf)
			if err != nil {
				log.Fatalf("failed to parse config: %s", err.Error())
			}

			s := ecsdk.NewSDK(conf)
			cli.SetSDK(s)
		},
	}

	// API commands
	healthCmd := cli.NewHealthCmd()
	faultsCmd := cli.NewFaultsCmd()

	// Root Commands
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(faultsCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(&sdkConf.FaultsURL, "faults-url", "f", sdkConf.FaultsURL, "Faults service URL")
	rootCmd.PersistentFlags().BoolVarP(&sdkConf.TLSVerification, "tls-verification", "v", sdkConf.TLSVerification, "Do not skip https certificate checks")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", cli.ConfigPath, "Config path")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("failed to execute root cmd : %s", err.Error())
	}
}
