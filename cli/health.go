// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/spf13/cobra"

// NewHealthCmd returns the health check command.
func NewHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Health check",
		Long:  `Retrieves the health of the faults service`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsage(cmd.Use)
				return
			}

			info, err := sdk.Health(cmd.Context())
			if err != nil {
				logError(err)
				return
			}

			logJSON(info)
		},
	}
}
