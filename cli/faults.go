// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/spf13/cobra"

// NewFaultsCmd returns the faults command.
func NewFaultsCmd() *cobra.Command {
	cmds := []cobra.Command{
		{
			Use:   "status",
			Short: "Fault status",
			Long:  `Retrieves the diagnostic status of the instance`,
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 0 {
					logUsage(cmd.Use)
					return
				}

				status, err := sdk.Status(cmd.Context())
				if err != nil {
					logError(err)
					return
				}

				logJSON(status)
			},
		},
		{
			Use:   "arm <code>",
			Short: "Arm a fault",
			Long:  `Schedules a one-shot fault for the given diagnostic code`,
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 1 {
					logUsage(cmd.Use)
					return
				}

				status, err := sdk.Arm(cmd.Context(), args[0])
				if err != nil {
					logError(err)
					return
				}

				logJSON(status)
			},
		},
		{
			Use:   "disarm",
			Short: "Disarm the scheduled fault",
			Long:  `Discards the scheduled one-shot fault, if any`,
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 0 {
					logUsage(cmd.Use)
					return
				}

				status, err := sdk.Disarm(cmd.Context())
				if err != nil {
					logError(err)
					return
				}

				logJSON(status)
			},
		},
		{
			Use:   "codes",
			Short: "List diagnostic codes",
			Long:  `Lists the diagnostic codes registered by the instance`,
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 0 {
					logUsage(cmd.Use)
					return
				}

				infos, err := sdk.Codes(cmd.Context())
				if err != nil {
					logError(err)
					return
				}

				logJSON(infos)
			},
		},
		{
			Use:   "reset",
			Short: "Reset the diagnostic state",
			Long:  `Returns the diagnostic slots of the instance to neutral`,
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 0 {
					logUsage(cmd.Use)
					return
				}

				status, err := sdk.Reset(cmd.Context())
				if err != nil {
					logError(err)
					return
				}

				logJSON(status)
			},
		},
	}

	cmd := cobra.Command{
		Use:   "faults [status | arm | disarm | codes | reset]",
		Short: "Fault injection management",
		Long:  `Fault injection management: status, arm, disarm, codes or reset`,
	}

	for i := range cmds {
		cmd.AddCommand(&cmds[i])
	}

	return &cmd
}
