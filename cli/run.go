// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/ChainSafe/bridge-connector/app"
	"github.com/spf13/cobra"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run bridge connector",
		Long:  "Run bridge connector API serving bridge requests of the custody account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Run(); err != nil {
				return err
			}
			return nil
		},
	}
)
