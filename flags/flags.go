// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName    = "config"
	ConfigURLFlagName = "config-url"
)

// BindFlags binds the configuration flags shared by every command of rootCMD
func BindFlags(rootCMD *cobra.Command) {
	flagSet := rootCMD.PersistentFlags()

	flagSet.String(ConfigFlagName, ".", "Path to JSON configuration file or 'env' to load configuration from BCN_ environment variables")
	bindFlag(flagSet, ConfigFlagName)

	flagSet.String(ConfigURLFlagName, "", "URL of the chain configuration. Overrides the chain configuration of the config file")
	bindFlag(flagSet, ConfigURLFlagName)
}

func bindFlag(flagSet *pflag.FlagSet, name string) {
	_ = viper.BindPFlag(name, flagSet.Lookup(name))
}
