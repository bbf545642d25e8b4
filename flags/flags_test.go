// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags_test

import (
	"testing"

	"github.com/ChainSafe/bridge-connector/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type BindFlagsTestSuite struct {
	suite.Suite
}

func TestRunBindFlagsTestSuite(t *testing.T) {
	suite.Run(t, new(BindFlagsTestSuite))
}

func (s *BindFlagsTestSuite) Test_FlagsBoundToViper() {
	cmd := &cobra.Command{Use: "test"}
	flags.BindFlags(cmd)

	err := cmd.PersistentFlags().Parse([]string{"--config", "env", "--config-url", "http://config.local"})

	s.Nil(err)
	s.Equal("env", viper.GetString(flags.ConfigFlagName))
	s.Equal("http://config.local", viper.GetString(flags.ConfigURLFlagName))
}
