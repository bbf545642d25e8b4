// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/ChainSafe/bridge-connector/cli"
)

func main() {
	cli.Execute()
}
