// Command cxcalc is a calculator and grapher for complex numbers.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/cxcalc/cli"
)

func main() {
	var stop context.CancelFunc
	cxcalc.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
