// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/syncreg"
	"github.com/db47h/syncreg/bench"
	"github.com/db47h/syncreg/internal/stim"
	"github.com/db47h/syncreg/logic"
)

var jsonLog bool

var runCmd = &cobra.Command{
	Use:   "run <stimulus.yaml>",
	Short: "Run a register through the cycles of a stimulus file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStimulus,
}

func init() {
	runCmd.Flags().BoolVar(&jsonLog, "json", false, "log cycles as JSON")
	rootCmd.AddCommand(runCmd)
}

func newLogger() (*zap.Logger, error) {
	if jsonLog {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func runStimulus(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	f, err := stim.Load(args[0])
	if err != nil {
		return err
	}
	cfg := f.Config()
	reg, err := syncreg.New(cfg)
	if err != nil {
		return err
	}

	log.Info("register configured",
		zap.Int("size", cfg.Size),
		zap.Stringer("reset_active_level", cfg.ResetActiveLevel),
		zap.Stringer("reset_value", reg.Out()))

	var (
		cur stim.Cycle
		out logic.Vector
	)
	b, err := bench.New(1, bench.Stage{
		Name: "reg",
		Dev:  reg,
		Stimulus: func(cycle uint64) (logic.Level, logic.Level, logic.Vector) {
			return cur.Reset.Level, cur.Enable.Level, cur.DataIn.Vector
		},
		Probe: func(v logic.Vector) { out = v },
	})
	if err != nil {
		return err
	}
	defer b.Dispose()

	for i, c := range f.Cycles {
		cur = c
		if err := b.TickTock(); err != nil {
			return err
		}
		log.Info("cycle",
			zap.Int("n", i),
			zap.Stringer("reset", c.Reset.Level),
			zap.Stringer("enable", c.Enable.Level),
			zap.Stringer("data_in", c.DataIn.Vector),
			zap.Stringer("data_out", out))
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
