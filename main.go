package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"uk.ac.bris.cs/cellsim/gol"
	"uk.ac.bris.cs/cellsim/sdl"
)

// SDL must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cellsim -i input -o output [-p processes]",
		Short:        "Evolve a toroidal cell world for 100 turns",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(v)
			if err := cfg.validate(); err != nil {
				return err
			}
			return simulate(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "path to the input world")
	flags.StringP("output", "o", "", "path to write the world to after the last turn")
	flags.IntP("processes", "p", 1, "number of workers")
	flags.Bool("vis", false, "show the world evolving in an SDL window")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("CELLSIM")
	v.AutomaticEnv()
	return cmd
}

func simulate(cfg config) error {
	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return err
	}
	world, err := gol.ReadGrid(in)
	in.Close()
	if err != nil {
		return err
	}

	p := gol.Params{Turns: gol.Generations, Threads: cfg.Threads}
	if cfg.Visualise {
		err = runWithViewer(p, world)
	} else {
		err = gol.Run(p, world, nil)
	}
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return err
	}
	if err := gol.WriteGrid(out, world); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("Completed %d turns on %dx%d with %d workers\n", p.Turns, world.Width(), world.Height(), p.Threads)
	return nil
}

// runWithViewer runs the simulation in the background while the viewer
// occupies the main thread.
func runWithViewer(p gol.Params, world *gol.Grid) error {
	events := make(chan gol.Event, 1000)
	alive := world.AliveCells()
	done := make(chan error, 1)
	go func() {
		done <- gol.Run(p, world, events)
	}()
	sdl.Run(world.Width(), world.Height(), alive, events)
	return <-done
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
