package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dec128 "github.com/shabbyrobe/go-dec128"
)

const usage = `deccalc evaluates a single Decimal operation and prints the result.

The rounding mode can be set with DECCALC_ROUNDING or --rounding, and is one
of half-away, half-even, to-zero, floor or ceiling.
`

var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

type config struct {
	Rounding dec128.Rounding `env:"DECCALC_ROUNDING" envDefault:"half-away"`
	Verbose  bool            `env:"DECCALC_VERBOSE"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, nil); err != nil {
		log.Fatal(err)
	}
}

// run executes args against a fresh command tree. If environ is nil, the
// process environment is used.
func run(args []string, out io.Writer, environ map[string]string) error {
	var cfg config
	var err error
	if environ == nil {
		err = env.Parse(&cfg)
	} else {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: environ})
	}
	if err != nil {
		return oops.Trace(err)
	}

	root := newRoot(&cfg)
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

type calc struct {
	cfg *config
	ctx dec128.Context
	log *zap.Logger
}

func newRoot(cfg *config) *cobra.Command {
	c := &calc{cfg: cfg, log: zap.NewNop()}

	var rounding string
	root := &cobra.Command{
		Use:           "deccalc",
		Short:         "Evaluate 96-bit decimal arithmetic",
		Long:          usage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rounding") {
				mode, err := dec128.ParseRounding(rounding)
				if err != nil {
					return oops.Trace(err)
				}
				c.cfg.Rounding = mode
			}
			c.ctx = dec128.Context{Rounding: c.cfg.Rounding}

			if c.cfg.Verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return oops.Trace(err)
				}
				c.log = logger
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&rounding, "rounding", cfg.Rounding.String(), "rounding mode")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log each operation to stderr")

	root.AddCommand(
		c.binary("add", "Add two decimals", dec128.Context.Add),
		c.binary("sub", "Subtract the second decimal from the first", dec128.Context.Sub),
		c.binary("mul", "Multiply two decimals", dec128.Context.Mul),
		c.binary("div", "Divide the first decimal by the second", dec128.Context.Quo),
		c.binary("rem", "Remainder of truncated division", dec128.Context.Rem),
		c.cmpCommand(),
		c.roundCommand(),
		c.bitsCommand(),
	)
	return root
}

type binaryOp func(ctx dec128.Context, a, b dec128.Decimal) (dec128.Decimal, error)

func (c *calc) binary(name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := c.operands(args)
			if err != nil {
				return err
			}

			res, err := op(c.ctx, a, b)
			if err != nil {
				c.log.Debug("operation failed", zap.String("op", name), zap.Stringer("a", a), zap.Stringer("b", b), zap.Error(err))
				return oops.Trace(err)
			}
			c.log.Debug("evaluated",
				zap.String("op", name),
				zap.Stringer("rounding", c.ctx.Rounding),
				zap.Stringer("a", a),
				zap.Stringer("b", b),
				zap.Stringer("result", res))

			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *calc) cmpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two decimals, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := c.operands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Cmp(b))
			return nil
		},
	}
}

func (c *calc) roundCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "round <a> <places>",
		Short: "Round a decimal to a number of decimal places",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.parse(args[0])
			if err != nil {
				return err
			}
			places, err := strconv.Atoi(args[1])
			if err != nil {
				return oops.Trace(err)
			}
			res := c.ctx.Round(a, places)
			c.log.Debug("rounded", zap.Stringer("a", a), zap.Int("places", places), zap.Stringer("result", res))
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *calc) bitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bits <a>",
		Short: "Dump the 128-bit representation of a decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.parse(args[0])
			if err != nil {
				return err
			}
			neg, coef, scale := a.Parts()

			out := cmd.OutOrStdout()
			bits := a.Bits()
			fmt.Fprintf(out, "%08x %08x %08x %08x\n", bits[0], bits[1], bits[2], bits[3])
			fmt.Fprintf(out, "coef:%s scale:%d neg:%v\n", coef, scale, neg)
			if c.cfg.Verbose {
				dumper.Fdump(out, a)
			}
			return nil
		},
	}
}

func (c *calc) parse(s string) (dec128.Decimal, error) {
	d, err := c.ctx.Parse(s)
	if err != nil {
		return d, oops.Trace(err)
	}
	return d, nil
}

func (c *calc) operands(args []string) (a, b dec128.Decimal, err error) {
	if a, err = c.parse(args[0]); err != nil {
		return a, b, err
	}
	if b, err = c.parse(args[1]); err != nil {
		return a, b, err
	}
	return a, b, nil
}
