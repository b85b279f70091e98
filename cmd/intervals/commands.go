package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/constraints"

	"github.com/b97tsk/intervalset"
	"github.com/b97tsk/intervalset/internal/script"
)

type _App struct {
	viper  *viper.Viper
	config *_Config
}

func newRootCommand() *cobra.Command {
	app := &_App{viper: viper.New()}

	root := &cobra.Command{
		Use:           "intervals",
		Short:         "Maintain sets of disjoint half-open intervals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := _loadConfig(app.viper, cmd.Flags())
			if err != nil {
				return err
			}
			app.config = c
			return _setupLogging(c.LogLevel)
		},
	}
	_bindFlags(app.viper, root.PersistentFlags())

	root.AddCommand(
		app.opCommand(script.Add, "add FROM TO", "Cover [FROM, TO), merging with overlapping or touching intervals"),
		app.opCommand(script.Remove, "remove FROM TO", "Uncover [FROM, TO), splitting intervals it cuts through"),
		app.applyCommand(),
		app.checkCommand(),
	)
	return root
}

func (app *_App) opCommand(kind script.Kind, use, short string) *cobra.Command {
	var initFile string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.config.Float {
				return _runOp[float64](app.config, cmd.OutOrStdout(), kind, initFile, args)
			}
			return _runOp[int64](app.config, cmd.OutOrStdout(), kind, initFile, args)
		},
	}
	cmd.Flags().StringVarP(&initFile, "init", "i", "", "initial set file, - for stdin")
	return cmd
}

func _runOp[T constraints.Ordered](c *_Config, w io.Writer, kind script.Kind, initFile string, args []string) error {
	s, err := _loadSet[T](initFile, c.Validate)
	if err != nil {
		return err
	}
	from, err := _parseEndpoint[T](args[0])
	if err != nil {
		return err
	}
	to, err := _parseEndpoint[T](args[1])
	if err != nil {
		return err
	}

	op := script.Op[T]{Kind: kind, From: from, To: to}
	if err := op.Apply(s); err != nil {
		return err
	}
	log.Debugf("%v -> %v", op, s)
	return _writeSet(w, s, c.Format)
}

func (app *_App) applyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply SCRIPT",
		Short: "Run a YAML script of add and remove operations, - for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.config.Float {
				return _runScript[float64](app.config, cmd.OutOrStdout(), args[0])
			}
			return _runScript[int64](app.config, cmd.OutOrStdout(), args[0])
		},
	}
}

func _runScript[T constraints.Ordered](c *_Config, w io.Writer, name string) error {
	sc, err := _loadScript[T](name, c.Validate)
	if err != nil {
		return err
	}
	s, err := sc.Run(func(i int, op script.Op[T], result *intervalset.Set[T]) {
		log.Debugf("op %d: %v -> %v", i, op, result)
	})
	if err != nil {
		return err
	}
	return _writeSet(w, s, c.Format)
}

func (app *_App) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Check that a set file is sorted, disjoint and non-adjacent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			if app.config.Float {
				s, err := _loadSet[float64](args[0], true)
				if err != nil {
					return err
				}
				n = s.Len()
			} else {
				s, err := _loadSet[int64](args[0], true)
				if err != nil {
					return err
				}
				n = s.Len()
			}
			fprintf(cmd.OutOrStdout(), "%s: %d intervals OK\n", args[0], n)
			return nil
		},
	}
}
