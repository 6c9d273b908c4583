package aiassisted

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/config"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

func newRuntimeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "runtime",
		Short:       MsgRuntimeShort,
		Long:        MsgRuntimeLong,
		GroupID:     "misc",
		Annotations: map[string]string{annotationRuntimeIndependent: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgRuntimeListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := a.selectedRuntime()
			out := cmd.OutOrStdout()
			for _, name := range a.cfg.Runtime.Available {
				mark := " "
				if name == selected {
					mark = "*"
				}
				line := mark + " " + name
				if name != goRuntime {
					line += " " + MsgRuntimeNotExecutable
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: MsgRuntimeInfoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := a.selectedRuntime()
			executes := MsgNo
			if selected == goRuntime && a.cfg.HasRuntime(selected) {
				executes = MsgYes
			}
			a.console.Field(MsgLabelRuntime, selected)
			a.console.Field(MsgLabelDefault, a.cfg.Runtime.Default)
			a.console.Field(MsgLabelAvailable, strings.Join(a.cfg.Runtime.Available, ", "))
			a.console.Field(MsgLabelExecutable, executes)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set NAME",
		Short: MsgRuntimeSetShort,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || a.cfg == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return a.cfg.Runtime.Available, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !a.cfg.HasRuntime(name) {
				return errors.Newf(errors.ErrInvalidInput, MsgErrRuntime, name, strings.Join(a.cfg.Runtime.Available, ", ")).
					WithDetail("runtime", name)
			}
			path := a.configFile()
			if err := config.SetValue(filesystem.NewOS(), path, "runtime.default", name); err != nil {
				return err
			}
			a.console.Success(MsgRuntimeSet, name, path)
			return nil
		},
	})

	return cmd
}

// selectedRuntime is --runtime when given, runtime.default otherwise
func (a *app) selectedRuntime() string {
	if a.opts.runtime != "" {
		return a.opts.runtime
	}
	return a.cfg.Runtime.Default
}
