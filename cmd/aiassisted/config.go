package aiassisted

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/config"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.cfg.Render()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: MsgConfigGetShort,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return config.Default().Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.cfg.GetString(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       MsgConfigPathShort,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.configFile())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "reset",
		Short:       MsgConfigResetShort,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile()
			if err := config.Reset(filesystem.NewOS(), path); err != nil {
				return err
			}
			a.console.Success(MsgConfigReset, path)
			return nil
		},
	})

	return cmd
}

// configFile is the user configuration file: --config when given, the XDG
// location otherwise
func (a *app) configFile() string {
	if a.opts.config != "" {
		return paths.ExpandHome(a.opts.config)
	}
	return paths.ConfigFilePath()
}
