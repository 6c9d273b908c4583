package aiassisted

import (
	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/installer"
	"github.com/rstlix0x0/aiassisted/pkg/marker"
	"github.com/rstlix0x0/aiassisted/pkg/ui"
)

func newUpdateCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		Example: MsgUpdateExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.target()
			if err != nil {
				return err
			}
			inst, err := a.newInstaller()
			if err != nil {
				return err
			}

			a.console.Info(MsgCheckingUpdates, target)

			st, err := inst.Status(cmd.Context(), target)
			if err != nil {
				return err
			}
			if !st.Installed {
				a.console.Info(MsgSuggestInstall)
				return errors.Newf(errors.ErrNotInstalled, MsgErrNotInstalled, target).
					WithDetail("path", st.InstallDir)
			}
			// A known identical version is never refetched, not even with --force
			if st.State == marker.UpToDate {
				a.console.Success(MsgAlreadyUpToDate, st.Local)
				return nil
			}

			a.console.Info(MsgUpdateAvailable)
			a.console.Field(MsgLabelCurrent, marker.Display(st.Local, st.LocalKnown))
			a.console.Field(MsgLabelLatest, marker.Display(st.Remote, st.RemoteKnown))

			result, err := inst.Update(cmd.Context(), target, installer.UpdateOptions{
				Force:     force,
				Confirmer: ui.NewPrompter(a.console, cmd.InOrStdin()),
			})
			if err != nil {
				return err
			}
			if result.Cancelled {
				a.console.Info(MsgUpdateCancelled)
				return nil
			}

			ver := marker.Display(result.Version, result.VersionKnown)
			if result.Updated == 0 {
				a.console.Success(MsgNothingChanged, ver)
			} else {
				a.console.Success(MsgUpdated, ver, result.Updated, result.Skipped)
			}
			if len(result.LocalOnly) > 0 {
				a.console.Info(MsgLocalOnlyKept)
				a.console.List("FilePath", result.LocalOnly)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}
