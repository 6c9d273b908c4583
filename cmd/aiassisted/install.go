package aiassisted

import (
	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/installer"
	"github.com/rstlix0x0/aiassisted/pkg/marker"
)

func newInstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
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

			a.console.Info(MsgInstalling, target)

			st, err := inst.Status(cmd.Context(), target)
			if err != nil {
				return err
			}
			if st.Installed {
				a.reportExisting(st)
				return nil
			}

			result, err := inst.Install(cmd.Context(), target)
			if err != nil {
				return err
			}

			a.console.Success(MsgInstalled, marker.Display(result.Version, result.VersionKnown), result.Files)
			a.console.Println("")
			a.console.Println(MsgInstallTips)
			return nil
		},
	}
}

// reportExisting explains why install left an existing tree alone
func (a *app) reportExisting(st *installer.Status) {
	switch {
	case !st.LocalKnown:
		a.console.Warning(MsgNoLocalVersion)
		a.console.Info(MsgSuggestForce)
	case !st.RemoteKnown:
		a.console.Warning(MsgNoRemoteVersion)
		a.console.Field(MsgLabelCurrent, st.Local)
		a.console.Info(MsgSuggestUpdate)
	case st.State == marker.UpToDate:
		a.console.Success(MsgAlreadyUpToDate, st.Local)
	default:
		a.console.Warning(MsgInstalledOutdated)
		a.console.Field(MsgLabelCurrent, st.Local)
		a.console.Field(MsgLabelLatest, marker.Display(st.Remote, st.RemoteKnown))
		a.console.Info(MsgSuggestUpdate)
	}
}
