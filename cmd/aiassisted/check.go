package aiassisted

import (
	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/marker"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
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

			result, err := inst.Check(cmd.Context(), target)
			if err != nil {
				return err
			}

			a.console.Field(MsgLabelCurrent, marker.Display(result.Local, result.LocalKnown))
			a.console.Field(MsgLabelLatest, marker.Display(result.Remote, result.RemoteKnown))
			a.console.Println("")

			if result.State == marker.UpToDate {
				a.console.Success(MsgUpToDate)
			} else {
				a.console.Warning(MsgAnUpdateIsReady)
			}

			switch {
			case result.Pending != nil:
				if len(result.Pending.New) > 0 {
					a.console.Info(MsgPendingNew)
					a.console.List("FilePath", result.Pending.New)
				}
				if len(result.Pending.Modified) > 0 {
					a.console.Info(MsgPendingModified)
					a.console.List("FilePath", result.Pending.Modified)
				}
			case result.DiffErr != nil:
				a.console.Warning(MsgPendingUnknown, result.DiffErr)
			}
			if len(result.LocalOnly) > 0 {
				a.console.Info(MsgPendingLocalOnly)
				a.console.List("Muted", result.LocalOnly)
			}

			if result.State != marker.UpToDate {
				a.console.Info(MsgSuggestUpdate)
			}
			return nil
		},
	}
}
