package aiassisted

import (
	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "verify",
		Short:   MsgVerifyShort,
		Long:    MsgVerifyLong,
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

			report, err := inst.Verify(target)
			if err != nil {
				return err
			}

			total := len(report.OK) + len(report.Mismatched) + len(report.Missing)
			if report.Clean() {
				a.console.Success(MsgVerified, total)
				return nil
			}

			if len(report.Mismatched) > 0 {
				a.console.Header(MsgVerifyMismatch)
				a.console.List("Error", report.Mismatched)
			}
			if len(report.Missing) > 0 {
				a.console.Header(MsgVerifyMissing)
				a.console.List("Warning", report.Missing)
			}
			a.console.Info(MsgVerifyRepairTip)

			failed := len(report.Mismatched) + len(report.Missing)
			return errors.Newf(errors.ErrChecksumMismatch, MsgVerifyFailed, failed, total).
				WithDetail("mismatched", report.Mismatched).
				WithDetail("missing", report.Missing)
		},
	}
}
