// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/kratos"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/invitations"
)

var invitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "Maintain invitations",
}

var sweepInvitationsCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Decline every expired pending invitation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAdminEnv()
		if err != nil {
			return err
		}
		defer env.close()

		notifier := notify.NewNotifier(notify.NewNoopPublisher(env.logger), time.Second, env.tracer, env.monitor, env.logger)
		defer notifier.Close()

		svc := invitations.NewService(
			env.storage,
			kratos.NewStaticDirectory(),
			notifier,
			env.authorizer,
			0,
			nil,
			env.tracer,
			env.monitor,
			env.logger,
		)

		declined, err := svc.SweepExpired(cmd.Context(), types.SystemAccountID)
		if err != nil {
			return fmt.Errorf("failed to sweep invitations: %w", err)
		}

		env.logger.Security().AdminAction(types.SystemAccountID, "invitations.sweep", fmt.Sprintf("%d", declined))
		fmt.Fprintf(cmd.OutOrStdout(), "Declined %d expired invitations\n", declined)
		return nil
	},
}

func init() {
	invitationsCmd.AddCommand(sweepInvitationsCmd)
	rootCmd.AddCommand(invitationsCmd)
}
