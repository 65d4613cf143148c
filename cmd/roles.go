// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/roles"
)

var (
	roleWorkspaceType string
	roleIsStaff       bool
	rolePermissions   []string
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage the role registry",
}

var listRolesCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAdminEnv()
		if err != nil {
			return err
		}
		defer env.close()

		all, err := roles.NewService(env.storage, env.tracer, env.monitor, env.logger).FindAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list roles: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tWORKSPACE TYPE\tSTAFF\tPERMISSIONS")
		for _, r := range all {
			fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", r.Name, r.ForWorkspaceType, r.IsStaff, strings.Join(r.Permissions, ","))
		}
		return w.Flush()
	},
}

var createRoleCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAdminEnv()
		if err != nil {
			return err
		}
		defer env.close()

		r, err := roles.NewService(env.storage, env.tracer, env.monitor, env.logger).Create(cmd.Context(), &types.Role{
			Name:             args[0],
			ForWorkspaceType: types.WorkspaceType(roleWorkspaceType),
			IsStaff:          roleIsStaff,
			Permissions:      types.Permissions(rolePermissions),
		})
		if err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Role created: %s (ID: %s)\n", r.Name, r.ID)
		return nil
	},
}

var grantRoleCmd = &cobra.Command{
	Use:   "grant [role] [permission]",
	Short: "Add a permission to a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAdminEnv()
		if err != nil {
			return err
		}
		defer env.close()

		r, err := roles.NewService(env.storage, env.tracer, env.monitor, env.logger).AddPermission(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to grant permission: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Role %s permissions: %s\n", r.Name, strings.Join(r.Permissions, ","))
		return nil
	},
}

var revokeRoleCmd = &cobra.Command{
	Use:   "revoke [role] [permission]",
	Short: "Remove a permission from a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAdminEnv()
		if err != nil {
			return err
		}
		defer env.close()

		r, err := roles.NewService(env.storage, env.tracer, env.monitor, env.logger).RemovePermission(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to revoke permission: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Role %s permissions: %s\n", r.Name, strings.Join(r.Permissions, ","))
		return nil
	},
}

func init() {
	createRoleCmd.Flags().StringVar(&roleWorkspaceType, "workspace-type", "", "Workspace type the role is scoped to")
	createRoleCmd.Flags().BoolVar(&roleIsStaff, "staff", false, "Mark the role as a staff role")
	createRoleCmd.Flags().StringSliceVar(&rolePermissions, "permissions", []string{}, "Comma-separated list of permissions")

	rolesCmd.AddCommand(listRolesCmd)
	rolesCmd.AddCommand(createRoleCmd)
	rolesCmd.AddCommand(grantRoleCmd)
	rolesCmd.AddCommand(revokeRoleCmd)
	rootCmd.AddCommand(rolesCmd)
}
