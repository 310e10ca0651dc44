package main

import (
	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/notes-api/pkg/notesclient"
)

var (
	usersPage  int
	usersLimit int

	userName        string
	userDisplayName string
	userEmail       string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and create users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := newClient().ListUsers(cmd.Context(), usersPage, usersLimit)
		if err != nil {
			return err
		}

		return printJSON(cmd, list)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := newClient().CreateUser(cmd.Context(), notesclient.CreateUserRequest{
			Name:        optional(cmd, "name", userName),
			DisplayName: optional(cmd, "display-name", userDisplayName),
			Email:       optional(cmd, "email", userEmail),
		})
		if err != nil {
			return err
		}

		return printJSON(cmd, user)
	},
}

func init() {
	usersListCmd.Flags().IntVar(&usersPage, "page", 0, "page number, starting at 1")
	usersListCmd.Flags().IntVar(&usersLimit, "limit", 0, "page size")

	usersCreateCmd.Flags().StringVar(&userName, "name", "", "user name")
	usersCreateCmd.Flags().StringVar(&userDisplayName, "display-name", "", "display name")
	usersCreateCmd.Flags().StringVar(&userEmail, "email", "", "email address")

	usersCmd.AddCommand(usersListCmd, usersCreateCmd)
	rootCmd.AddCommand(usersCmd)
}
