package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roombook/internal/api"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and print the access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUsername == "" || loginPassword == "" {
			return fmt.Errorf("--username and --password are required")
		}
		out, err := client.Login(context.Background(), api.LoginRequest{
			Username: loginUsername,
			Password: loginPassword,
		})
		if err != nil {
			return err
		}
		if user := session.User(); user != nil {
			fmt.Printf("Signed in as %s (%s)\n", loginUsername, user.Role)
		}
		fmt.Printf("export ROOMBOOK_ACCESS_TOKEN=%s\n", out.Token)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
}
