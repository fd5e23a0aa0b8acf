package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "signout <session-token>",
	Short: "Revoke a session token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := newClient(cmd).SignOut(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("signout failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("status: %s\n", res.Status)
	},
}

func init() {
	rootCmd.AddCommand(signOutCmd)
}
