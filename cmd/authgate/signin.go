package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "signin <username> <password>",
	Short: "Sign in and print the session token",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := newClient(cmd).SignIn(cmd.Context(), args[0], args[1])
		if err != nil {
			fmt.Printf("signin failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("status: %s\n", res.Status)
		if res.Status == "SUCCESS" {
			fmt.Printf("user uuid: %s\n", res.UserUUID)
			fmt.Printf("session token: %s\n", res.SessionToken)
		}
	},
	Args: cobra.ExactArgs(2),
}

func init() {
	rootCmd.AddCommand(signInCmd)
}
