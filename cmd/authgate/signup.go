package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var signUpCmd = &cobra.Command{
	Use:   "signup <username> <password>",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := newClient(cmd).SignUp(cmd.Context(), args[0], args[1])
		if err != nil {
			fmt.Printf("signup failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("status: %s\n", res.Status)
	},
}

func init() {
	rootCmd.AddCommand(signUpCmd)
}
