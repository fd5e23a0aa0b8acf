package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/feliden/authgate/client"
)

var rootCmd = &cobra.Command{
	Use:   "authgate",
	Short: "authgate is a command line client for the authentication service",
	Long:  `authgate talks to a running authgated server and performs sign-up, sign-in and sign-out operations.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("addr", defaultServiceAddr(), "Base URL of the authgate server")
}

func defaultServiceAddr() string {
	if addr := os.Getenv("AUTHGATE_SERVICE_ADDR"); addr != "" {
		return addr
	}
	return "http://localhost:50051"
}

func newClient(cmd *cobra.Command) *client.Client {
	addr, _ := cmd.Flags().GetString("addr")
	return client.New(addr, &http.Client{})
}
