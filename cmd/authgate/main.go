// Command authgate is the command line client for the authentication
// service. See the subcommand help for usage.
package main

func main() {
	Execute()
}
