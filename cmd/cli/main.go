package main

import "desta/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
