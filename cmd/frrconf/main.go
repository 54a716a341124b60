package main

import "frrconf/cmd/frrconf/cmd"

func main() {
	cmd.Execute()
}
