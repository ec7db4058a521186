package main

import "github.com/dotcommander/fitcheck/cmd"

func main() {
	cmd.Execute()
}
