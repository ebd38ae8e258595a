package main

import "github.com/they4kman/gomastermind/cmd"

func main() {
	cmd.Execute()
}
