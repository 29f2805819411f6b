package main

import "bug-tracker.com/bug-tracker/cmd"

func main() {
	cmd.Execute()
}
