package main

import "github.com/azztche/ate-dme-obst/cmd"

func main() {
	cmd.Execute()
}
