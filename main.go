package main

import "github.com/papapumpkin/roadworks/cmd"

func main() {
	cmd.Execute()
}
