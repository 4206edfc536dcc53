package main

import "github.com/papapumpkin/partitions/cmd"

func main() {
	cmd.Execute()
}
