package main

import "github.com/tmadsen/fuelrate/internal/cli"

func main() {
	cli.Execute()
}
