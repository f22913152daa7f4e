package main

import "github.com/Domenick1991/departures/internal/cli"

func main() {
	cli.Execute()
}
