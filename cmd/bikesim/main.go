package main

import (
	"github.com/fahrwerk/bikesim/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
