package main

import "github.com/andrescamacho/tradewinds-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
