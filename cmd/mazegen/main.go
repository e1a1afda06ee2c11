package main

import "github.com/katalvlaran/labyrinth/internal/cli"

func main() {
	cli.Execute()
}
