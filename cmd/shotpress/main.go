package main

import (
	"os"

	"shotpress/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
