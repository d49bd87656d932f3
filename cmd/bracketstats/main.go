package main

import (
	"os"

	"github.com/tmadsen/bracketstats/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
