package main

import (
	"os"

	"github.com/idilsaglam/todomvc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
