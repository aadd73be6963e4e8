package main

import (
	"fmt"
	"os"

	"github.com/micheal-at/pairmux/internal/cli"
	"github.com/micheal-at/pairmux/internal/errors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(errors.ExitCode(err))
	}
}

func run() error {
	c, err := cli.New()
	if err != nil {
		return err
	}

	return c.Execute(os.Args[1:])
}
