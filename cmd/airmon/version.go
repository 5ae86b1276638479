package main

import (
	"fmt"

	"github.com/formicidae-tracker/airmon/internal/airmon"
)

type VersionCommand struct{}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Printf("%s\n", airmon.AIRMON_VERSION)
	return nil
}

func init() {
	_, err := parser.AddCommand("version",
		"print airmon version",
		"prints airmon version on stdout and exit",
		&VersionCommand{})
	if err != nil {
		panic(err.Error())
	}
}
