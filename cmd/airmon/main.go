package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

type Options struct {
	Verbose []bool `short:"v" long:"verbose" description:"enables verbose output, repeat for debug output"`
}

var opts = &Options{}

var parser = flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)

func Execute() error {
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		setVerbosity(len(opts.Verbose))
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	_, err := parser.Parse()
	return err
}

func main() {
	if err := Execute(); err != nil {
		if ferr, ok := err.(*flags.Error); ok == true && ferr.Type == flags.ErrHelp {
			fmt.Printf("%s\n", ferr.Message)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "[airmon] Unhandled error: %s\n", err)
		os.Exit(1)
	}
}
