package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/networth/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion over the subcommand names. Complete exits on its own
	// when invoked by the shell completion machinery.
	sub := make(map[string]*complete.Command)
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{}
	}
	completion := &complete.Command{Sub: sub}
	completion.Complete("nwt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
