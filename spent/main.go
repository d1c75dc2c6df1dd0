package main

import (
	"context"
	"flag"
	"os"
	"path"

	"expenses/cmd"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// An optional .env can set EXPENSES_FILE.
	_ = godotenv.Load()

	// With no arguments, enter the interactive menu.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "menu")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
