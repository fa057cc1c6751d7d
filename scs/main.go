package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/subshare/subshare/cmd"
	"github.com/subshare/subshare/logging"
)

func main() {
	// A .env file is optional; environment variables already set win.
	godotenv.Load()
	logging.Setup()

	// Shell completion: install with `complete -C scs scs`.
	complete.Complete("scs", completionTree())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completionTree() *complete.Command {
	yearFlags := map[string]complete.Predictor{"y": predict.Something}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":   predict.Dirs("*"),
			"secret": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"years":       {},
			"create-year": {Flags: map[string]complete.Predictor{"y": predict.Something, "copy-from": predict.Something}},
			"members":     {Flags: yearFlags},
			"add-member":  {Flags: map[string]complete.Predictor{"y": predict.Something, "name": predict.Something}},
			"remove-member": {Flags: map[string]complete.Predictor{
				"y": predict.Something, "name": predict.Something,
			}},
			"pay": {Flags: map[string]complete.Predictor{
				"y": predict.Something, "member": predict.Something,
				"m": predict.Something, "start": predict.Something, "n": predict.Something,
			}},
			"settings": {Flags: map[string]complete.Predictor{
				"y": predict.Something, "price": predict.Something, "slots": predict.Something,
			}},
			"summary": {Flags: yearFlags},
			"history": {Flags: map[string]complete.Predictor{
				"y": predict.Something, "member": predict.Something, "n": predict.Something,
			}},
			"export":  {Flags: map[string]complete.Predictor{"y": predict.Something, "o": predict.Files("*.csv")}},
			"backup":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"restore": {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
			"topic":   {},
		},
	}
}
