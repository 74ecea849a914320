package main

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	initCmd "github.com/DE-labtory/coinmatch/cmd/coinmatch/init"
	"github.com/DE-labtory/coinmatch/cmd/coinmatch/match"
	"github.com/DE-labtory/coinmatch/cmd/coinmatch/start"
	"github.com/DE-labtory/coinmatch/config"
	"github.com/DE-labtory/coinmatch/log"
	"github.com/urfave/cli"
)

const greeting = "Hello, world!"

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		stdlog.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "coinmatch"
	app.Version = "0.0.1"
	app.Compiled = time.Now()
	app.Usage = "Coins, optional values and the matches between them"
	app.UsageText = "coinmatch [options] command [command options] [arguments...]"
	app.Authors = []cli.Author{
		{
			Name:  "DE-labtory",
			Email: "de.labtory@gmail.com",
		},
	}
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "set debug mode",
		},
	}
	// The bare invocation reads no config, so nothing in it can fail.
	app.Action = func(c *cli.Context) error {
		_, err := fmt.Fprintln(c.App.Writer, greeting)
		return err
	}

	app.Commands = []cli.Command{}
	app.Commands = append(app.Commands, initCmd.Cmd(), start.Cmd())
	app.Commands = append(app.Commands, match.Cmds()...)
	for i := range app.Commands {
		app.Commands[i].Before = setupLogger
	}
	return app
}

func setupLogger(c *cli.Context) error {
	conf, err := config.Get()
	if err != nil {
		return err
	}

	lvl := conf.Log.Level
	if c.GlobalBool("debug") {
		lvl = "debug"
	}
	if err := log.SetLevel(lvl); err != nil {
		return err
	}
	if conf.Log.File != "" {
		return log.EnableFileLogger(true, conf.Log.File)
	}
	return nil
}
