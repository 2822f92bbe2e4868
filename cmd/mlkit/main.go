package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/drakos74/mlkit/infra/config"
	"github.com/drakos74/mlkit/internal/logdir"
	"github.com/drakos74/mlkit/internal/metrics"
	"github.com/drakos74/mlkit/internal/run"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const configKey = "mlkit"

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: mlkit <command> [flags]

commands:
  logdir    print (or create) the log directory name of a new run
  split     split a csv dataset into balanced train, validation and test sets
  schedule  trace the configured learning rate schedule
  run       split and trace within a single run directory
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := execute(os.Args[1], os.Args[2:]); err != nil {
		log.Error().Err(err).Str("command", os.Args[1]).Msg("command failed")
		os.Exit(1)
	}
}

func execute(command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	configDir := fs.String("config", config.Path, "config directory")
	mode := fs.String("mode", "", "log dir mode: date or datetime")
	base := fs.String("base", "", "base directory of the run directories")
	data := fs.String("data", "", "csv dataset to split")
	headers := fs.Bool("headers", false, "the csv dataset has a header row")
	epochs := fs.Int("epochs", -1, "number of epochs to trace")
	create := fs.Bool("create", false, "create the log directory")
	dry := fs.Bool("dry", false, "do not write anything to the filesystem")
	noStore := fs.Bool("nostore", false, "do not store the run reports and metadata")
	debug := fs.Bool("debug", false, "log every epoch")
	serve := fs.Bool("metrics", false, "serve prometheus metrics")
	port := fs.Int("port", metrics.DefaultPort, "port of the metrics endpoint")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *serve {
		metrics.Serve(*port)
	}

	cfg := run.DefaultConfig()
	if _, err := config.Load(*configDir, configKey, &cfg); err != nil {
		log.Warn().Err(err).Str("dir", *configDir).Msg("using default config")
	}
	if *mode != "" {
		cfg.LogDir.Mode = logdir.Mode(*mode)
	}
	if *base != "" {
		cfg.LogDir.Base = *base
	}
	if *epochs >= 0 {
		cfg.Epochs = *epochs
	}
	if *headers {
		cfg.Split.Headers = true
	}
	cfg.Dry = cfg.Dry || *dry
	cfg.NoStore = cfg.NoStore || *noStore

	switch command {
	case "logdir":
		return logDir(cfg, *create)
	case "split":
		return execRun(cfg, func(r *run.Run) error {
			_, err := r.Split(*data)
			return err
		})
	case "schedule":
		return execRun(cfg, func(r *run.Run) error {
			trace, err := r.Schedule()
			if err != nil {
				return err
			}
			for epoch, rate := range trace.Rates {
				fmt.Printf("%d\t%g\n", epoch, rate)
			}
			return nil
		})
	case "run":
		return execRun(cfg, func(r *run.Run) error {
			if *data != "" {
				if _, err := r.Split(*data); err != nil {
					return err
				}
			}
			_, err := r.Schedule()
			return err
		})
	}
	usage()
	return fmt.Errorf("unknown command '%s'", command)
}

func logDir(cfg run.Config, create bool) error {
	var dir string
	var err error
	if create && !cfg.Dry {
		dir, err = logdir.Create(cfg.LogDir.Mode, cfg.LogDir.Base)
	} else {
		dir, err = logdir.Make(cfg.LogDir.Mode, cfg.LogDir.Base)
	}
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}

func execRun(cfg run.Config, exec func(r *run.Run) error) error {
	r, err := run.New(cfg, nil)
	if err != nil {
		return err
	}
	if err := exec(r); err != nil {
		return err
	}
	return r.Close()
}
