package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/vkngwrapper/swapchainpick/config"
)

type options struct {
	configPath string
	logLevel   string
	hold       bool

	// nil unless -validation was given on the command line
	validation *bool
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}
	var validation bool

	flagSet := flag.NewFlagSet("swapchainpick", flag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	flagSet.BoolVar(&validation, "validation", true, "enable the Khronos validation layers")
	flagSet.BoolVar(&opts.hold, "hold", false, "keep the window open until it is closed")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "validation" {
			opts.validation = &validation
		}
	})

	return opts, nil
}

// load reads the config file and applies command line overrides on top.
func (o *options) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	if o.validation != nil {
		cfg.Requirements.EnableValidation = *o.validation
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	return cfg, cfg.Validate()
}

func (o *options) fields() logrus.Fields {
	return logrus.Fields{
		"config": o.configPath,
		"hold":   o.hold,
	}
}
