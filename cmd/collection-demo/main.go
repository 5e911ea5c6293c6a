// Command collection-demo runs a scripted sequence of operations against a
// string collection and prints the collection after every step.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/denismitr/collection"
	"github.com/denismitr/collection/internal/config"
	"github.com/denismitr/collection/internal/script"
)

var flagConfig string

func init() {
	flag.StringVar(&flagConfig, "config", "collection.yaml", "path to the operation script")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flagConfig, os.Stdout); err != nil {
		logrus.WithError(err).Error("collection-demo failed")
		os.Exit(1)
	}
}

func run(path string, out io.Writer) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log_level")
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)

	c := collection.FromSlice(cfg.Initial)
	fmt.Fprintf(out, "initial: %s\n", c)

	for i, step := range script.NewRunner(log).Run(c, cfg.Operations) {
		switch {
		case step.Err != nil:
			fmt.Fprintf(out, "%d %s: error: %v\n", i, step.Op, step.Err)
		case step.Result != "":
			fmt.Fprintf(out, "%d %s -> %s: %s\n", i, step.Op, step.Result, step.State)
		default:
			fmt.Fprintf(out, "%d %s: %s\n", i, step.Op, step.State)
		}
	}

	fmt.Fprintf(out, "count=%d capacity=%d\n", c.Count(), c.Capacity())
	return nil
}
