package main

import (
	"fmt"
	"os"

	"github.com/mgnsk/list"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type printer struct {
	limit int
	seen  int
}

func printValue(node *list.Node[string], p *printer) bool {
	fmt.Println(node.Value)
	p.seen++
	return p.limit == 0 || p.seen < p.limit
}

func run(ctx *cli.Context) error {
	logger := logrus.New()
	if ctx.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}

	if ctx.Int("capacity") < 0 {
		return cli.Exit("capacity must not be negative", 2)
	}

	pool := list.NewPool[string](
		list.WithCapacity(ctx.Int("capacity")),
		list.WithLogger(logger),
	)

	var head *list.Node[string]
	defer pool.Destroy(&head)

	for _, arg := range ctx.Args().Slice() {
		if err := pool.Append(&head, arg); err != nil {
			return err
		}
	}

	logger.WithField("len", list.Len(head)).Info("list built")

	// Prints at most stop-after values.
	list.Iterate(head, printValue, &printer{limit: ctx.Int("stop-after")})

	if err := pool.Delete(&head, 0); err != nil {
		logger.WithError(err).Warn("cannot delete the head")
	} else {
		logger.WithField("head", list.Get(head, 0)).Debug("deleted the head")
	}

	if err := pool.Destroy(&head); err != nil {
		return err
	}

	stats := pool.Stats()
	logger.WithFields(logrus.Fields{
		"allocs": stats.Allocs,
		"frees":  stats.Frees,
		"failed": stats.Failed,
		"live":   pool.Len(),
	}).Info("list destroyed")

	return nil
}

func main() {
	app := &cli.App{
		Name:      "example",
		Usage:     "Build a list from the arguments and print it.",
		ArgsUsage: "[values...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "maximum number of live nodes, 0 is unbounded",
			},
			&cli.IntFlag{
				Name:  "stop-after",
				Usage: "stop printing after this many values, 0 prints all",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"vv"},
				Usage:   "verbose logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("failed")
		os.Exit(1)
	}
}
