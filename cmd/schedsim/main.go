package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ShettyBro/scheduling-simulator/internal/scheduler"
)

func main() {
	app := &cli.App{
		Name:  "schedsim",
		Usage: "simulate CPU scheduling over a CSV of processes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "CSV file with rows of id,burst,arrival[,priority]",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "all",
				Usage:   "fcfs, sjf, priority, rr or all",
			},
			&cli.Int64Flag{
				Name:    "quantum",
				Aliases: []string{"q"},
				Value:   2,
				Usage:   "time quantum for round-robin",
			},
		},
		Action: simulateAction,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func simulateAction(c *cli.Context) error {
	f, err := os.Open(c.String("file"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("opening scheduling file: %v", err), 1)
	}
	defer f.Close()

	processes, err := loadProcesses(f)
	if err != nil {
		return cli.Exit(fmt.Sprintf("loading processes: %v", err), 1)
	}

	algorithms := scheduler.Algorithms()
	if name := c.String("algorithm"); name != "all" {
		alg, err := scheduler.ParseAlgorithm(name)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		algorithms = []scheduler.Algorithm{alg}
	}

	for _, alg := range algorithms {
		schedule, err := scheduler.Run(alg, processes, c.Int64("quantum"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("%s: %v", alg, err), 1)
		}
		outputSchedule(os.Stdout, alg, schedule)
	}

	return nil
}
