// SPDX-License-Identifier: MIT

// Command xortrain trains a small network on the XOR truth table, logs the
// loss while it learns, prints the final predictions and optionally saves the
// trained weights.
//
// Scenario:
//
//	XOR is the smallest problem a single-layer perceptron cannot solve; a
//	2-3-1 sigmoid network with random weights in [-3, 3) learns it in well
//	under 100000 full-batch epochs at learning rate 1.0.
//
// By default the targets are XOR {0, 1, 1, 0}. With -xnor the network learns
// the complement {1, 0, 0, 1}, which is the table of the classic C demo this
// command mirrors.
//
// Usage:
//
//	xortrain [-layout "2, 3, 1"] [-epochs N] [-rate R] [-report N]
//	         [-seed S] [-min A] [-max B] [-out path] [-env file] [-xnor]
//
// Defaults come from LVNET_* variables (see internal/config), optionally
// loaded from a .env file; flags override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/lvnet/internal/config"
	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
	"github.com/katalvlaran/lvnet/persist"
	"gonum.org/v1/gonum/floats"
)

var (
	xorInputs   = []float64{0, 0, 0, 1, 1, 0, 1, 1}
	xorTargets  = []float64{0, 1, 1, 0}
	xnorTargets = []float64{1, 0, 0, 1}
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("xortrain: ")

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

// envFlag extracts -env from args before the other flags are defined, so the
// file can supply their defaults.
func envFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "-env" || a == "--env":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-env="):
			return strings.TrimPrefix(a, "-env=")
		case strings.HasPrefix(a, "--env="):
			return strings.TrimPrefix(a, "--env=")
		}
	}

	return ""
}

func run(args []string) error {
	cfg, err := config.Load(envFlag(args))
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("xortrain", flag.ContinueOnError)
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "comma-separated node counts; first must be 2, last must be 1")
	fs.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "number of training epochs")
	fs.Float64Var(&cfg.LearningRate, "rate", cfg.LearningRate, "learning rate")
	fs.IntVar(&cfg.ReportEvery, "report", cfg.ReportEvery, "log the loss every N epochs (0 disables)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 uses the clock)")
	fs.Float64Var(&cfg.WeightMin, "min", cfg.WeightMin, "lower bound of initial weights")
	fs.Float64Var(&cfg.WeightMax, "max", cfg.WeightMax, "upper bound of initial weights")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "save trained weights to this path")
	fs.String("env", "", "load "+strings.Join(config.Names(), ", ")+" defaults from this .env file")
	xnor := fs.Bool("xnor", false, "learn XNOR {1,0,0,1} instead of XOR")
	if err = fs.Parse(args); err != nil {
		return err
	}

	truth := xorTargets
	if *xnor {
		truth = xnorTargets
	}

	_, err = train(*cfg, truth)
	return err
}

// train fits a network to truth over the four XOR inputs and returns it.
func train(cfg config.TrainConfig, truth []float64) (*network.Network, error) {
	net, err := network.NewFromLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	if net.NumInputs() != 2 || net.NumOutputs() != 1 {
		return nil, fmt.Errorf("layout %q: XOR needs 2 inputs and 1 output: %w", cfg.Layout, network.ErrInvalidLayout)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err = net.RandomizeWeights(rand.New(rand.NewSource(seed)), cfg.WeightMin, cfg.WeightMax); err != nil {
		return nil, err
	}

	inputs, err := matrix.NewDenseFrom(4, 2, xorInputs)
	if err != nil {
		return nil, err
	}
	targets, err := matrix.NewDenseFrom(4, 1, truth)
	if err != nil {
		return nil, err
	}

	log.Printf("training %s on %v: epochs=%d rate=%g seed=%d", net, truth, cfg.Epochs, cfg.LearningRate, seed)
	loss := math.NaN()
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if loss, err = net.Train(inputs, targets, cfg.LearningRate); err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if cfg.ReportEvery > 0 && epoch%cfg.ReportEvery == 0 {
			log.Printf("Epoch %d, error: %f", epoch, loss)
		}
	}
	log.Printf("Final error: %f", loss)

	outputs, err := net.Infer(inputs)
	if err != nil {
		return nil, err
	}
	predicted := outputs.RawData()
	for i, want := range truth {
		fmt.Printf("Output for values %g, %g is %.4f (want %g)\n", xorInputs[2*i], xorInputs[2*i+1], predicted[i], want)
	}
	diff := make([]float64, len(predicted))
	floats.SubTo(diff, predicted, truth)
	fmt.Printf("max abs error: %.4f\n", math.Max(floats.Max(diff), -floats.Min(diff)))

	if cfg.OutPath != "" {
		if err = persist.Write(cfg.OutPath, net); err != nil {
			return nil, err
		}
		log.Printf("weights saved to %s", cfg.OutPath)
	}

	return net, nil
}
