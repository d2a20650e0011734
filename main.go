package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"spinwheel/appconfig"
	"spinwheel/common/bench"
	"spinwheel/server"
	"spinwheel/wheel"
)

func main() {
	wheelPath := flag.String("wheel", "", "simulate this wheel YAML file locally instead of serving")
	trials := flag.Int("trials", 0, "trial count for -wheel mode (0 = config default)")
	flag.Parse()

	cfg, err := appconfig.LoadAppConfig()
	if err != nil {
		log.Fatal(err.Error())
	}

	if *wheelPath != "" {
		if err := simulateFile(cfg, *wheelPath, *trials); err != nil {
			log.Fatal(err.Error())
		}
		return
	}

	srv := server.New(cfg)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err.Error())
	}
}

func simulateFile(cfg *appconfig.AppConfig, path string, trials int) error {
	items, err := wheel.LoadFile(path)
	if err != nil {
		return err
	}
	if trials <= 0 {
		trials = cfg.DefaultTrials
	}
	if trials > cfg.MaxTrials {
		trials = cfg.MaxTrials
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bar := progressbar.Default(int64(trials), "spinning")
	var tally wheel.Tally
	elapsed := bench.MeasureExec(func() {
		tally, err = wheel.RunTrialsWithHook(rng, items, trials, func(int) {
			_ = bar.Add(1)
		})
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()

	fmt.Printf("\n%d trials in %s\n", trials, elapsed)
	for _, row := range server.BuildReport(items, tally, trials) {
		fmt.Printf("%-20s %7d  %6.2f%%  (theoretical %.2f%%)\n",
			row.Name, row.Count, row.Percent, row.Theoretical)
	}
	return nil
}
