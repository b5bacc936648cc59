// Command simulate plays a tengo scenario against a level without opening a
// window and prints the resulting score and session row.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/milk9111/wastesorter/levels"
	"github.com/milk9111/wastesorter/prefabs"
	"github.com/milk9111/wastesorter/scenario"
	"github.com/milk9111/wastesorter/session"
	"github.com/milk9111/wastesorter/sim"
)

func main() {
	levelName := flag.String("level", levels.Tutorial, "level name in levels/ (basename, .json optional)")
	scriptName := flag.String("script", "smoke", "scenario script in prefabs/scripts (basename, .tengo optional)")
	seed := flag.Int64("seed", 1, "random seed for enemy volleys and effects")
	device := flag.String("device", "simulate", "device name written to the session row")
	outDir := flag.String("out", "", "directory to save the session CSV under (empty prints it)")
	timeout := flag.Duration("timeout", time.Minute, "wall clock limit for the run")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	list := flag.Bool("list", false, "list levels and scripts, then exit")
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal("bad -log-level", "value", *logLevel, "err", err)
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(false)

	if *list {
		fmt.Println("levels: ", levels.Names())
		fmt.Println("scripts:", prefabs.Scripts())
		return
	}

	s, err := sim.New(sim.Options{Level: *levelName, Seed: *seed})
	if err != nil {
		log.Fatal("start session", "level", *levelName, "err", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	started := time.Now()
	res, runErr := scenario.NewRunner(s).RunScript(ctx, *scriptName)
	if runErr != nil {
		log.Error("scenario failed", "script", *scriptName, "err", runErr)
	}
	log.Info("scenario done",
		"script", *scriptName,
		"level", res.Level,
		"frames", res.Frames,
		"played", res.Played,
		"wall", time.Since(started).Round(time.Millisecond),
		"finished", res.Finished,
	)

	fmt.Printf("score: %d\ngrade: %.2f\nhealth: %d\n", res.Score, res.Grade, res.Health)
	names := make([]string, 0, len(res.Vars))
	for name := range res.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Debug("script var", "name", name, "value", res.Vars[name])
	}

	rec := s.Record(*device, time.Now())
	if *outDir == "" {
		if err := session.Write(os.Stdout, rec); err != nil {
			log.Fatal("write session", "err", err)
		}
	} else {
		path, err := session.Save(*outDir, rec)
		if err != nil {
			log.Fatal("save session", "err", err)
		}
		log.Info("session saved", "path", path)
	}

	if runErr != nil {
		os.Exit(1)
	}
}
