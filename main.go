package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridstep/common"
	"github.com/milk9111/gridstep/prefabs"
	"golang.design/x/clipboard"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and F2 tile copy")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "map spec in prefabs/ (defaults to map.yaml)")
	watch := flag.Bool("watch", false, "reload player tuning when prefabs/player.yaml changes")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("gridstep")

	opts := GameOptions{Level: *levelName, Debug: *debug}

	if *debug {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		} else {
			opts.CopyText = func(s string) error {
				clipboard.Write(clipboard.FmtText, []byte(s))
				return nil
			}
		}
	}

	if *watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Fatalf("watch prefabs: %v", err)
		}
		defer watcher.Close()
		go func() {
			for err := range watcher.Errors {
				log.Printf("prefabs watcher: %v", err)
			}
		}()
		opts.Changes = watcher.Events
	}

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
