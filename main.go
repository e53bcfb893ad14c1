package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/lifedrain/common"
	"github.com/milk9111/lifedrain/save"
)

func main() {
	debug := flag.Bool("debug", false, "draw drain reach around the player")
	persist := flag.Bool("save", false, "restore and persist player health between runs")
	watch := flag.Bool("watch", false, "hot reload prefabs/ edits while running")
	flag.Parse()

	var store *save.Store
	if *persist {
		s, err := save.Open("lifedrain")
		if err != nil {
			log.Printf("save disabled: %v", err)
		} else {
			store = s
		}
	}

	game, err := NewGame(GameOptions{Debug: *debug, Watch: *watch, Store: store})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("lifedrain")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	if err := game.Persist(); err != nil {
		log.Printf("save failed: %v", err)
	}
}
