package main

import (
	"log"

	"github.com/Garsondee/Moon-Howl/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Moon Howl")
	ebiten.SetWindowSize(800, 600)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
