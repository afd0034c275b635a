package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/motioncore/assets"
	"github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "Motion tuning YAML file, reloaded on save")
	flag.StringVar(&config.Debug.LevelPath, "level", "", "Tiled .tmx level to load instead of the embedded demo")
	flag.BoolVar(&config.C.Debug, "debug", false, "Start with the debug overlay enabled")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		m, err := config.LoadMotionFile(config.Debug.TuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Motion = m
	}

	var level *assets.Level
	if config.Debug.LevelPath != "" {
		l, err := assets.LoadLevelFile(config.Debug.LevelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		level = l
	} else {
		levels := assets.MustLoadLevels()
		level = &levels[0]
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("motioncore")
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewPlatformerScene(level, config.Debug.TuningPath)
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
