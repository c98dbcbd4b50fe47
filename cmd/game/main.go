// cmd/game/main.go
package main

import (
	"io/fs"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-endless-runner/content"
	"go-endless-runner/internal/assets"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/defs"
	"go-endless-runner/internal/state"
)

const startFromGame = false // true skips the intro screen during development

// imagePaths maps the six logical image names to files in the asset tree.
var imagePaths = map[string]string{
	"hero":       "images/hero.png",
	"beast":      "images/beast.png",
	"ghost":      "images/ghost.png",
	"background": "images/background.png",
	"ground":     "images/ground.png",
	"title":      "images/title.png",
}

var dataPaths = []string{
	"data/levels.json",
	"data/monsters.json",
}

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// cacheFileList is the static list the offline cache is keyed by.
func cacheFileList() []string {
	files := make([]string, 0, len(imagePaths)+len(dataPaths))
	files = append(files, dataPaths...)
	for _, path := range imagePaths {
		files = append(files, path)
	}
	return files
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	// Asset source: embedded content by default; when an asset server is
	// configured, the versioned offline cache mirrors it and takes over.
	var assetFS fs.FS = content.FS
	if base := os.Getenv("RUNNER_ASSET_URL"); base != "" {
		cache, err := assets.OpenCache(base, cacheFileList())
		if err != nil {
			log.Printf("WARNING: offline cache unavailable, using embedded assets: %v", err)
		} else {
			assetFS = cache.FS()
		}
	}

	if err := defs.LoadLevelDefinitions(assetFS, "data/levels.json"); err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadMonsterDefinitions(assetFS, "data/monsters.json"); err != nil {
		log.Fatal(err)
	}

	images := assets.NewImageManager()
	images.LoadAll(assetFS, imagePaths)
	face := assets.LoadFace(assetFS, "fonts/runner.ttf", 16)

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewPlayState(sm, images, face, 0))
	} else {
		sm.SetState(state.NewMenuState(sm, images, face))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Runner")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
