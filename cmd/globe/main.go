package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dwellglobe/internal/game"
	_ "dwellglobe/internal/scripts"
	"dwellglobe/internal/world"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/globe.json", "scene file")
	seed := flag.Int64("seed", 0, "random seed for target placement (0 = scene file or clock)")
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "scene" {
			explicit = true
		}
	})
	path, err := resolveScenePath(*scenePath, explicit)
	if err != nil {
		log.Fatalf("Failed to resolve scene path: %v", err)
	}
	*scenePath = path

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Printf("Failed to change to %s: %v", execDir, err)
			}
		}
	}

	sf, err := world.LoadSceneFile(*scenePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Scene %s not found, using defaults", *scenePath)
		sf = world.DefaultSceneFile()
	case err != nil:
		log.Fatalf("Failed to load scene: %v", err)
	}

	if *seed != 0 {
		sf.Settings.Seed = *seed
	}
	if sf.Settings.Seed == 0 {
		sf.Settings.Seed = time.Now().UnixNano()
	}
	log.Printf("Seed %d", sf.Settings.Seed)

	w, err := world.New(sf, rand.New(rand.NewSource(sf.Settings.Seed)))
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	g := game.New(w)
	g.Run()
}

// resolveScenePath anchors a -scene given on the command line to the
// starting directory. The default stays relative to the executable.
func resolveScenePath(path string, explicit bool) (string, error) {
	if !explicit || filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Abs(path)
}
