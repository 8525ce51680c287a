package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	"blocksketch/scene"
)

var (
	ScreenWidth  float64 = 1024
	ScreenHeight float64 = 768
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagVariant string
var FlagSeed uint64
var FlagPProf bool

func init() {
	flag.StringVar(&FlagVariant, "variant", scene.VariantColored.Name, "sketch to run (colored or mono)")
	flag.Uint64Var(&FlagSeed, "seed", 0, "random seed, 0 picks a random one")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
}

func main() {
	flag.Parse()

	if FlagPProf {
		StartPprofServer()
	}

	variant, ok := scene.VariantByName(FlagVariant)
	if !ok {
		ErrorLogger.Fatalf("unknown variant %q", FlagVariant)
	}

	seed := FlagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	InfoLogger.Printf("running %s with seed %d", variant.Name, seed)
	DebugPrintPersist("seed", seed)

	InitClipboardManager()

	app := NewApp(variant, seed)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Blocks")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
