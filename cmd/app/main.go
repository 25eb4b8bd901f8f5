package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"net/http"
	"os"

	"roadstrip/internal/agent"
	"roadstrip/internal/config"
	"roadstrip/internal/logger"
	"roadstrip/internal/metrics"
	"roadstrip/internal/physics"
	"roadstrip/internal/render"
	"roadstrip/internal/scene"
	"roadstrip/internal/track"
	"roadstrip/internal/trackgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ============================================================================
// CONFIGURATION - Defaults; see internal/config for the environment overrides
// ============================================================================

// Simulation settings
const (
	CarSpawnWaypointIndex = 5    // Which waypoint to spawn the car at
	ViewScaleMargin       = 0.95 // Margin for fitting track in window (0.95 = 5% padding)
)

// Fallback track when STRIP_PATH does not exist
const (
	FallbackSegments = 48
	FallbackRadiusX  = 60.0
	FallbackRadiusY  = 40.0
	FallbackWidth    = 10.0
)

// Racing line material
var MaterialRacingLine = &scene.Material{Name: "racingline", Color: color.RGBA{255, 255, 0, 140}}

// ============================================================================

type Game struct {
	Strip    *track.Strip
	Mesh     *track.TrackMesh
	Scene    *scene.Node
	Car      *physics.Car
	Agent    agent.Agent
	Training bool // Fast forward

	TrainingSpeed int
	ProbeLength   float64
	WindowWidth   int
	WindowHeight  int
	View          render.View

	// Analytics
	NumLaps     int
	Crashes     int
	PreviousLap int
}

func (g *Game) Update() error {
	if g.Car == nil {
		return nil
	}

	// S toggles between fast and real-time
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Training = !g.Training
	}

	ticks := 1
	if g.Training {
		ticks = g.TrainingSpeed
	}

	for i := 0; i < ticks; i++ {
		g.updatePhysics()
	}

	return nil
}

func (g *Game) updatePhysics() {
	g.Car.CurrentLapTime++

	if g.Car.Crashed {
		g.Crashes++
		logger.L().Info("car_crashed", "x", g.Car.Position.X, "y", g.Car.Position.Y, "checkpoint", g.Car.Checkpoint)
		g.respawn()
		return
	}

	ctl := g.Agent.SelectAction(g.Agent.Observe(g.Car))
	g.Car.Update(g.Strip, ctl.Throttle, ctl.Brake, ctl.Steering)
	agent.TrackProgress(g.Car, g.Mesh)

	if g.Car.Laps > g.PreviousLap {
		g.Car.LastLapTime = g.Car.CurrentLapTime
		g.Car.CurrentLapTime = 0
		g.PreviousLap = g.Car.Laps
		g.NumLaps++
	}
}

func (g *Game) respawn() {
	g.Car = agent.Spawn(g.Mesh, CarSpawnWaypointIndex)
	g.Car.ProbeLength = g.ProbeLength
	g.Car.Settle(g.Strip)
	g.PreviousLap = 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	hinted := map[int]bool{}
	for _, w := range g.Car.Wheels {
		if w.OnRoad {
			hinted[w.Probe.Hint] = true
		}
	}

	render.DrawStrip(screen, g.Strip, g.View, hinted)
	render.DrawScene(screen, g.Scene, g.View)
	render.DrawCar(screen, g.Car, g.View)

	vector.FillRect(screen, 0, 0, 180, 200, color.RGBA{0, 0, 0, 180}, true)

	msg := "STATUS MONITOR\n"
	msg += "----------------\n"
	msg += fmt.Sprintf("Patches: %d\n", g.Strip.Len())
	msg += fmt.Sprintf("Closed:  %v\n", g.Strip.Closed())
	msg += fmt.Sprintf("Dropped: %d\n", g.Strip.Rejected())
	msg += fmt.Sprintf("Speed:   %.2f\n", g.Car.Speed)
	msg += fmt.Sprintf("Height:  %.2f\n", g.Car.Height)
	msg += fmt.Sprintf("Laps:    %d\n", g.NumLaps)
	msg += fmt.Sprintf("Crashes: %d\n", g.Crashes)
	msg += fmt.Sprintf("Last:    %.2fs\n", float64(g.Car.LastLapTime)/60.0)
	if g.Training {
		msg += "[High speed]"
	} else {
		msg += "[Real-time speed]"
	}
	msg += "\nS = Toggle Slow Mode"

	ebitenutil.DebugPrint(screen, msg)

	params := "AGENT PARAMS\n------------\n" + g.Agent.DebugInfoStr()
	ebitenutil.DebugPrintAt(screen, params, g.WindowWidth-170, 10)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.WindowWidth, g.WindowHeight
}

// loadStrip reads cfg.StripPath, or builds the fallback oval when the file
// does not exist.
func loadStrip(cfg config.Config) (*track.Strip, error) {
	s, err := track.Load(cfg.StripPath, cfg.StripReverse, os.Stderr)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	logger.L().Warn("strip_fallback_oval", "path", cfg.StripPath)
	oval := trackgen.Oval(FallbackSegments, FallbackRadiusX, FallbackRadiusY, FallbackWidth)
	return track.Build(bytes.NewReader(trackgen.Encode(oval)), cfg.StripReverse, os.Stderr), nil
}

func main() {
	cfg := config.Load()
	l := logger.Setup()

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			l.Info("metrics_listen", "addr", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				l.Error("metrics_listen_error", "err", err)
			}
		}()
	}

	strip, err := loadStrip(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if strip.Len() == 0 {
		log.Fatalf("strip %s has no usable patches", cfg.StripPath)
	}
	l.Info("strip_loaded", "patches", strip.Len(), "closed", strip.Closed(), "rejected", strip.Rejected())

	mesh := track.NewMesh(strip)
	root := scene.NewNode("root")
	scene.CreateRacingLine(root, strip, MaterialRacingLine, cfg.RacingLineWidth)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Road Strip Viewer")

	car := agent.Spawn(mesh, CarSpawnWaypointIndex)
	car.ProbeLength = cfg.ProbeLength
	car.Settle(strip)

	game := &Game{
		Strip:         strip,
		Mesh:          mesh,
		Scene:         root,
		Car:           car,
		Agent:         agent.NewFollower(mesh),
		Training:      false,
		TrainingSpeed: cfg.TrainingSpeed,
		ProbeLength:   cfg.ProbeLength,
		WindowWidth:   cfg.WindowWidth,
		WindowHeight:  cfg.WindowHeight,
		View:          render.FitView(strip.Bounds(), cfg.WindowWidth, cfg.WindowHeight, ViewScaleMargin),
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
