package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/banshee-data/lidar-sim/internal/config"
	"github.com/banshee-data/lidar-sim/internal/lidar"
	"github.com/banshee-data/lidar-sim/internal/lidar/monitor"
	"github.com/banshee-data/lidar-sim/internal/sim"
	"github.com/banshee-data/lidar-sim/internal/version"
)

var (
	configPath  = flag.String("config", "", "Path to a simulation config JSON file (defaults apply when empty)")
	roomPath    = flag.String("room", "", "Path to the room JSON file (required)")
	frames      = flag.Int("frames", 1, "Number of simulated frames to run")
	outPath     = flag.String("out", "", "CSV output path (default stdout)")
	plotDir     = flag.String("plot-dir", "", "Directory for PNG plots and the HTML chart of the last scan")
	diag        = flag.Bool("diag", false, "Enable per-scan diagnostic logging")
	trace       = flag.Bool("trace", false, "Enable per-ray trace logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// options carries everything run needs, so tests can drive it without flags.
type options struct {
	cfg     *config.SimConfig
	room    *sim.Room
	frames  int
	out     io.Writer
	plotDir string
}

// run drives the simulator and streams every scan as CSV rows.
func run(ctx context.Context, o options) error {
	cfg := o.cfg
	world := sim.NewWorld(o.room, sim.NewRobot(cfg.GetRobotX(), cfg.GetRobotY()))
	if !world.Room.Polygon().Contains(world.Robot.Position) {
		lidar.Opsf("warning: robot at %v is outside the room boundary", world.Robot.Position)
	}

	scanOpts := []lidar.ScannerOption{lidar.WithWorkers(cfg.GetWorkers())}
	if seed := cfg.GetSeed(); seed != 0 {
		scanOpts = append(scanOpts, lidar.WithSeed(seed))
	}
	stats := lidar.NewScanStats()
	scanOpts = append(scanOpts, lidar.WithStats(stats))

	var plotter *monitor.ScanPlotter
	if o.plotDir != "" {
		plotter = monitor.NewScanPlotter(o.room.Polygon())
		if err := plotter.Start(o.plotDir); err != nil {
			return err
		}
	}

	w := csv.NewWriter(o.out)
	if err := w.Write([]string{"scan_id", "frame", "x", "y"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	var writeErr error
	plugin := sim.NewLidarPlugin(lidar.NewScanner(scanOpts...))
	plugin.RaysNum = cfg.GetRaysNum()
	plugin.NoiseStd = cfg.GetNoiseStd()
	plugin.OnScan = func(f sim.ScanFrame) {
		summary := lidar.SummariseRanges(f.Pose, f.Points)
		lidar.Opsf("scan %s frame=%d: %d points, range mean=%.3f sd=%.3f min=%.3f max=%.3f",
			f.ID, f.Frame, summary.Count, summary.Mean, summary.StdDev, summary.Min, summary.Max)
		if plotter != nil {
			plotter.Sample(f.Pose, f.Points)
		}
		frame := strconv.Itoa(f.Frame)
		for _, p := range f.Points {
			if err := w.Write([]string{
				f.ID,
				frame,
				strconv.FormatFloat(p.X, 'f', -1, 64),
				strconv.FormatFloat(p.Y, 'f', -1, 64),
			}); err != nil && writeErr == nil {
				writeErr = err
			}
		}
	}

	simulator := sim.NewSimulator(world, sim.Throttle(cfg.GetScanEveryFrames(), plugin))
	if err := simulator.Run(ctx, o.frames, cfg.GetFrameInterval()); err != nil {
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("write csv: %w", writeErr)
	}
	stats.LogStats()

	if plotter != nil {
		plotter.Stop()
		n, err := plotter.GeneratePlots()
		if err != nil {
			return fmt.Errorf("generate plots: %w", err)
		}
		lidar.Opsf("wrote %d plots to %s", n, o.plotDir)
		if world.LastScan != nil {
			path, err := monitor.WriteScanChartFile(o.plotDir, "last_scan.html",
				o.room.Polygon(), world.LastScan.Pose, world.LastScan.Points)
			if err != nil {
				return err
			}
			lidar.Opsf("wrote chart %s", path)
		}
	}
	return nil
}

// Main
func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *roomPath == "" {
		log.Fatal("-room is required")
	}

	logs := lidar.LogWriters{Ops: os.Stderr}
	if *diag {
		logs.Diag = os.Stderr
	}
	if *trace {
		logs.Trace = os.Stderr
	}
	lidar.SetLogWriters(logs)

	cfg := config.EmptySimConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadSimConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	room, err := sim.LoadRoom(*roomPath)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("lidar-sim %s: %d walls, %d frames", version.Version, room.Polygon().Len(), *frames)
	if err := run(ctx, options{cfg: cfg, room: room, frames: *frames, out: out, plotDir: *plotDir}); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}
