package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	voronoi "github.com/hanting/fortune-voronoi"
	"github.com/hanting/fortune-voronoi/geometry"
	"github.com/hanting/fortune-voronoi/lloyd"
	"github.com/hanting/fortune-voronoi/render"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoi",
		Usage:     "Builds a Voronoi diagram (optionally Lloyd-relaxed) and writes it as PNG or GIF",
		UsageText: "voronoi [--sites path.csv | --random N] --width W --height H [--lloyd K] [--png out.png | --gif out.gif]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sites", Usage: "CSV file of x,y site coordinates", OnlyOnce: true},
			&cli.IntFlag{Name: "random", Usage: "Generate this many random sites instead of --sites", OnlyOnce: true},
			&cli.IntFlag{Name: "width", Usage: "Bounding rectangle width", Value: 400, OnlyOnce: true},
			&cli.IntFlag{Name: "height", Usage: "Bounding rectangle height", Value: 400, OnlyOnce: true},
			&cli.IntFlag{Name: "lloyd", Usage: "Number of Lloyd relaxation iterations to run first", Value: 0, OnlyOnce: true},
			&cli.IntFlag{Name: "scale", Usage: "Pixels per diagram unit", Value: 2, OnlyOnce: true},
			&cli.StringFlag{Name: "png", Usage: "Write the final diagram as PNG to this path (default voronoi.png when --gif is not given)", OnlyOnce: true},
			&cli.StringFlag{Name: "gif", Usage: "Write every Lloyd iteration as an animated GIF to this path", OnlyOnce: true},
			&cli.IntFlag{Name: "seed", Usage: "Random seed for --random", Value: 1, OnlyOnce: true},
			&cli.BoolFlag{Name: "verbose", Usage: "Log sweep events to stderr", OnlyOnce: true},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	width := float64(cmd.Int("width"))
	height := float64(cmd.Int("height"))
	bounds := geometry.NewRect(width, height)
	seed := uint64(cmd.Int("seed"))
	rng := rand.New(rand.NewPCG(seed, seed))

	sites, err := loadSites(cmd, bounds, rng)
	if err != nil {
		return err
	}

	var voronoiOpts []voronoi.Option
	if cmd.Bool("verbose") {
		voronoiOpts = append(voronoiOpts, voronoi.WithLogger(log.New(os.Stderr, "voronoi: ", 0)))
	}

	scale := int(cmd.Int("scale"))
	k := int(cmd.Int("lloyd"))
	gifPath := cmd.String("gif")

	if gifPath != "" {
		return writeLloydGIF(sites, bounds, k, scale, voronoiOpts, gifPath)
	}

	if k > 0 {
		relaxed, _, err := lloyd.Iterate(sites, bounds, k, lloyd.CentroidPredicate, voronoiOpts)
		if err != nil {
			return fmt.Errorf("lloyd relaxation: %w", err)
		}
		sites = relaxed
	}

	d, err := voronoi.Build(sites, bounds, voronoiOpts...)
	if err != nil {
		return fmt.Errorf("building diagram: %w", err)
	}

	pngPath := cmd.String("png")
	if pngPath == "" {
		pngPath = "voronoi.png"
	}
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.EncodePNG(f, d, scale)
}

func loadSites(cmd *cli.Command, bounds geometry.Rect, rng *rand.Rand) ([]geometry.Point, error) {
	if path := cmd.String("sites"); path != "" {
		return readSitesCSV(path)
	}
	n := int(cmd.Int("random"))
	if n <= 0 {
		return nil, fmt.Errorf("voronoi: either --sites or --random must be given")
	}
	seen := map[geometry.Point]bool{}
	sites := make([]geometry.Point, 0, n)
	for len(sites) < n {
		p := geometry.Point{
			X: bounds.LB.X + rng.Float64()*(bounds.RT.X-bounds.LB.X),
			Y: bounds.LB.Y + rng.Float64()*(bounds.RT.Y-bounds.LB.Y),
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		sites = append(sites, p)
	}
	return sites, nil
}

func readSitesCSV(path string) ([]geometry.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	sites := make([]geometry.Point, 0, len(records))
	for _, row := range records {
		if len(row) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("voronoi: parsing x in %q: %w", row, err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("voronoi: parsing y in %q: %w", row, err)
		}
		sites = append(sites, geometry.Point{X: x, Y: y})
	}
	return sites, nil
}

func writeLloydGIF(sites []geometry.Point, bounds geometry.Rect, k, scale int, voronoiOpts []voronoi.Option, path string) error {
	frames := make([]*voronoi.Diagram, 0, k+1)
	d, err := voronoi.Build(sites, bounds, voronoiOpts...)
	if err != nil {
		return fmt.Errorf("building diagram: %w", err)
	}
	frames = append(frames, d)

	cur := sites
	for i := 0; i < k; i++ {
		next, _, err := lloyd.Relax(cur, bounds, lloyd.CentroidPredicate, voronoiOpts)
		if err != nil {
			return fmt.Errorf("lloyd relaxation step %d: %w", i, err)
		}
		cur = next
		frame, err := voronoi.Build(cur, bounds, voronoiOpts...)
		if err != nil {
			return fmt.Errorf("building frame %d: %w", i+1, err)
		}
		frames = append(frames, frame)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.EncodeGIF(f, frames, scale, 50)
}
