// Mapexport renders a stored wayfinding system to one SVG file per
// floor, for embedding in kiosks or print signage.
//
// Run: go run ./cmd/mapexport/ -system mall-west -out ./maps
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/openstream/wayfind/internal/config"
	"github.com/openstream/wayfind/internal/store"
	"github.com/openstream/wayfind/internal/svgmap"
	"github.com/openstream/wayfind/pkg/floorplan"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to a wayfind config file")
		systemID   = flag.String("system", "default", "wayfinding system id to export")
		outDir     = flag.String("out", ".", "directory to write <floor-id>.svg files into")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	st, err := store.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := st.Load(context.Background(), *systemID)
	if err != nil {
		return errors.Wrapf(err, "load system %q", *systemID)
	}
	plan := floorplan.FromDocument(doc)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	for _, f := range plan.Floors() {
		svg, err := svgmap.Render(plan, f.ID, float64(cfg.DefaultImageW), float64(cfg.DefaultImageH))
		if err != nil {
			return err
		}
		out := filepath.Join(*outDir, f.ID+".svg")
		if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", out)
		}
		fmt.Printf("wrote %s (%s)\n", out, f.Name)
	}
	return nil
}
