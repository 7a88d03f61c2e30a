// Wayfind is a terminal editor for indoor wayfinding maps: floors,
// screens, points of interest and the walking paths between them.
//
// Run: go run ./cmd/wayfind/ -system mall-west
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/cockroachdb/errors"

	"github.com/openstream/wayfind/internal/config"
	"github.com/openstream/wayfind/internal/logging"
	"github.com/openstream/wayfind/internal/store"
	"github.com/openstream/wayfind/internal/wayui"
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
		systemID   = flag.String("system", "default", "wayfinding system id to edit")
		systemName = flag.String("name", "", "display name for the system (defaults to its id)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	flush, err := logging.Initialize(cfg.LogPath)
	if err != nil {
		return err
	}
	defer flush()

	name := *systemName
	if name == "" {
		name = *systemID
	}

	st, err := store.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	plan, loadNote, err := loadPlan(st, *systemID)
	if err != nil {
		return err
	}

	// The autosaver reports back into the running program; the program
	// pointer exists before Run, so the closure can capture it.
	var p *tea.Program
	saver := store.NewAutosaver(st, *systemID, name, cfg.AutosaveQuiet, func(saveErr error) {
		if p != nil {
			p.Send(wayui.SaveResultMsg{Err: saveErr})
		}
	})
	defer saver.Stop()

	model := wayui.NewModel(plan, cfg, saver, name)
	p = tea.NewProgram(model)

	if loadNote != "" {
		logging.L.Warnw("starting with a fresh map", "system", *systemID, "reason", loadNote)
	}
	logging.L.Infow("editor starting", "system", *systemID, "db", cfg.DatabasePath)

	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "editor terminated")
	}

	// Pending edits are written before exit rather than dropped.
	saver.Flush()
	logging.L.Infow("editor exiting", "system", *systemID)
	return nil
}

// loadPlan fetches the stored document, falling back to an empty map when
// the system does not exist yet. A corrupt document aborts instead of
// silently overwriting stored data.
func loadPlan(st store.Store, systemID string) (*floorplan.Model, string, error) {
	doc, err := st.Load(context.Background(), systemID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return floorplan.NewModel(), "no stored map for this system", nil
	case err != nil:
		return nil, "", errors.Wrapf(err, "load system %q", systemID)
	}
	return floorplan.FromDocument(doc), "", nil
}
