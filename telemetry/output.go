// Package telemetry writes animal state streams for external analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/KristofferHemm/biosim/animal"
	"github.com/KristofferHemm/biosim/config"
	"github.com/KristofferHemm/biosim/species"
)

// Writer appends animal snapshots to animals.csv under an output
// directory.
type Writer struct {
	dir  string
	file *os.File

	headerWritten bool
}

// NewWriter creates the output directory and opens the snapshot stream.
// Returns nil if dir is empty (output disabled); the nil Writer is safe
// to use and discards everything.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "animals.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating animals.csv: %w", err)
	}
	return &Writer{dir: dir, file: f}, nil
}

// Write appends one snapshot row. The first write includes the header.
func (w *Writer) Write(snap animal.Snapshot) error {
	if w == nil {
		return nil
	}
	return w.writeRows([]animal.Snapshot{snap})
}

// WriteAll appends one row per snapshot.
func (w *Writer) WriteAll(snaps []animal.Snapshot) error {
	if w == nil || len(snaps) == 0 {
		return nil
	}
	return w.writeRows(snaps)
}

func (w *Writer) writeRows(rows []animal.Snapshot) error {
	if !w.headerWritten {
		if err := gocsv.Marshal(rows, w.file); err != nil {
			return fmt.Errorf("writing snapshots: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, w.file); err != nil {
		return fmt.Errorf("writing snapshots: %w", err)
	}
	return nil
}

// WriteSpecies saves the current parameters of every registry next to
// the snapshot stream, so a run's output records the constants it ran
// under.
func (w *Writer) WriteSpecies(registries map[string]*species.Species) error {
	if w == nil {
		return nil
	}
	return config.Write(filepath.Join(w.dir, "species.yaml"), registries)
}

// Dir returns the output directory path.
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// Close flushes and closes the snapshot stream.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}
