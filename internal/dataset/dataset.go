// Package dataset loads the physics specification and revision resources
// from CSV files. A copy of the full dataset is embedded in the binary;
// a directory on disk with the same layout can override it, so updated
// resource sheets ship without a rebuild.
package dataset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/abhisek/physiz/internal/resources"
	"github.com/abhisek/physiz/internal/spec"
	"github.com/abhisek/physiz/internal/tabular"
)

//go:embed data
var embedded embed.FS

// subjectFiles lists the specification sheets in load order. Order
// matters: section ids colliding across files resolve last-loaded-wins.
var subjectFiles = []string{
	"measurements.csv",
	"particles.csv",
	"waves.csv",
	"mechanics.csv",
	"electricity.csv",
	"periodic-motion.csv",
	"thermal.csv",
	"fields.csv",
	"magnetic-fields.csv",
	"nuclear.csv",
}

// resourceFiles maps each resource kind to its sheet.
var resourceFiles = map[resources.Kind]string{
	resources.KindVideo:      "videos.csv",
	resources.KindNote:       "notes.csv",
	resources.KindSimulation: "simulations.csv",
	resources.KindQuestion:   "questions.csv",
}

const revisionSectionsFile = "revisionsections.csv"

// ErrNoData marks a load that produced no sections at all; the app
// cannot start without a specification.
var ErrNoData = errors.New("no specification data loaded")

// Dataset is the fully loaded specification plus resource index.
type Dataset struct {
	Store      *spec.Store
	Index      *resources.Index
	Duplicates []resources.Duplicate
}

// Load reads the full dataset. When dir is non-empty and exists it is
// used as the data root (expecting subjects/ and revision/ beneath it);
// otherwise the embedded copy serves. Individual sheets that fail to
// read are skipped with a warning, matching the best-effort loading of
// the resource layer, but a dataset with zero sections is an error.
func Load(dir string) (*Dataset, error) {
	fsys, err := dataFS(dir)
	if err != nil {
		return nil, err
	}
	return loadFrom(fsys)
}

func dataFS(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("data directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("data directory %s: not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded data: %w", err)
	}
	return sub, nil
}

// loadFrom reads every sheet concurrently. Each goroutine writes to its
// own slot, so no locking is needed; the merge happens after the wait.
func loadFrom(fsys fs.FS) (*Dataset, error) {
	var wg sync.WaitGroup

	subjectRows := make([][]tabular.Row, len(subjectFiles))
	for i, name := range subjectFiles {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			subjectRows[i] = readSheet(fsys, "subjects/"+name)
		}(i, name)
	}

	kinds := resources.AllKinds()
	resourceRows := make([][]tabular.Row, len(kinds))
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind resources.Kind) {
			defer wg.Done()
			resourceRows[i] = readSheet(fsys, "revision/"+resourceFiles[kind])
		}(i, kind)
	}

	var revisionRows []tabular.Row
	wg.Add(1)
	go func() {
		defer wg.Done()
		revisionRows = readSheet(fsys, "revision/"+revisionSectionsFile)
	}()

	wg.Wait()

	var sections []spec.Section
	for _, rows := range subjectRows {
		sections = append(sections, spec.SectionsFromRows(rows)...)
	}
	store := spec.NewStore(sections)
	if store.TopicCount() == 0 {
		return nil, ErrNoData
	}

	var normalized []resources.Resource
	var dups []resources.Duplicate
	for i, kind := range kinds {
		rs, kindDups := resources.Normalize(resourceRows[i], kind)
		normalized = append(normalized, rs...)
		dups = append(dups, kindDups...)
	}
	revisionSections := resources.NormalizeRevisionSections(revisionRows)

	return &Dataset{
		Store:      store,
		Index:      resources.NewIndex(normalized, revisionSections),
		Duplicates: dups,
	}, nil
}

// readSheet opens and parses one CSV sheet, warning and returning nil on
// any failure. A missing or malformed sheet degrades that slice of the
// dataset rather than aborting the whole load.
func readSheet(fsys fs.FS, name string) []tabular.Row {
	rows, err := tabular.ReadCSVFile(fsys, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", name, err)
		return nil
	}
	return rows
}
