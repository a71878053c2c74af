// Package weights inspects the local weights cache and produces a bounded
// summary for diagnostics.
package weights

import (
	"fmt"
	"io"
	"os"

	"github.com/MeKo-Tech/facewarm/internal/models"
)

// maxListed is the number of filenames shown before the report truncates.
const maxListed = 5

// Report summarizes the state of the weights cache.
type Report struct {
	Dir    string
	Exists bool
	// Total is the number of regular files directly inside the cache.
	Total int
	// Listed holds the first maxListed filenames in lexical order.
	Listed []string
}

// Verify inspects the weights cache directory. A missing directory is not an
// error; it yields a report with Exists=false. Subdirectories are not
// descended into.
func Verify(weightsDir string) (Report, error) {
	dir := models.GetWeightsDir(weightsDir)
	report := Report{Dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return report, nil
		}
		return report, fmt.Errorf("reading weights directory %s: %w", dir, err)
	}
	report.Exists = true

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		report.Total++
		if len(report.Listed) < maxListed {
			report.Listed = append(report.Listed, entry.Name())
		}
	}

	return report, nil
}

// Write prints the report in the warm-up output format.
func (r Report) Write(w io.Writer) {
	if !r.Exists {
		fmt.Fprintf(w, "⚠️  Weights directory not found: %s\n", r.Dir)
		return
	}

	fmt.Fprintf(w, "✅ Found %d weight file(s) in %s\n", r.Total, r.Dir)
	for _, name := range r.Listed {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	if r.Total > len(r.Listed) {
		fmt.Fprintf(w, "  ... and %d more\n", r.Total-len(r.Listed))
	}
}
