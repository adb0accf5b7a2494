package icongen

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/aquaware/icongen/utils"
)

// manifestName is the manifest file every appiconset directory carries.
const manifestName = "Contents.json"

// maxWorkers caps the number of concurrently rendering slots.
const maxWorkers = 20

// RenderFunc produces the encoded icon bytes for one target pixel size.
// Renders are pure and independent, so the driver is free to run them on a
// worker pool.
type RenderFunc func(px int) ([]byte, error)

// Generator drives a full icon set: it resolves every manifest slot to a
// pixel size and filename, renders each slot and persists the results.
// Exactly one of Desc or MasterPath selects the pixel source.
type Generator struct {
	// Desc is the procedural theme rendered per slot.
	Desc *IconDescription
	// MasterPath, when set, switches to resampling a finalized master
	// icon instead of rendering procedurally.
	MasterPath string
	// Prefix names newly assigned output files. Slots with an explicit
	// filename keep it.
	Prefix string
	// SkipExisting leaves slots whose output file already exists
	// untouched instead of regenerating them. The policy is explicit:
	// it is never inferred from the manifest state.
	SkipExisting bool
	// Workers bounds the rendering concurrency; zero means NumCPU.
	Workers int
}

// slotJob is one resolved unit of work: the slot's output path and size.
type slotJob struct {
	path string
	px   int
}

// slotResult reports one finished slot. Fatal errors abort the batch;
// plain write errors are logged and the remaining slots proceed, since
// slots are independent files.
type slotResult struct {
	path  string
	err   error
	fatal bool
}

// GenerateSet populates the appiconset directory: every manifest slot is
// rendered at its required pixel size and written under its manifest
// filename. The manifest is read once, mutated in memory and written back
// at most once, and only when a filename was newly assigned.
func (g *Generator) GenerateSet(dir string) error {
	manifestPath := filepath.Join(dir, manifestName)
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	render, err := g.source()
	if err != nil {
		return err
	}

	// Resolve filenames and sizes up front, in the only goroutine that
	// touches the manifest.
	var jobs []slotJob
	changed := false
	for i := range m.Images {
		slot := &m.Images[i]
		if slot.Size == "" || slot.Scale == "" {
			continue
		}
		px, err := slot.PixelSize()
		if err != nil {
			return errors.Wrapf(err, "slot %d", i)
		}
		if slot.Filename == "" {
			slot.Filename = slot.DefaultFilename(g.Prefix)
			changed = true
		}
		jobs = append(jobs, slotJob{path: filepath.Join(dir, slot.Filename), px: px})
	}

	if err := g.run(render, jobs); err != nil {
		return err
	}

	if changed {
		if err := m.Save(manifestPath); err != nil {
			return err
		}
	}
	return nil
}

// source picks the per-slot pixel source for this generator.
func (g *Generator) source() (RenderFunc, error) {
	if g.MasterPath != "" {
		return MasterSource(g.MasterPath)
	}
	if g.Desc == nil {
		return nil, errors.New("no icon theme or master icon configured")
	}
	desc := g.Desc
	return func(px int) ([]byte, error) {
		return Render(desc, px)
	}, nil
}

// run fans the jobs out over a bounded worker pool and collects results.
func (g *Generator) run(render RenderFunc, jobs []slotJob) error {
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers > len(jobs) && len(jobs) > 0 {
		workers = len(jobs)
	}

	jobChan := make(chan slotJob)
	resChan := make(chan slotResult)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobChan {
				resChan <- g.generate(render, job)
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for _, job := range jobs {
			select {
			case jobChan <- job:
			case <-done:
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resChan)
	}()

	var fatal error
	for res := range resChan {
		switch {
		case res.fatal:
			if fatal == nil {
				fatal = res.err
				// Stop feeding the pool; in-flight renders still drain.
				close(done)
			}
		case res.err != nil:
			// A failed write leaves the other slots untouched; report
			// it and keep going.
			log.Printf("%s %v",
				utils.DecorateText("skipping slot:", utils.ErrorMessage), res.err)
		}
	}
	return fatal
}

// generate renders and persists one slot. The encoded bytes are complete
// before the write starts, so a failed write never leaves a truncated
// half-rendered file behind a successful status.
func (g *Generator) generate(render RenderFunc, job slotJob) slotResult {
	if g.SkipExisting {
		if _, err := os.Stat(job.path); err == nil {
			return slotResult{path: job.path}
		}
	}
	data, err := render(job.px)
	if err != nil {
		// A render or encode failure is a bug, not an environment
		// hiccup; abort the batch.
		return slotResult{path: job.path, err: err, fatal: true}
	}
	if err := os.WriteFile(job.path, data, 0644); err != nil {
		return slotResult{path: job.path, err: err}
	}
	return slotResult{path: job.path}
}
