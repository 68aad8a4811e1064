package worker

import (
	"log"
	"time"

	"deadline/storage"
)

// SnapshotWorker is a background worker that periodically writes a JSON
// snapshot of the local store. The store itself is write-through; snapshots
// are a recovery convenience on top of it.
type SnapshotWorker struct {
	store    *storage.Store
	dir      string
	interval time.Duration
	stopChan chan struct{}
	running  bool
}

// NewSnapshotWorker creates a new snapshot worker
func NewSnapshotWorker(store *storage.Store, dir string, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		store:    store,
		dir:      dir,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start starts the snapshot worker in its own goroutine
func (w *SnapshotWorker) Start() {
	if w.running {
		log.Println("Snapshot worker is already running")
		return
	}

	w.running = true
	log.Printf("Snapshot worker started (interval: %v)", w.interval)

	go w.run()
}

// Stop stops the snapshot worker
func (w *SnapshotWorker) Stop() {
	if !w.running {
		return
	}

	log.Println("Stopping snapshot worker...")
	close(w.stopChan)
	w.running = false
	log.Println("Snapshot worker stopped")
}

// run is the main worker loop
func (w *SnapshotWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Snapshot immediately on start
	w.snapshot()

	for {
		select {
		case <-ticker.C:
			w.snapshot()
		case <-w.stopChan:
			return
		}
	}
}

// snapshot writes one snapshot file. Failures are logged and retried on the
// next tick; they never affect the live store.
func (w *SnapshotWorker) snapshot() {
	startTime := time.Now()
	path, err := w.store.Snapshot(w.dir)
	if err != nil {
		log.Printf("Error writing snapshot: %v", err)
		return
	}
	log.Printf("Snapshot written to %s in %v", path, time.Since(startTime))
}
