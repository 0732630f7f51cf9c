package blueprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// eventChannelBuffer is the size of the watch event channel.
const eventChannelBuffer = 100

// WatchConfig configures blueprint directory watching.
type WatchConfig struct {
	// DebounceDelay is how long to wait for more changes before emitting.
	DebounceDelay time.Duration

	// FileExtensions lists extensions to watch. Empty means FileExtensions.
	FileExtensions []string

	// ExcludeDirs lists directory names to skip.
	ExcludeDirs []string
}

// DefaultWatchConfig returns default watch configuration.
func DefaultWatchConfig() WatchConfig {
	return WatchConfig{
		DebounceDelay:  500 * time.Millisecond,
		FileExtensions: FileExtensions,
		ExcludeDirs:    []string{".git"},
	}
}

// WatchOperation indicates the type of file change.
type WatchOperation string

// WatchOpCreate and WatchOpModify enumerate the emitted operations.
// Removals are not reported: a stored blueprint outlives its file.
const (
	WatchOpCreate WatchOperation = "create"
	WatchOpModify WatchOperation = "modify"
)

// WatchEvent is a blueprint file change.
type WatchEvent struct {
	// Path is the absolute file path.
	Path string

	// Operation is the type of change.
	Operation WatchOperation
}

// Watcher watches a directory tree for blueprint files and emits an event
// per created or changed file once its content settles.
type Watcher struct {
	config     WatchConfig
	dir        string
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
	extensions map[string]bool
	excludes   map[string]bool

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	hashMu sync.Mutex
	hashes map[string]string

	events chan WatchEvent

	droppedEvents atomic.Int64
}

// NewWatcher creates a watcher for dir.
func NewWatcher(config WatchConfig, dir string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = DefaultWatchConfig().DebounceDelay
	}

	exts := config.FileExtensions
	if len(exts) == 0 {
		exts = FileExtensions
	}
	extensions := extensionSet(exts)

	excludes := make(map[string]bool, len(config.ExcludeDirs))
	for _, d := range config.ExcludeDirs {
		excludes[d] = true
	}

	return &Watcher{
		config:     config,
		dir:        dir,
		watcher:    fsw,
		logger:     logger,
		extensions: extensions,
		excludes:   excludes,
		pending:    make(map[string]fsnotify.Op),
		hashes:     make(map[string]string),
		events:     make(chan WatchEvent, eventChannelBuffer),
	}, nil
}

// Events returns the channel of watch events. It is closed when the watcher
// stops.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start adds watches below the directory and begins emitting events.
func (w *Watcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	if err := w.addWatchesRecursive(w.dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Blueprint watcher started",
		"dir", w.dir,
		"debounce", w.config.DebounceDelay)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// Seen records content already handled for path, so an unchanged rewrite
// is not reported.
func (w *Watcher) Seen(path string, content []byte) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = contentHash(content)
}

// DroppedEvents returns the number of events dropped due to a full channel.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if path != root && (w.excludes[base] || strings.HasPrefix(base, ".")) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if !w.extensions[strings.ToLower(filepath.Ext(path))] {
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.logger.Debug("Blueprint file removed", "path", path)
		return
	}

	w.pendingMu.Lock()
	w.pending[path] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Blueprint change detected", "path", path, "op", event.Op.String())
}

func (w *Watcher) handleNewDirectory(path string) {
	base := filepath.Base(path)
	if w.excludes[base] || strings.HasPrefix(base, ".") {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
		return
	}
	w.logger.Debug("Added watch for new directory", "path", path)

	// Files written before the watch was added produce no events.
	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	for _, e := range entries {
		if !e.IsDir() && w.extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			w.pending[filepath.Join(path, e.Name())] |= fsnotify.Create
		}
	}
}

func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				w.logger.Warn("Failed to read blueprint file", "path", path, "error", err)
			}
			continue
		}

		hash := contentHash(content)
		w.hashMu.Lock()
		old, had := w.hashes[path]
		w.hashes[path] = hash
		w.hashMu.Unlock()
		if had && old == hash {
			continue
		}

		event := WatchEvent{Path: path, Operation: WatchOpModify}
		if op.Has(fsnotify.Create) || !had {
			event.Operation = WatchOpCreate
		}
		w.sendEvent(event)
	}
}

func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event", "path", event.Path, "op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("Event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}

func contentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
