// Package ingest feeds documents dropped into watched directories to the
// extraction queue. Each watched root is bound to one agent; a file that
// appears under a root is copied into the upload area and queued against
// that agent.
package ingest

import "time"

// WatchRoot binds one directory tree to an agent.
type WatchRoot struct {
	Path    string
	AgentID int
}

// Config tunes directory watching.
type Config struct {
	Roots       []WatchRoot
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> constants.AllowedExtensions
	InitialScan bool                // emit files already present under the roots
	Debounce    time.Duration       // coalesce rapid write bursts, default 500ms
	UploadDir   string              // where queued copies live
	WorkRoot    string              // scratch root for page renders
}

// event is one file observed under a watched root.
type event struct {
	Path    string
	AgentID int
}
