// Package state owns the process-wide configuration document: one writer at a
// time, whole-object replacement, snapshot reads.
package state

import (
	"sync"

	"github.com/amore-wedding/invite/internal/wedding"
)

// Cell is a versioned value cell holding the resolved configuration. Writes
// replace the whole document so readers never observe a partial update.
type Cell struct {
	mu      sync.RWMutex
	version uint64
	doc     wedding.Document
}

// NewCell seeds the cell, typically with the default document.
func NewCell(doc wedding.Document) *Cell {
	return &Cell{version: 1, doc: doc.Clone()}
}

// Snapshot returns an independent copy of the current document and its
// version.
func (c *Cell) Snapshot() (wedding.Document, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc.Clone(), c.version
}

// Version returns the current version without copying the document.
func (c *Cell) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Replace installs doc as the new configuration and returns the new version.
func (c *Cell) Replace(doc wedding.Document) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = doc.Clone()
	c.version++
	return c.version
}
