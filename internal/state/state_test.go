package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amore-wedding/invite/internal/wedding"
)

func TestCellSnapshotIsIndependent(t *testing.T) {
	cell := NewCell(wedding.Defaults())

	doc, version := cell.Snapshot()
	assert.Equal(t, uint64(1), version)

	doc.GroomName.EN = "mutated"
	doc.Gallery[0] = "mutated.jpg"

	again, _ := cell.Snapshot()
	assert.Equal(t, wedding.Defaults().GroomName.EN, again.GroomName.EN)
	assert.Equal(t, wedding.Defaults().Gallery[0], again.Gallery[0])
}

func TestCellReplaceBumpsVersion(t *testing.T) {
	cell := NewCell(wedding.Defaults())

	next := wedding.Defaults()
	next.GroomName.EN = "Kenji"
	version := cell.Replace(next)
	assert.Equal(t, uint64(2), version)
	assert.Equal(t, uint64(2), cell.Version())

	doc, v := cell.Snapshot()
	assert.Equal(t, uint64(2), v)
	assert.Equal(t, "Kenji", doc.GroomName.EN)
}

func TestCellReplaceDoesNotAliasInput(t *testing.T) {
	cell := NewCell(wedding.Defaults())

	next := wedding.Defaults()
	cell.Replace(next)
	next.Gallery[0] = "mutated.jpg"

	doc, _ := cell.Snapshot()
	assert.Equal(t, wedding.Defaults().Gallery[0], doc.Gallery[0])
}

func TestCellConcurrentAccess(t *testing.T) {
	cell := NewCell(wedding.Defaults())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				cell.Replace(wedding.Defaults())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = cell.Snapshot()
			}
		}()
	}
	wg.Wait()

	// 8 writers x 50 replacements on top of the seed version.
	assert.Equal(t, uint64(1+8*50), cell.Version())
}
