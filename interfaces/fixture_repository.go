package interfaces

import (
	"github.com/ofwtools/ofw-mock-server/internal/models"
)

// FixtureRepository owns the captured API data the server replays. Load
// swaps categories wholesale; every read is side-effect free.
type FixtureRepository interface {
	// Load scans the data directory and replaces each category whose source
	// file is present. Absent files leave the category untouched; a file
	// that fails to parse fails the whole call.
	Load() error

	FolderSet() *models.FolderSet
	Messages(folderID int) *models.FolderMessages
	// MessagePages returns the current per-folder snapshot. The returned map
	// is replaced, never mutated, by Load; callers must treat it as
	// read-only.
	MessagePages() map[int]*models.FolderMessages
	FullMessage(id int) models.Message
	LocalStorage() models.LocalStorage
	Stats() models.FixtureStats
}
