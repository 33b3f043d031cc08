package interfaces

import (
	"github.com/ofwtools/ofw-mock-server/internal/models"
)

type FolderService interface {
	// Resolve returns the loaded folder fixture, or the built-in default set
	// when none is loaded. includeCounts is accepted for protocol
	// compatibility and does not change the returned shape.
	Resolve(includeCounts bool) *models.FolderSet
}
