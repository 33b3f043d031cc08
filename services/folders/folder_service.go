package folders

import (
	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/models"
)

type folderService struct {
	fixtures interfaces.FixtureRepository
}

func NewFolderService(fixtures interfaces.FixtureRepository) interfaces.FolderService {
	return &folderService{fixtures: fixtures}
}

// Resolve replays the captured folder set verbatim. includeCounts exists
// because the client sends it; the capture already contains whatever counts
// the upstream produced, so no filtering happens here.
func (s *folderService) Resolve(includeCounts bool) *models.FolderSet {
	if set := s.fixtures.FolderSet(); set != nil {
		return set
	}
	return models.DefaultFolderSet()
}
