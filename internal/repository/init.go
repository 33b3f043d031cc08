package repository

import (
	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/logger"
)

type Repositories struct {
	FixtureRepository interfaces.FixtureRepository
}

func InitRepositories(dataDir string, log logger.Logger) *Repositories {
	return &Repositories{
		FixtureRepository: NewFixtureRepository(dataDir, log),
	}
}
