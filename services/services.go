package services

import (
	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/repository"
	"github.com/ofwtools/ofw-mock-server/services/folders"
	"github.com/ofwtools/ofw-mock-server/services/messages"
)

type Services struct {
	FolderService  interfaces.FolderService
	MessageService interfaces.MessageService
}

func InitServices(repos *repository.Repositories) *Services {
	return &Services{
		FolderService:  folders.NewFolderService(repos.FixtureRepository),
		MessageService: messages.NewMessageService(repos.FixtureRepository),
	}
}
