package messages

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

type messageService struct {
	fixtures interfaces.FixtureRepository
}

func NewMessageService(fixtures interfaces.FixtureRepository) interfaces.MessageService {
	return &messageService{fixtures: fixtures}
}

// List slices the captured message list for a folder. sort and sortDirection
// are deliberately ignored: the double replays messages in captured order,
// and re-sorting would produce an order the real API never returned.
func (s *messageService) List(folderID *int, page, size int, sort, sortDirection string) (*models.PagedMessages, map[string]interface{}) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	var stored *models.FolderMessages
	if folderID != nil {
		stored = s.fixtures.Messages(*folderID)
	}
	if stored == nil {
		return &models.PagedMessages{
			Metadata: models.PageMetadata{Page: page, Count: 0, First: true, Last: true},
			Data:     []models.Message{},
		}, nil
	}

	if stored.Page == nil {
		// Pre-pagination capture, replayed as-is.
		return nil, stored.Legacy
	}

	all := stored.Page.Data
	start := (page - 1) * size
	end := start + size
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}
	pageData := all[start:end]
	if pageData == nil {
		pageData = []models.Message{}
	}

	return &models.PagedMessages{
		Metadata: models.PageMetadata{
			Page:  page,
			Count: len(pageData),
			First: page == 1,
			Last:  (page-1)*size+size >= len(all),
		},
		Data: pageData,
	}, nil
}

// Get prefers the full-message capture, which carries a real body. Messages
// known only from a folder listing get a synthesized body so the client's
// detail view always has something to render.
func (s *messageService) Get(messageID int) (models.Message, error) {
	if msg := s.fixtures.FullMessage(messageID); msg != nil {
		return msg, nil
	}

	for _, folderMsgs := range s.fixtures.MessagePages() {
		if folderMsgs.Page == nil {
			continue
		}
		for _, msg := range folderMsgs.Page.Data {
			id, ok := msg.ID()
			if !ok || id != messageID {
				continue
			}
			result := msg.Clone()
			if !result.HasBody() {
				result["body"] = fmt.Sprintf("This is a mock message body for message %d.", messageID)
			}
			return result, nil
		}
	}

	return nil, ErrMessageNotFound
}
