package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/ofwtools/ofw-mock-server/interfaces"
	"github.com/ofwtools/ofw-mock-server/internal/logger"
	"github.com/ofwtools/ofw-mock-server/internal/models"
)

// Fixture file names as written by the OFW client export.
const (
	foldersFixture      = "folders.json"
	messagesFixture     = "messages.json"
	allMessagesFixture  = "all_messages.json"
	fullMessageFixture  = "full_message.json"
	localStorageFixture = "localstorage_data.json"
)

type fixtureRepository struct {
	dataDir string
	log     logger.Logger

	mu           sync.RWMutex
	folders      *models.FolderSet
	messages     map[int]*models.FolderMessages
	fullMessages map[int]models.Message
	localStorage models.LocalStorage
}

func NewFixtureRepository(dataDir string, log logger.Logger) interfaces.FixtureRepository {
	return &fixtureRepository{
		dataDir:      dataDir,
		log:          log,
		messages:     map[int]*models.FolderMessages{},
		fullMessages: map[int]models.Message{},
	}
}

// readFixture reads and unmarshals one fixture file. A missing file is not
// an error; a file that exists but does not parse is.
func (r *fixtureRepository) readFixture(name string, out interface{}) (bool, error) {
	path := filepath.Join(r.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "read fixture %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.Wrapf(err, "parse fixture %s", path)
	}
	r.log.Infof("Loaded %s", path)
	return true, nil
}

func (r *fixtureRepository) Load() error {
	var (
		folders      *models.FolderSet
		foldersSeen  bool
		localStorage models.LocalStorage
		localSeen    bool
	)

	foldersSeen, err := r.readFixture(foldersFixture, &folders)
	if err != nil {
		return err
	}

	// The two message exports rebuild the per-folder category together:
	// single-folder export first, then the bulk export grouped on top of it,
	// matching the order the capture tool writes them in.
	messages := map[int]*models.FolderMessages{}
	messagesSeen := false

	var singleExport models.MessagePage
	seen, err := r.readFixture(messagesFixture, &singleExport)
	if err != nil {
		return err
	}
	if seen {
		messagesSeen = true
		if len(singleExport.Data) > 0 {
			// The export carries no folder identifier of its own; the folder
			// is whatever the first message says it belongs to.
			if folderID, ok := singleExport.Data[0].FolderID(); ok {
				page := singleExport
				messages[folderID] = &models.FolderMessages{Page: &page}
			}
		}
	}

	var bulkExport []models.Message
	seen, err = r.readFixture(allMessagesFixture, &bulkExport)
	if err != nil {
		return err
	}
	if seen {
		messagesSeen = true
		for _, msg := range bulkExport {
			folderID, ok := msg.FolderID()
			if !ok {
				continue
			}
			entry, exists := messages[folderID]
			if !exists {
				entry = &models.FolderMessages{
					Page: &models.MessagePage{Metadata: map[string]interface{}{}, Data: []models.Message{}},
				}
				messages[folderID] = entry
			}
			entry.Page.Data = append(entry.Page.Data, msg)
		}
	}

	fullMessages := map[int]models.Message{}
	fullSeen := false
	var fullMessage models.Message
	seen, err = r.readFixture(fullMessageFixture, &fullMessage)
	if err != nil {
		return err
	}
	if seen {
		fullSeen = true
		if id, ok := fullMessage.ID(); ok {
			fullMessages[id] = fullMessage
		}
	}

	localSeen, err = r.readFixture(localStorageFixture, &localStorage)
	if err != nil {
		return err
	}

	// Swap in only the categories whose source files were present, so a
	// partial fixture directory keeps serving the previous data for the
	// rest.
	r.mu.Lock()
	if foldersSeen {
		r.folders = folders
	}
	if messagesSeen {
		r.messages = messages
	}
	if fullSeen {
		r.fullMessages = fullMessages
	}
	if localSeen {
		r.localStorage = localStorage
	}
	r.mu.Unlock()

	return nil
}

func (r *fixtureRepository) FolderSet() *models.FolderSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.folders
}

func (r *fixtureRepository) Messages(folderID int) *models.FolderMessages {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.messages[folderID]
}

func (r *fixtureRepository) MessagePages() map[int]*models.FolderMessages {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.messages
}

func (r *fixtureRepository) FullMessage(id int) models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fullMessages[id]
}

func (r *fixtureRepository) LocalStorage() models.LocalStorage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.localStorage
}

func (r *fixtureRepository) Stats() models.FixtureStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.FixtureStats{
		FoldersLoaded:      r.folders != nil,
		MessageFolderCount: len(r.messages),
		FullMessageCount:   len(r.fullMessages),
		LocalStorageLoaded: r.localStorage != nil,
	}
}
