package messages

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofwtools/ofw-mock-server/internal/models"
)

type fakeFixtures struct {
	folders *models.FolderSet
	pages   map[int]*models.FolderMessages
	full    map[int]models.Message
	local   models.LocalStorage
}

func (f *fakeFixtures) Load() error                   { return nil }
func (f *fakeFixtures) FolderSet() *models.FolderSet  { return f.folders }
func (f *fakeFixtures) Messages(folderID int) *models.FolderMessages {
	return f.pages[folderID]
}
func (f *fakeFixtures) MessagePages() map[int]*models.FolderMessages { return f.pages }
func (f *fakeFixtures) FullMessage(id int) models.Message            { return f.full[id] }
func (f *fakeFixtures) LocalStorage() models.LocalStorage            { return f.local }
func (f *fakeFixtures) Stats() models.FixtureStats                   { return models.FixtureStats{} }

func pagesWithMessages(folderID int, count int) map[int]*models.FolderMessages {
	data := make([]models.Message, 0, count)
	for i := 1; i <= count; i++ {
		data = append(data, models.Message{"id": i, "folder": folderID, "subject": fmt.Sprintf("msg %d", i)})
	}
	return map[int]*models.FolderMessages{
		folderID: {Page: &models.MessagePage{Metadata: map[string]interface{}{}, Data: data}},
	}
}

func intPtr(v int) *int { return &v }

func TestList_UnknownFolderReturnsEmptyPage(t *testing.T) {
	svc := NewMessageService(&fakeFixtures{pages: map[int]*models.FolderMessages{}})

	paged, legacy := svc.List(intPtr(99), 3, 50, "date", "desc")

	require.Nil(t, legacy)
	require.NotNil(t, paged)
	assert.Equal(t, 3, paged.Metadata.Page)
	assert.Zero(t, paged.Metadata.Count)
	assert.True(t, paged.Metadata.First)
	assert.True(t, paged.Metadata.Last)
	assert.Empty(t, paged.Data)
}

func TestList_NoFolderParamReturnsEmptyPage(t *testing.T) {
	svc := NewMessageService(&fakeFixtures{pages: pagesWithMessages(7, 3)})

	paged, legacy := svc.List(nil, 1, 50, "date", "desc")

	require.Nil(t, legacy)
	assert.Zero(t, paged.Metadata.Count)
	assert.Empty(t, paged.Data)
}

func TestList_Pagination(t *testing.T) {
	svc := NewMessageService(&fakeFixtures{pages: pagesWithMessages(7, 5)})

	t.Run("first page", func(t *testing.T) {
		paged, _ := svc.List(intPtr(7), 1, 2, "date", "desc")
		assert.Equal(t, 2, paged.Metadata.Count)
		assert.True(t, paged.Metadata.First)
		assert.False(t, paged.Metadata.Last)
		id, _ := paged.Data[0].ID()
		assert.Equal(t, 1, id)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		paged, _ := svc.List(intPtr(7), 3, 2, "date", "desc")
		assert.Equal(t, 1, paged.Metadata.Count)
		assert.False(t, paged.Metadata.First)
		assert.True(t, paged.Metadata.Last)
		id, _ := paged.Data[0].ID()
		assert.Equal(t, 5, id)
	})

	t.Run("page beyond range", func(t *testing.T) {
		paged, _ := svc.List(intPtr(7), 4, 2, "date", "desc")
		assert.Equal(t, 4, paged.Metadata.Page)
		assert.Zero(t, paged.Metadata.Count)
		assert.False(t, paged.Metadata.First)
		assert.True(t, paged.Metadata.Last)
		assert.Empty(t, paged.Data)
	})

	t.Run("single page covers everything", func(t *testing.T) {
		paged, _ := svc.List(intPtr(7), 1, 50, "date", "desc")
		assert.Equal(t, 5, paged.Metadata.Count)
		assert.True(t, paged.Metadata.First)
		assert.True(t, paged.Metadata.Last)
	})
}

func TestList_CapturedOrderIsKept(t *testing.T) {
	// sortDirection=asc must not reorder what the capture recorded.
	svc := NewMessageService(&fakeFixtures{pages: pagesWithMessages(7, 3)})

	paged, _ := svc.List(intPtr(7), 1, 50, "date", "asc")

	ids := make([]int, 0, len(paged.Data))
	for _, msg := range paged.Data {
		id, _ := msg.ID()
		ids = append(ids, id)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestList_LegacyShapeBypassesPagination(t *testing.T) {
	legacyCapture := map[string]interface{}{"messages": []interface{}{"a", "b"}}
	svc := NewMessageService(&fakeFixtures{
		pages: map[int]*models.FolderMessages{
			5: {Legacy: legacyCapture},
		},
	})

	paged, legacy := svc.List(intPtr(5), 2, 1, "date", "desc")

	assert.Nil(t, paged)
	assert.Equal(t, legacyCapture, legacy)
}

func TestGet_FullMessageTakesPriority(t *testing.T) {
	svc := NewMessageService(&fakeFixtures{
		pages: pagesWithMessages(7, 3),
		full: map[int]models.Message{
			2: {"id": 2, "folder": 7, "body": "the real body"},
		},
	})

	msg, err := svc.Get(2)

	require.NoError(t, err)
	assert.Equal(t, "the real body", msg["body"])
}

func TestGet_SynthesizesMissingBody(t *testing.T) {
	svc := NewMessageService(&fakeFixtures{pages: pagesWithMessages(7, 3)})

	msg, err := svc.Get(2)

	require.NoError(t, err)
	assert.Equal(t, "This is a mock message body for message 2.", msg["body"])
	assert.Equal(t, "msg 2", msg["subject"])
}

func TestGet_DoesNotMutateStoredFixture(t *testing.T) {
	fixtures := &fakeFixtures{pages: pagesWithMessages(7, 1)}
	svc := NewMessageService(fixtures)

	_, err := svc.Get(1)

	require.NoError(t, err)
	assert.False(t, fixtures.pages[7].Page.Data[0].HasBody())
}

func TestGet_ExistingBodyUnchanged(t *testing.T) {
	pages := map[int]*models.FolderMessages{
		7: {Page: &models.MessagePage{Data: []models.Message{
			{"id": 1, "folder": 7, "body": "captured"},
		}}},
	}
	svc := NewMessageService(&fakeFixtures{pages: pages})

	msg, err := svc.Get(1)

	require.NoError(t, err)
	assert.Equal(t, "captured", msg["body"])
}

func TestGet_NotFound(t *testing.T) {
	svc := NewMessageService(&fakeFixtures{pages: pagesWithMessages(7, 3)})

	_, err := svc.Get(999)

	assert.ErrorIs(t, err, ErrMessageNotFound)
}
