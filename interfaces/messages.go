package interfaces

import (
	"github.com/ofwtools/ofw-mock-server/internal/models"
)

type MessageService interface {
	// List pages through a folder's captured messages. Exactly one of the
	// return values is non-nil: paged for the normal capture shape, legacy
	// for pre-pagination captures that are replayed verbatim. sort and
	// sortDirection are accepted but never applied; fixtures keep their
	// captured order.
	List(folderID *int, page, size int, sort, sortDirection string) (paged *models.PagedMessages, legacy map[string]interface{})

	// Get returns the full capture for a message id, synthesizing a body for
	// list-only messages that lack one. Returns ErrMessageNotFound from the
	// messages service when the id is unknown.
	Get(messageID int) (models.Message, error)
}
