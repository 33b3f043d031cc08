package models

// Folder mirrors a folder object as captured from the upstream API.
type Folder struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	FolderOrder        int    `json:"folderOrder"`
	TotalMessageCount  int    `json:"totalMessageCount"`
	UnreadMessageCount int    `json:"unreadMessageCount"`
	FolderType         string `json:"folderType"`
}

// FolderSet is the response shape of the messageFolders endpoint.
type FolderSet struct {
	SystemFolders []Folder `json:"systemFolders"`
	UserFolders   []Folder `json:"userFolders"`
}

// DefaultFolderSet is what the server answers when no folder fixture is
// loaded, so a freshly pointed client always sees a usable folder list.
func DefaultFolderSet() *FolderSet {
	return &FolderSet{
		SystemFolders: []Folder{
			{ID: 1, Name: "Inbox", FolderOrder: 1, FolderType: "INBOX"},
			{ID: 2, Name: "Action Items", FolderOrder: 2, FolderType: "ACTION_ITEMS"},
			{ID: 3, Name: "Notifications", FolderOrder: 3, FolderType: "SYSTEM_MESSAGES"},
		},
		UserFolders: []Folder{},
	}
}
