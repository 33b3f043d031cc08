package models

// LocalStorage is the captured browser localStorage snapshot the client
// bootstraps its session from. Opaque except for the auth key.
type LocalStorage map[string]interface{}

// WithAuth returns a copy carrying the given auth token when the snapshot
// has none. Captured tokens are never overwritten.
func (l LocalStorage) WithAuth(token string) LocalStorage {
	out := make(LocalStorage, len(l)+1)
	for k, v := range l {
		out[k] = v
	}
	if _, ok := out["auth"]; !ok {
		out["auth"] = token
	}
	return out
}

// DefaultLocalStorage is the minimal identity served when no snapshot fixture
// is loaded.
func DefaultLocalStorage(token string) LocalStorage {
	return LocalStorage{
		"auth":      token,
		"userId":    123456,
		"firstName": "Mock",
		"lastName":  "User",
	}
}

// FixtureStats summarizes what the store currently holds, for the health
// endpoint and the startup report.
type FixtureStats struct {
	FoldersLoaded      bool
	MessageFolderCount int
	FullMessageCount   int
	LocalStorageLoaded bool
}
