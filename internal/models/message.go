package models

// Message is an opaque captured message object. Beyond id and folder the
// upstream schema is passed through untouched, so it stays a plain map.
type Message map[string]interface{}

// asInt handles the two numeric encodings seen in captures: JSON numbers
// decode as float64, while messages built in code hold plain ints.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// ID returns the message id when present.
func (m Message) ID() (int, bool) {
	return asInt(m["id"])
}

// FolderID returns the id of the folder the message reports itself in.
func (m Message) FolderID() (int, bool) {
	return asInt(m["folder"])
}

// HasBody reports whether the capture already carries a body field.
func (m Message) HasBody() bool {
	_, ok := m["body"]
	return ok
}

// Clone returns a shallow copy, enough to add fields without mutating the
// stored fixture.
func (m Message) Clone() Message {
	out := make(Message, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MessagePage is the {data, metadata} container the upstream wraps message
// lists in. Metadata is kept verbatim from the capture; list responses build
// their own PageMetadata instead.
type MessagePage struct {
	Metadata map[string]interface{} `json:"metadata"`
	Data     []Message              `json:"data"`
}

// FolderMessages is the per-folder value held by the fixture store: either a
// paged capture, or a legacy capture without a data key that is replayed
// verbatim and never paginated.
type FolderMessages struct {
	Page   *MessagePage
	Legacy map[string]interface{}
}

// PageMetadata is the pagination envelope computed for list responses.
type PageMetadata struct {
	Page  int  `json:"page"`
	Count int  `json:"count"`
	First bool `json:"first"`
	Last  bool `json:"last"`
}

// PagedMessages is a single page of a folder's messages as served to the
// client.
type PagedMessages struct {
	Metadata PageMetadata `json:"metadata"`
	Data     []Message    `json:"data"`
}
