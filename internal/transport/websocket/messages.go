package websocket

const (
	MsgFindMove = "find_move"
	MsgMove     = "move"
	MsgError    = "error"
)

// ClientMessage asks for one move. ID is echoed back on the reply.
type ClientMessage struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Board []int  `json:"board"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
}

type ServerMessage struct {
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Column    *int   `json:"column"`
	Winner    string `json:"winner,omitempty"`
	Cached    bool   `json:"cached,omitempty"`
	Message   string `json:"message,omitempty"`
}
