package domain

// NewThread is a validated request to create a thread.
type NewThread struct {
	Title string
	Body  string
	Owner string
}

// NewNewThread validates a thread-creation payload {title, body, owner}.
func NewNewThread(p Payload) (*NewThread, error) {
	v, err := RequireStrings("NEW_THREAD", p, "title", "body", "owner")
	if err != nil {
		return nil, err
	}
	return &NewThread{Title: v["title"], Body: v["body"], Owner: v["owner"]}, nil
}

// AddedThread is the store-assigned result of creating a thread.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// NewAddedThread validates an added-thread payload {id, title, owner}.
func NewAddedThread(p Payload) (*AddedThread, error) {
	v, err := RequireStrings("ADDED_THREAD", p, "id", "title", "owner")
	if err != nil {
		return nil, err
	}
	return &AddedThread{ID: v["id"], Title: v["title"], Owner: v["owner"]}, nil
}

// ThreadDetail is the read model of a thread with its comment projection.
type ThreadDetail struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	Date     string        `json:"date"`
	Username string        `json:"username"`
	Comments []CommentView `json:"comments"`
}
