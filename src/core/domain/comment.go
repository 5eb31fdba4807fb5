package domain

// DeletedCommentContent replaces the content of soft-deleted comments on read.
const DeletedCommentContent = "**komentar telah dihapus**"

// CommentState is the soft-delete state of a comment.
type CommentState int

const (
	CommentActive CommentState = iota
	CommentDeleted
)

// CommentStateOf maps the stored soft-delete flag to a CommentState.
func CommentStateOf(isDeleted bool) CommentState {
	if isDeleted {
		return CommentDeleted
	}
	return CommentActive
}

// NewComment is a validated request to comment on a thread.
type NewComment struct {
	UserID   string
	ThreadID string
	Content  string
}

// NewNewComment validates a comment-creation payload {userId, threadId, content}.
func NewNewComment(p Payload) (*NewComment, error) {
	v, err := RequireStrings("NEW_COMMENT", p, "userId", "threadId", "content")
	if err != nil {
		return nil, err
	}
	return &NewComment{UserID: v["userId"], ThreadID: v["threadId"], Content: v["content"]}, nil
}

// AddedComment is the store-assigned result of creating a comment.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// NewAddedComment validates an added-comment payload {id, owner, content}.
func NewAddedComment(p Payload) (*AddedComment, error) {
	v, err := RequireStrings("ADDED_COMMENT", p, "id", "owner", "content")
	if err != nil {
		return nil, err
	}
	return &AddedComment{ID: v["id"], Content: v["content"], Owner: v["owner"]}, nil
}

// CommentRecord is a stored comment joined with its owner's username.
type CommentRecord struct {
	ID       string
	Username string
	Date     string
	Content  string
	State    CommentState
}

// CommentView is a comment as exposed on a thread detail.
type CommentView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

// DetailComment is the read-time projection of a thread's comments.
type DetailComment struct {
	Comments []CommentView
}

// NewDetailComment validates a {comments} payload holding []CommentRecord
// and masks the content of deleted comments. A nil slice is an empty sequence.
func NewDetailComment(p Payload) (*DetailComment, error) {
	raw, ok := p["comments"]
	if !ok || raw == nil {
		return nil, NewMissingPropertyError("DETAIL_COMMENT", "comments")
	}
	records, ok := raw.([]CommentRecord)
	if !ok {
		return nil, NewWrongTypeError("DETAIL_COMMENT", "comments")
	}
	return &DetailComment{Comments: MaskComments(records)}, nil
}

// MaskComments maps records to views, replacing deleted content with
// DeletedCommentContent. Order is preserved.
func MaskComments(records []CommentRecord) []CommentView {
	views := make([]CommentView, 0, len(records))
	for _, r := range records {
		content := r.Content
		if r.State == CommentDeleted {
			content = DeletedCommentContent
		}
		views = append(views, CommentView{
			ID:       r.ID,
			Username: r.Username,
			Date:     r.Date,
			Content:  content,
		})
	}
	return views
}
