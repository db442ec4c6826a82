package domain

// Note is an Item carrying free text. Notes are constructed directly.
type Note struct {
	Content string
	itemBase
}

// NewNote creates a pending note.
func NewNote(description, content string) *Note {
	return &Note{
		Content:  content,
		itemBase: itemBase{description: description},
	}
}

// Kind returns KindNote.
func (n *Note) Kind() Kind { return KindNote }

// Display formats the note as "<description> - <status>, Content: <content>".
// Priority and dates are not shown.
func (n *Note) Display() string {
	return n.statusPrefix() + ", Content: " + n.Content
}

// Clone returns a copy of the note.
func (n *Note) Clone() Item {
	c := *n
	return &c
}
