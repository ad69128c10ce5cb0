package journal

// CreateRequest is the payload for creating a journal entry.
type CreateRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// UpdateRequest is the payload for replacing a journal entry's fields.
type UpdateRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}
