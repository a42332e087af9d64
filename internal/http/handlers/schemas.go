package handlers

// Request schemas. BodyParser fills them from JSON or url-encoded form
// bodies alike; `validate` tags carry the required-field rules.

type CreateNoteSchema struct {
	Title     string `json:"title" form:"title" validate:"required"`
	Content   string `json:"content" form:"content" validate:"required"`
	Category  string `json:"category" form:"category"`
	Published *bool  `json:"published,omitempty" form:"published"`
}

type UpdateNoteSchema struct {
	Title     *string `json:"title" form:"title"`
	Content   *string `json:"content" form:"content"`
	Category  *string `json:"category" form:"category"`
	Published *bool   `json:"published" form:"published"`
}

type CreateAttributeSchema struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Slug    string `json:"slug" form:"slug" validate:"required"`
	OrderBy string `json:"order_by" form:"order_by"`
}

// CreateTermSchema's ProductID names the owning attribute; the field name is
// historical and kept for wire compatibility.
type CreateTermSchema struct {
	ProductID   string  `json:"product_id" form:"product_id" validate:"required"`
	Name        string  `json:"name" form:"name" validate:"required"`
	Slug        string  `json:"slug" form:"slug" validate:"required"`
	Description *string `json:"description" form:"description"`
}
