package domain

type Category struct {
	ID   int64  `json:"category_id" db:"category_id"`
	Name string `json:"category_name" db:"category_name"`
}

// NewCategory builds a transient category. An id of 0 means not yet assigned.
func NewCategory(id int64, name string) (*Category, error) {
	if id < 0 {
		return nil, ErrNegativeID
	}

	return &Category{ID: id, Name: name}, nil
}
