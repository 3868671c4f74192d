// internal/catalog/domain.go
package catalog

import (
	"bytes"
	"encoding/json"
	"time"
)

// Ref is a normalized reference to an author or category. The server is
// inconsistent about these fields: sometimes a plain string, sometimes an
// object with id and name. Ref decodes both shapes once at the data-layer
// boundary so the rest of the application consumes a single form.
type Ref struct {
	ID   string
	Name string
}

// IsReference reports whether the ref points at a server-side record
// rather than carrying an inline name only.
func (r Ref) IsReference() bool { return r.ID != "" }

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = Ref{Name: name}
		return nil
	}
	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Ref{ID: obj.ID, Name: obj.Name}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.IsReference() {
		return json.Marshal(r.Name)
	}
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{r.ID, r.Name})
}

// Book is a catalog entry as served by the books API.
type Book struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        Ref     `json:"author"`
	Category      Ref     `json:"category"`
	CoverImage    string  `json:"cover_image,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Stock         int     `json:"stock"`
	Description   string  `json:"description,omitempty"`
	ISBN          string  `json:"isbn,omitempty"`
	PublishedYear int     `json:"published_year,omitempty"`
	Pages         int     `json:"pages,omitempty"`
	Language      string  `json:"language,omitempty"`
	Publisher     string  `json:"publisher,omitempty"`
}

// Author is a writer record.
type Author struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Books       int    `json:"books,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// Category is a catalog grouping.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the cached profile of the signed-in member. It is display
// information only; the token owns the authenticated fact.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Loan statuses as reported by the server. The client never computes
// overdue state itself.
const (
	LoanActive   = "active"
	LoanReturned = "returned"
	LoanOverdue  = "overdue"
)

// Loan is a borrow record.
type Loan struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	BookTitle  string    `json:"book_title,omitempty"`
	UserID     string    `json:"user_id"`
	BorrowedAt time.Time `json:"borrowed_at"`
	DueDate    time.Time `json:"due_date"`
	ReturnedAt time.Time `json:"returned_at,omitempty"`
	Status     string    `json:"status"`
}

// Review is a member's review of a book.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminOverview is the administrative dashboard summary.
type AdminOverview struct {
	TotalBooks   int `json:"total_books"`
	TotalUsers   int `json:"total_users"`
	ActiveLoans  int `json:"active_loans"`
	OverdueLoans int `json:"overdue_loans"`
}
