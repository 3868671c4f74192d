// internal/mockapi/store.go
package mockapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
	"libraryfront/internal/placeholder"
)

const loanPeriod = 14 * 24 * time.Hour // 2 weeks

var (
	ErrNotFound        = errors.New("mockapi: not found")
	ErrOutOfStock      = errors.New("mockapi: book out of stock")
	ErrDuplicateEmail  = errors.New("mockapi: email already registered")
	ErrAlreadyReturned = errors.New("mockapi: loan already returned")
)

// User is a stored account, password hashed at rest.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
	Salt         string
}

func (u *User) Profile() catalog.User {
	return catalog.User{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Store holds the in-memory data behind the development API.
type Store struct {
	mu         sync.Mutex
	books      map[string]*catalog.Book
	bookOrder  []string
	authors    map[string]*catalog.Author
	authorIDs  []string
	categories map[string]*catalog.Category
	catIDs     []string
	users      map[string]*User
	byEmail    map[string]string
	loans      map[string]*catalog.Loan
	loanOrder  []string
	reviews    []catalog.Review
}

func NewStore() *Store {
	return &Store{
		books:      make(map[string]*catalog.Book),
		authors:    make(map[string]*catalog.Author),
		categories: make(map[string]*catalog.Category),
		users:      make(map[string]*User),
		byEmail:    make(map[string]string),
		loans:      make(map[string]*catalog.Loan),
	}
}

// Seed populates the catalog with placeholder content so the API serves
// data out of the box.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, book := range placeholder.Books(40, 0) {
		b := book
		b.ID = uuid.NewString()
		s.books[b.ID] = &b
		s.bookOrder = append(s.bookOrder, b.ID)
	}
	for _, author := range placeholder.Authors(10) {
		a := author
		a.ID = uuid.NewString()
		s.authors[a.ID] = &a
		s.authorIDs = append(s.authorIDs, a.ID)
	}
	for _, category := range placeholder.Categories() {
		c := category
		c.ID = uuid.NewString()
		s.categories[c.ID] = &c
		s.catIDs = append(s.catIDs, c.ID)
	}
}

// ListBooks filters and paginates the catalog.
func (s *Store) ListBooks(params api.BookListParams) ([]catalog.Book, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []catalog.Book
	for _, id := range s.bookOrder {
		book := s.books[id]
		if params.Category != "" && !strings.EqualFold(book.Category.Name, params.Category) {
			continue
		}
		if params.Author != "" && !strings.EqualFold(book.Author.Name, params.Author) {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(book.Title), needle) &&
				!strings.Contains(strings.ToLower(book.Author.Name), needle) {
				continue
			}
		}
		matched = append(matched, *book)
	}

	total := len(matched)
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= total {
		return nil, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total
}

func (s *Store) GetBook(id string) (catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[id]
	if !ok {
		return catalog.Book{}, ErrNotFound
	}
	return *book, nil
}

// Recommend returns the top books by rating, or by borrow count when
// recType is "popular".
func (s *Store) Recommend(recType string, limit int) []catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]catalog.Book, 0, len(s.bookOrder))
	for _, id := range s.bookOrder {
		books = append(books, *s.books[id])
	}

	if recType == "popular" {
		counts := make(map[string]int)
		for _, loan := range s.loans {
			counts[loan.BookID]++
		}
		sort.SliceStable(books, func(i, j int) bool {
			return counts[books[i].ID] > counts[books[j].ID]
		})
	} else {
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].Rating > books[j].Rating
		})
	}

	if len(books) > limit {
		books = books[:limit]
	}
	return books
}

func (s *Store) CreateBook(input api.BookInput) catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := catalog.Book{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Author:        catalog.Ref{Name: input.Author},
		Category:      catalog.Ref{Name: input.Category},
		CoverImage:    input.CoverImage,
		Description:   input.Description,
		Stock:         input.Stock,
		ISBN:          input.ISBN,
		PublishedYear: input.PublishedYear,
	}
	s.books[book.ID] = &book
	s.bookOrder = append(s.bookOrder, book.ID)
	return book
}

func (s *Store) UpdateBook(id string, input api.BookInput) (catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return catalog.Book{}, ErrNotFound
	}
	book.Title = input.Title
	book.Author = catalog.Ref{Name: input.Author}
	book.Category = catalog.Ref{Name: input.Category}
	book.CoverImage = input.CoverImage
	book.Description = input.Description
	book.Stock = input.Stock
	book.ISBN = input.ISBN
	book.PublishedYear = input.PublishedYear
	return *book, nil
}

func (s *Store) DeleteBook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	for i, existing := range s.bookOrder {
		if existing == id {
			s.bookOrder = append(s.bookOrder[:i], s.bookOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListAuthors() []catalog.Author {
	s.mu.Lock()
	defer s.mu.Unlock()
	authors := make([]catalog.Author, 0, len(s.authorIDs))
	for _, id := range s.authorIDs {
		authors = append(authors, *s.authors[id])
	}
	return authors
}

// AuthorBooks lists books whose author name matches the author record.
func (s *Store) AuthorBooks(id string) ([]catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[id]
	if !ok {
		return nil, ErrNotFound
	}
	var books []catalog.Book
	for _, bookID := range s.bookOrder {
		book := s.books[bookID]
		if strings.EqualFold(book.Author.Name, author.Name) || book.Author.ID == id {
			books = append(books, *book)
		}
	}
	return books, nil
}

func (s *Store) CreateAuthor(input api.AuthorInput) catalog.Author {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := catalog.Author{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Bio:         input.Bio,
		Nationality: input.Nationality,
	}
	s.authors[author.ID] = &author
	s.authorIDs = append(s.authorIDs, author.ID)
	return author
}

func (s *Store) UpdateAuthor(id string, input api.AuthorInput) (catalog.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[id]
	if !ok {
		return catalog.Author{}, ErrNotFound
	}
	author.Name = input.Name
	author.Bio = input.Bio
	author.Nationality = input.Nationality
	return *author, nil
}

func (s *Store) DeleteAuthor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[id]; !ok {
		return ErrNotFound
	}
	delete(s.authors, id)
	for i, existing := range s.authorIDs {
		if existing == id {
			s.authorIDs = append(s.authorIDs[:i], s.authorIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListCategories() []catalog.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := make([]catalog.Category, 0, len(s.catIDs))
	for _, id := range s.catIDs {
		categories = append(categories, *s.categories[id])
	}
	return categories
}

func (s *Store) CreateCategory(input api.CategoryInput) catalog.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := catalog.Category{ID: uuid.NewString(), Name: input.Name}
	s.categories[category.ID] = &category
	s.catIDs = append(s.catIDs, category.ID)
	return category
}

func (s *Store) UpdateCategory(id string, input api.CategoryInput) (catalog.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return catalog.Category{}, ErrNotFound
	}
	category.Name = input.Name
	return *category, nil
}

func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(s.categories, id)
	for i, existing := range s.catIDs {
		if existing == id {
			s.catIDs = append(s.catIDs[:i], s.catIDs[i+1:]...)
			break
		}
	}
	return nil
}

// CreateUser registers an account. Email addresses are unique.
func (s *Store) CreateUser(name, email, passwordHash, salt, role string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[strings.ToLower(email)]; taken {
		return nil, ErrDuplicateEmail
	}
	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		Salt:         salt,
	}
	s.users[user.ID] = user
	s.byEmail[strings.ToLower(email)] = user.ID
	return user, nil
}

func (s *Store) UserByEmail(email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return s.users[id], nil
}

func (s *Store) UserByID(id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *Store) UpdateUser(id string, input api.ProfileInput) (catalog.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return catalog.User{}, ErrNotFound
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" && !strings.EqualFold(input.Email, user.Email) {
		lower := strings.ToLower(input.Email)
		if _, taken := s.byEmail[lower]; taken {
			return catalog.User{}, ErrDuplicateEmail
		}
		delete(s.byEmail, strings.ToLower(user.Email))
		s.byEmail[lower] = user.ID
		user.Email = input.Email
	}
	return user.Profile(), nil
}

// Borrow decrements stock and creates an active loan.
func (s *Store) Borrow(userID, bookID string, now time.Time) (catalog.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.borrowLocked(userID, bookID, now)
}

// BorrowMany creates loans for all given books or none of them: every
// stock check passes before any stock is decremented.
func (s *Store) BorrowMany(userID string, bookIDs []string, now time.Time) ([]catalog.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, bookID := range bookIDs {
		book, ok := s.books[bookID]
		if !ok {
			return nil, ErrNotFound
		}
		if book.Stock <= 0 {
			return nil, ErrOutOfStock
		}
	}

	loans := make([]catalog.Loan, 0, len(bookIDs))
	for _, bookID := range bookIDs {
		loan, err := s.borrowLocked(userID, bookID, now)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

func (s *Store) borrowLocked(userID, bookID string, now time.Time) (catalog.Loan, error) {
	book, ok := s.books[bookID]
	if !ok {
		return catalog.Loan{}, ErrNotFound
	}
	if book.Stock <= 0 {
		return catalog.Loan{}, ErrOutOfStock
	}
	book.Stock--

	loan := catalog.Loan{
		ID:         uuid.NewString(),
		BookID:     bookID,
		BookTitle:  book.Title,
		UserID:     userID,
		BorrowedAt: now,
		DueDate:    now.Add(loanPeriod),
		Status:     catalog.LoanActive,
	}
	s.loans[loan.ID] = &loan
	s.loanOrder = append(s.loanOrder, loan.ID)
	return loan, nil
}

// Return marks a loan returned and restores stock. Members may only
// return their own loans; an empty userID skips that check (admin path).
func (s *Store) Return(loanID, userID string, now time.Time) (catalog.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return catalog.Loan{}, ErrNotFound
	}
	if userID != "" && loan.UserID != userID {
		return catalog.Loan{}, ErrNotFound
	}
	if loan.Status == catalog.LoanReturned {
		return catalog.Loan{}, ErrAlreadyReturned
	}
	loan.Status = catalog.LoanReturned
	loan.ReturnedAt = now
	if book, ok := s.books[loan.BookID]; ok {
		book.Stock++
	}
	return *loan, nil
}

func (s *Store) LoansByUser(userID string, now time.Time) []catalog.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	var loans []catalog.Loan
	for _, id := range s.loanOrder {
		loan := s.loans[id]
		if loan.UserID != userID {
			continue
		}
		loans = append(loans, s.withOverdue(*loan, now))
	}
	return loans
}

func (s *Store) OverdueLoans(now time.Time) []catalog.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	var loans []catalog.Loan
	for _, id := range s.loanOrder {
		loan := s.loans[id]
		if loan.Status != catalog.LoanReturned && now.After(loan.DueDate) {
			loans = append(loans, s.withOverdue(*loan, now))
		}
	}
	return loans
}

// withOverdue derives the overdue status at read time; the stored record
// stays active until returned.
func (s *Store) withOverdue(loan catalog.Loan, now time.Time) catalog.Loan {
	if loan.Status == catalog.LoanActive && now.After(loan.DueDate) {
		loan.Status = catalog.LoanOverdue
	}
	return loan
}

func (s *Store) AdminCreateLoan(input api.AdminLoanInput, now time.Time) (catalog.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[input.UserID]; !ok {
		return catalog.Loan{}, ErrNotFound
	}
	loan, err := s.borrowLocked(input.UserID, input.BookID, now)
	if err != nil {
		return catalog.Loan{}, err
	}
	if !input.DueDate.IsZero() {
		s.loans[loan.ID].DueDate = input.DueDate
		loan.DueDate = input.DueDate
	}
	return loan, nil
}

func (s *Store) AdminUpdateLoan(id string, update api.AdminLoanUpdate) (catalog.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[id]
	if !ok {
		return catalog.Loan{}, ErrNotFound
	}
	if update.Status != "" {
		loan.Status = update.Status
	}
	if !update.DueDate.IsZero() {
		loan.DueDate = update.DueDate
	}
	return *loan, nil
}

func (s *Store) Overview(now time.Time) catalog.AdminOverview {
	s.mu.Lock()
	defer s.mu.Unlock()

	overview := catalog.AdminOverview{
		TotalBooks: len(s.books),
		TotalUsers: len(s.users),
	}
	for _, loan := range s.loans {
		if loan.Status == catalog.LoanReturned {
			continue
		}
		overview.ActiveLoans++
		if now.After(loan.DueDate) {
			overview.OverdueLoans++
		}
	}
	return overview
}

func (s *Store) BookReviews(bookID string) []catalog.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reviews []catalog.Review
	for _, review := range s.reviews {
		if review.BookID == bookID {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

func (s *Store) ReviewsByUser(userID string) []catalog.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reviews []catalog.Review
	for _, review := range s.reviews {
		if review.UserID == userID {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

// AddReview records a review; used for seeding test data.
func (s *Store) AddReview(review catalog.Review) catalog.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	s.reviews = append(s.reviews, review)
	return review
}
