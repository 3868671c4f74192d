// internal/mockapi/handler.go
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"libraryfront/internal/api"
)

type contextKey string

const userKey contextKey = "mockapi.user"

// Server implements the library REST surface in memory, wrapping every
// response in the standard {success, data, message} envelope.
type Server struct {
	store         *Store
	secret        []byte
	registerLimit *rate.Limiter
	now           func() time.Time
}

// NewServer creates a development API server around the store. The seeded
// accounts member@library.dev/password123 and admin@library.dev/admin123
// are always available.
func NewServer(store *Store, secret []byte) (*Server, error) {
	s := &Server{
		store:         store,
		secret:        secret,
		registerLimit: rate.NewLimiter(rate.Every(1*time.Minute), 5), // 5 registrations per minute
		now:           time.Now,
	}
	if err := s.seedAccount("Member", "member@library.dev", "password123", "member"); err != nil {
		return nil, err
	}
	if err := s.seedAccount("Admin", "admin@library.dev", "admin123", "admin"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) seedAccount(name, email, password, role string) error {
	hash, salt, err := hashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.store.CreateUser(name, email, hash, salt, role)
	if errors.Is(err, ErrDuplicateEmail) {
		return nil
	}
	return err
}

// Router builds the full route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/auth/register", s.handleRegister)

	r.Get("/api/books", s.handleListBooks)
	r.Get("/api/books/recommend", s.handleRecommend)
	r.Get("/api/books/{id}", s.handleGetBook)
	r.Get("/api/books/{id}/reviews", s.handleBookReviews)
	r.Get("/api/authors", s.handleListAuthors)
	r.Get("/api/authors/{id}/books", s.handleAuthorBooks)
	r.Get("/api/categories", s.handleListCategories)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Post("/api/loans", s.handleBorrow)
		r.Post("/api/loans/multiple", s.handleBorrowMany)
		r.Patch("/api/loans/{id}/return", s.handleReturn)
		r.Get("/api/loans/my", s.handleMyLoans)

		r.Get("/api/profile", s.handleProfile)
		r.Put("/api/profile", s.handleUpdateProfile)
		r.Get("/api/reviews/my", s.handleMyReviews)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireAdmin)

		r.Post("/api/books", s.handleCreateBook)
		r.Put("/api/books/{id}", s.handleUpdateBook)
		r.Delete("/api/books/{id}", s.handleDeleteBook)

		r.Post("/api/authors", s.handleCreateAuthor)
		r.Put("/api/authors/{id}", s.handleUpdateAuthor)
		r.Delete("/api/authors/{id}", s.handleDeleteAuthor)

		r.Post("/api/categories", s.handleCreateCategory)
		r.Put("/api/categories/{id}", s.handleUpdateCategory)
		r.Delete("/api/categories/{id}", s.handleDeleteCategory)

		r.Post("/api/admin/loans", s.handleAdminCreateLoan)
		r.Patch("/api/admin/loans/{id}", s.handleAdminUpdateLoan)
		r.Get("/api/admin/loans/overdue", s.handleAdminOverdue)
		r.Get("/api/admin/overview", s.handleAdminOverview)
	})

	return r
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Success bool `json:"success"`
		Data    any  `json:"data,omitempty"`
	}{Success: true, Data: data})
}

func fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: false, Message: message})
}

func failFor(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		fail(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrOutOfStock):
		fail(w, http.StatusConflict, "book is out of stock")
	case errors.Is(err, ErrDuplicateEmail):
		fail(w, http.StatusConflict, "email already registered")
	case errors.Is(err, ErrAlreadyReturned):
		fail(w, http.StatusConflict, "loan already returned")
	default:
		fail(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			fail(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		userID, err := parseToken(s.secret, token)
		if err != nil {
			fail(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		user, err := s.store.UserByID(userID)
		if err != nil {
			fail(w, http.StatusUnauthorized, "unknown user")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if currentUser(r).Role != "admin" {
			fail(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) *User {
	return r.Context().Value(userKey).(*User)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.UserByEmail(req.Email)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid email or password")
		return
	}
	ok, err := verifyPassword(req.Password, user.Salt, user.PasswordHash)
	if err != nil || !ok {
		fail(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	token, err := issueToken(s.secret, user, s.now())
	if err != nil {
		fail(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	respond(w, http.StatusOK, api.AuthResult{Token: token, User: user.Profile()})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !s.registerLimit.Allow() {
		fail(w, http.StatusTooManyRequests, "too many registrations, try again later")
		return
	}

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		fail(w, http.StatusBadRequest, "name, email and a password of at least 8 characters are required")
		return
	}

	hash, salt, err := hashPassword(req.Password)
	if err != nil {
		fail(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	user, err := s.store.CreateUser(req.Name, req.Email, hash, salt, "member")
	if err != nil {
		failFor(w, err)
		return
	}

	token, err := issueToken(s.secret, user, s.now())
	if err != nil {
		fail(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	respond(w, http.StatusCreated, api.AuthResult{Token: token, User: user.Profile()})
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	params := api.BookListParams{
		Category: r.URL.Query().Get("category"),
		Author:   r.URL.Query().Get("author"),
		Search:   r.URL.Query().Get("search"),
	}
	params.Page = intQuery(r, "page", 1)
	params.Limit = intQuery(r, "limit", 20)

	books, total := s.store.ListBooks(params)
	respond(w, http.StatusOK, api.BookList{
		Books: books,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	})
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.store.GetBook(chi.URLParam(r, "id"))
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, book)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	recType := r.URL.Query().Get("type")
	if recType == "" {
		recType = "rating"
	}
	respond(w, http.StatusOK, s.store.Recommend(recType, 10))
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var input api.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Title == "" {
		fail(w, http.StatusBadRequest, "title is required")
		return
	}
	respond(w, http.StatusCreated, s.store.CreateBook(input))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var input api.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	book, err := s.store.UpdateBook(chi.URLParam(r, "id"), input)
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, book)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteBook(chi.URLParam(r, "id")); err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, nil)
}

func (s *Server) handleListAuthors(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.ListAuthors())
}

func (s *Server) handleAuthorBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.store.AuthorBooks(chi.URLParam(r, "id"))
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, books)
}

func (s *Server) handleCreateAuthor(w http.ResponseWriter, r *http.Request) {
	var input api.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respond(w, http.StatusCreated, s.store.CreateAuthor(input))
}

func (s *Server) handleUpdateAuthor(w http.ResponseWriter, r *http.Request) {
	var input api.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	author, err := s.store.UpdateAuthor(chi.URLParam(r, "id"), input)
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, author)
}

func (s *Server) handleDeleteAuthor(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAuthor(chi.URLParam(r, "id")); err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, nil)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.ListCategories())
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var input api.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respond(w, http.StatusCreated, s.store.CreateCategory(input))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input api.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	category, err := s.store.UpdateCategory(chi.URLParam(r, "id"), input)
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCategory(chi.URLParam(r, "id")); err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, nil)
}

func (s *Server) handleBorrow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookID string `json:"bookId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BookID == "" {
		fail(w, http.StatusBadRequest, "bookId is required")
		return
	}
	loan, err := s.store.Borrow(currentUser(r).ID, req.BookID, s.now())
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusCreated, loan)
}

func (s *Server) handleBorrowMany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookIDs []string `json:"book_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.BookIDs) == 0 {
		fail(w, http.StatusBadRequest, "book_ids is required")
		return
	}
	loans, err := s.store.BorrowMany(currentUser(r).ID, req.BookIDs, s.now())
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusCreated, loans)
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	loan, err := s.store.Return(chi.URLParam(r, "id"), currentUser(r).ID, s.now())
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, loan)
}

func (s *Server) handleMyLoans(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.LoansByUser(currentUser(r).ID, s.now()))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, currentUser(r).Profile())
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input api.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := s.store.UpdateUser(currentUser(r).ID, input)
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, user)
}

func (s *Server) handleBookReviews(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.BookReviews(chi.URLParam(r, "id")))
}

func (s *Server) handleMyReviews(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.ReviewsByUser(currentUser(r).ID))
}

func (s *Server) handleAdminCreateLoan(w http.ResponseWriter, r *http.Request) {
	var input api.AdminLoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	loan, err := s.store.AdminCreateLoan(input, s.now())
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusCreated, loan)
}

func (s *Server) handleAdminUpdateLoan(w http.ResponseWriter, r *http.Request) {
	var update api.AdminLoanUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	loan, err := s.store.AdminUpdateLoan(chi.URLParam(r, "id"), update)
	if err != nil {
		failFor(w, err)
		return
	}
	respond(w, http.StatusOK, loan)
}

func (s *Server) handleAdminOverdue(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.OverdueLoans(s.now()))
}

func (s *Server) handleAdminOverview(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.store.Overview(s.now()))
}

func intQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
