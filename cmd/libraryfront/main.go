// cmd/libraryfront/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"libraryfront/internal/admin"
	"libraryfront/internal/api"
	"libraryfront/internal/books"
	"libraryfront/internal/cart"
	"libraryfront/internal/config"
	"libraryfront/internal/loans"
	"libraryfront/internal/query"
	"libraryfront/internal/reviews"
	"libraryfront/internal/session"
	"libraryfront/internal/uistate"
)

// The composition root: stores and clients are constructed once here and
// handed to the services, nothing lives in package-level state.
type app struct {
	session *session.Store
	auth    session.Service
	cart    *cart.Store
	filters *uistate.Store
	books   books.Service
	loans   loans.Service
	reviews reviews.Service
	admin   admin.Service
}

func newApp(cfg config.Config) (*app, error) {
	sessionStore, err := session.NewStore(session.NewFileStorage(cfg.TokenPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	client := api.NewClient(cfg.BaseURL, api.Options{
		Timeout: cfg.Timeout.Std(),
		Tokens:  sessionStore,
		OnUnauthorized: func() {
			// Forced logout: the UI layer redirects to the login entry
			// point from the store's logout hook.
			if err := sessionStore.Logout(); err != nil {
				log.Printf("failed to clear session after 401: %v", err)
			}
		},
	})

	queries := query.NewClient(query.Options{
		Windows:       cfg.Windows(),
		DefaultWindow: cfg.Staleness.Default.Std(),
	})
	cartStore := cart.NewStore()

	return &app{
		session: sessionStore,
		auth:    session.NewService(sessionStore, client, queries),
		cart:    cartStore,
		filters: uistate.NewStore(),
		books:   books.NewService(client, queries),
		loans:   loans.NewService(client, queries, cartStore),
		reviews: reviews.NewService(client, queries),
		admin:   admin.NewService(client, queries),
	}, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	email := flag.String("email", "", "sign in with this email")
	password := flag.String("password", "", "sign in with this password")
	search := flag.String("search", "", "search the catalog")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	a, err := newApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	if *email != "" {
		user, err := a.auth.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		fmt.Printf("signed in as %s (%s)\n", user.Name, user.Role)
	} else if a.session.Token() != "" {
		if user, err := a.auth.RefreshProfile(ctx); err == nil {
			fmt.Printf("welcome back, %s\n", user.Name)
		}
	}

	a.filters.SetSearchQuery(*search)
	listing := a.books.Browse(ctx, books.ParamsFromFilters(a.filters.Filters(), 20))
	fmt.Printf("catalog (%d books):\n", len(listing))
	for _, book := range listing {
		fmt.Printf("  %-40s %-24s %s (stock %d)\n", book.Title, book.Author.Name, book.Category.Name, book.Stock)
	}

	if len(listing) > 0 {
		if bookReviews, err := a.reviews.ForBook(ctx, listing[0].ID); err == nil {
			fmt.Printf("reviews for %q: %d\n", listing[0].Title, len(bookReviews))
		}
	}

	if a.session.IsAuthenticated() {
		myLoans, err := a.loans.MyLoans(ctx)
		if err != nil {
			log.Printf("failed to list loans: %v", err)
			os.Exit(1)
		}
		fmt.Printf("active loans: %d\n", len(myLoans))
	}

	if user, ok := a.session.User(); ok && user.Role == "admin" {
		overview, err := a.admin.Overview(ctx)
		if err != nil {
			log.Fatalf("failed to load admin overview: %v", err)
		}
		fmt.Printf("overview: %d books, %d users, %d active loans (%d overdue)\n",
			overview.TotalBooks, overview.TotalUsers, overview.ActiveLoans, overview.OverdueLoans)
	}
}
