// internal/placeholder/generator.go
package placeholder

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"libraryfront/internal/catalog"
)

// Placeholder content keeps the UI populated when the API is unreachable
// or returns nothing. Title, author and category assignment is pure in
// (count, startIndex): records cycle through fixed pools. Numeric filler
// (rating, stock, pages, year) is randomized; nothing downstream depends
// on it for correctness.

var titles = []string{
	"21 Resep Bakso Pak Bowo", "Irresistible", "Oliver Twist", "White Fang", "The Scarred Woman",
	"Kapan Pindah Luwaw", "Yeti Dan Kurcaci Yang Abadi", "Rumah Yang Menelan Penghuninya",
	"Other Half of Me", "The Great Gatsby", "To Kill a Mockingbird", "Pride and Prejudice",
	"The Catcher in the Rye", "1984", "Lord of the Flies", "The Hobbit", "Harry Potter",
	"The Lord of the Rings", "Dune", "Foundation", "Brave New World", "Fahrenheit 451",
	"The Chronicles of Narnia", "The Da Vinci Code", "Angels and Demons", "The Alchemist",
	"Life of Pi", "The Kite Runner", "The Book Thief", "The Fault in Our Stars",
}

var authors = []string{
	"Tufik", "Lisa Kleypas", "Charles Dickens", "Jack London", "Jussi Adler-Olsen",
	"Kenken Layla", "Elsa Puspita", "F. Scott Fitzgerald", "Harper Lee", "Jane Austen",
	"J.D. Salinger", "George Orwell", "William Golding", "J.R.R. Tolkien", "J.K. Rowling",
	"Frank Herbert", "Isaac Asimov", "Aldous Huxley", "Ray Bradbury", "C.S. Lewis",
	"Dan Brown", "Paulo Coelho", "Yann Martel", "Khaled Hosseini", "Markus Zusak",
}

var categories = []string{
	"Fiction", "Non-Fiction", "Self-Improvement", "Finance", "Science", "Education",
	"Romance", "Thriller", "Fantasy", "Horror", "Cooking", "Biography", "History",
	"Philosophy", "Psychology", "Technology", "Art", "Music", "Travel", "Health",
}

var firstNames = []string{"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa", "William", "Amanda"}

var lastNames = []string{"Smith", "Johnson", "Brown", "Davis", "Miller", "Wilson", "Moore", "Taylor", "Anderson", "Thomas"}

// Books synthesizes count book records starting at startIndex. Once the
// title pool is exhausted, titles repeat with a volume suffix.
func Books(count, startIndex int) []catalog.Book {
	books := make([]catalog.Book, 0, count)
	for i := 0; i < count; i++ {
		n := startIndex + i
		title := titles[n%len(titles)]
		if n >= len(titles) {
			title = fmt.Sprintf("%s Vol. %d", title, n/len(titles)+1)
		}
		category := categories[n%len(categories)]
		books = append(books, catalog.Book{
			ID:            fmt.Sprintf("placeholder-%d", n+1),
			Title:         title,
			Author:        catalog.Ref{Name: authors[(n%len(titles))%len(authors)]},
			Category:      catalog.Ref{Name: category},
			CoverImage:    "/placeholder-book.png",
			Rating:        4.0 + rand.Float64(),
			Stock:         rand.IntN(10) + 1,
			Description:   fmt.Sprintf("A captivating story that will keep you engaged from start to finish. This book explores themes of %s in an engaging and thought-provoking way.", strings.ToLower(category)),
			ISBN:          fmt.Sprintf("978-%d", rand.Int64N(10_000_000_000)),
			PublishedYear: 2020 + rand.IntN(4),
			Pages:         200 + rand.IntN(300),
			Language:      "English",
			Publisher:     fmt.Sprintf("Publisher %d", rand.IntN(20)+1),
		})
	}
	return books
}

// Authors synthesizes count author records cycling through the name pools.
func Authors(count int) []catalog.Author {
	records := make([]catalog.Author, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, catalog.Author{
			ID:          fmt.Sprintf("author-%d", i+1),
			Name:        firstNames[i%len(firstNames)] + " " + lastNames[i%len(lastNames)],
			Books:       rand.IntN(15) + 1,
			Avatar:      "/placeholder-avatar.png",
			Bio:         "A renowned author with years of experience in writing compelling stories.",
			Nationality: "International",
		})
	}
	return records
}

// Categories returns the fixed category pool as catalog records.
func Categories() []catalog.Category {
	records := make([]catalog.Category, 0, len(categories))
	for i, name := range categories {
		records = append(records, catalog.Category{
			ID:   fmt.Sprintf("category-%d", i+1),
			Name: name,
		})
	}
	return records
}
