// cmd/mockapi/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"libraryfront/internal/mockapi"
)

func main() {
	store := mockapi.NewStore()
	store.Seed()

	server, err := mockapi.NewServer(store, []byte(getEnv("MOCKAPI_SECRET", "libraryfront-dev-secret")))
	if err != nil {
		log.Fatalf("failed to initialize mock API: %v", err)
	}

	port := getEnv("PORT", "8095")
	log.Printf("mock library API listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, server.Router()))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
