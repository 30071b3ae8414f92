package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nnema05/music-convertor-website/handlers"
	"github.com/nnema05/music-convertor-website/utils"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			logrus.Println("No .env file found, continuing..")
		}
	}
	logrus.Println("environment:", os.Getenv("APP_ENV"))

	// Build the DSN
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)

	// Initialize the database connection pool
	dbPool, err := utils.OpenDB(dsn)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		logrus.Fatal("SESSION_SECRET must be set")
	}

	// Sessions live in-process unless a Redis URL is configured.
	var store utils.SessionStore
	if redisDSN := os.Getenv("REDIS_URL"); redisDSN != "" {
		redisClient := utils.OpenRedisPool(redisDSN)
		defer redisClient.Close()
		store = utils.NewRedisStore(redisClient)
		logrus.Println("session store: redis")
	} else {
		store = utils.NewMemoryStore()
		logrus.Println("session store: in-memory")
	}

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	// File server for static files
	fileServer := http.FileServer(http.Dir("./ui/static/"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Public routes: reachable without a session.
	public := map[string]http.HandlerFunc{
		"/": handlers.Landing,
		"/login": func(w http.ResponseWriter, r *http.Request) {
			handlers.Login(w, r, dbPool, store, secret)
		},
		"/register": func(w http.ResponseWriter, r *http.Request) {
			handlers.Register(w, r, dbPool)
		},
		"/logout": func(w http.ResponseWriter, r *http.Request) {
			handlers.Logout(w, r, store, secret)
		},
	}

	// Gated routes: without a session these redirect to /login.
	gated := map[string]http.HandlerFunc{
		"/discover": handlers.Discover,
	}

	for pattern, handler := range public {
		mux.HandleFunc(pattern, handler)
	}
	for pattern, handler := range gated {
		mux.HandleFunc(pattern, handlers.RequireSession(store, secret, handler))
	}

	// Profile does its own session check and answers 401 rather than
	// redirecting, so it is registered outside the gate.
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		handlers.Profile(w, r, store, secret)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	logrus.Printf("Starting server on :%s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, mux))
}
