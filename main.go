package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/EmpoweredVote/mdb-finder/internal/db"
	"github.com/EmpoweredVote/mdb-finder/internal/finder"
	"github.com/EmpoweredVote/mdb-finder/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	svc := finder.Init()

	var recorder finder.Recorder
	if os.Getenv("LOOKUP_LOG") == "1" && os.Getenv("DATABASE_URL") != "" {
		db.Connect()
		ll, err := finder.NewLookupLog(db.DB)
		if err != nil {
			log.Fatal("Failed to set up lookup log: ", err)
		}
		recorder = ll
	}

	limiter := middleware.RateLimiterFromEnv()

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(middleware.OriginsFromEnv()...))
	r.Get("/", RootHandler)
	r.Get("/health", finder.Health)

	r.With(middleware.RateLimit(limiter)).Mount("/api", finder.SetupRoutes(finder.NewHandler(svc, recorder)))

	fmt.Printf("Server listening on port :%s...\n", port)

	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, r))
}
