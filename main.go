package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/auth"
	"github.com/YassineAssim23/eFantasyREPO/controller"
	"github.com/YassineAssim23/eFantasyREPO/db"
	"github.com/YassineAssim23/eFantasyREPO/prostore"
	"github.com/YassineAssim23/eFantasyREPO/statsfeed"
	"github.com/YassineAssim23/eFantasyREPO/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")
	mongoURI := os.Getenv("MONGODB_URI")
	mongoDatabase := os.Getenv("MONGODB_DATABASE")
	mongoCollection := os.Getenv("MONGODB_PRO_PLAYER_COLLECTION")
	jwtSecret := os.Getenv("JWT_SECRET")
	feedURL := os.Getenv("STATS_FEED_URL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	pros, err := prostore.New(context.Background(), mongoURI, mongoDatabase, mongoCollection, clock)
	if err != nil {
		log.Fatalf("cannot connect to pro player store: %v", err)
	}

	feed, err := statsfeed.New(feedURL)
	if err != nil {
		log.Fatalf("error creating stats feed client: %v", err)
	}

	tokens, err := auth.NewTokenManager(jwtSecret, clock)
	if err != nil {
		log.Fatalf("error creating token manager: %v", err)
	}

	ctrl, err := controller.New(clock, db, pros, feed, tokens)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, adminPassword, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes pro player stats from the feed every 24-hours
	wg.Add(1)
	go ctrl.RunPeriodicStatsUpdates(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
