package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"

	"github.com/strahius/scopa"
	"github.com/strahius/scopa/config"
	"github.com/strahius/scopa/server"
	"github.com/strahius/scopa/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	var roomStore scopa.RoomStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("could not reach redis at %s: %s", cfg.RedisAddr, err.Error())
		}
		roomStore = store.NewRedisRoomStore(client)
		log.Printf("Using redis room store at %s", cfg.RedisAddr)
	} else {
		roomStore = store.NewInMemoryRoomStore()
		log.Println("Using in-memory room store")
	}

	s := server.NewServer(roomStore)

	log.Printf("Listening on %s...", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), handlers.LoggingHandler(os.Stdout, s)))
}
