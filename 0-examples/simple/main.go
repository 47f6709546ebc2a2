package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/session"
)

// To run, do `BOT_TOKEN="TOKEN HERE" go run .`

func main() {
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatalln("no $BOT_TOKEN given")
	}

	s := session.NewWithIntents("Bot "+token, gateway.IntentGuilds, gateway.IntentGuildMessages)

	s.AddHandler(func(c *gateway.MessageCreateEvent) {
		log.Println(c.Author.Username, "sent", c.Content)
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := s.Open(ctx); err != nil {
		log.Fatalln("cannot open session:", err)
	}
	defer s.Close()

	u, err := s.Me()
	if err != nil {
		log.Fatalln("cannot get myself:", err)
	}

	log.Println("started as", u.Username)

	if err := s.Wait(ctx); err != nil && ctx.Err() == nil {
		log.Fatalln("gateway error:", err)
	}
}
