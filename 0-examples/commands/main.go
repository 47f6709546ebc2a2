package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/api/cmdroute"
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/session"
	"github.com/accordlib/accord/utils/json/option"
)

var commands = []api.CreateCommandData{
	{
		Name:        "ping",
		Description: "ping pong!",
	},
	{
		Name:        "echo",
		Description: "echo back the argument",
		Options: discord.CommandOptions{
			&discord.StringOption{
				OptionName:  "argument",
				Description: "what's echoed back",
				Required:    true,
			},
		},
	},
}

func main() {
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatalln("no $BOT_TOKEN given")
	}

	s := session.NewWithIntents("Bot "+token, gateway.IntentGuilds)

	r := cmdroute.NewRouter()
	// Automatically defer handles if they're slow.
	r.Use(cmdroute.Deferrable(s.Client, cmdroute.DeferOpts{}))
	r.AddFunc("ping", func(ctx context.Context, data cmdroute.CommandData) *api.InteractionResponseData {
		return &api.InteractionResponseData{
			Content: option.NewNullableString("Pong!"),
		}
	})
	r.AddFunc("echo", func(ctx context.Context, data cmdroute.CommandData) *api.InteractionResponseData {
		var options struct {
			Argument string `discord:"argument"`
		}
		if err := data.Options.Unmarshal(&options); err != nil {
			return &api.InteractionResponseData{
				Content: option.NewNullableString("error: " + err.Error()),
			}
		}

		return &api.InteractionResponseData{
			Content:         option.NewNullableString(options.Argument),
			AllowedMentions: &api.AllowedMentions{}, // don't mention anyone
		}
	})

	s.AddHandler(func(ev *gateway.InteractionCreateEvent) {
		if resp := r.HandleInteraction(&ev.InteractionEvent); resp != nil {
			if err := s.RespondInteraction(ev.ID, ev.Token, *resp); err != nil {
				log.Println("cannot respond:", err)
			}
		}
	})

	if err := cmdroute.OverwriteCommands(s.Client, commands); err != nil {
		log.Fatalln("cannot update commands:", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := s.Connect(ctx); err != nil && ctx.Err() == nil {
		log.Fatalln("cannot connect:", err)
	}
}
