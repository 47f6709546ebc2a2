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

func main() {
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatalln("no $BOT_TOKEN given")
	}

	s := session.NewWithIntents("Bot "+token, gateway.IntentGuilds)

	r := cmdroute.NewRouter()
	r.AddFunc("buttons", func(ctx context.Context, data cmdroute.CommandData) *api.InteractionResponseData {
		return &api.InteractionResponseData{
			Content: option.NewNullableString("This is a message with a button!"),
			Components: &discord.ContainerComponents{
				&discord.ActionRowComponent{
					&discord.ButtonComponent{
						Label:    "Hello World!",
						CustomID: "first_button",
						Emoji:    &discord.ComponentEmoji{Name: "👋"},
						Style:    discord.PrimaryButtonStyle,
					},
					&discord.ButtonComponent{
						Label:    "Secondary",
						CustomID: "second_button",
						Style:    discord.SecondaryButtonStyle,
					},
				},
			},
		}
	})

	buttonPressed := func(content string) cmdroute.ComponentHandlerFunc {
		return func(ctx context.Context, data cmdroute.ComponentData) *api.InteractionResponse {
			return &api.InteractionResponse{
				Type: api.UpdateMessage,
				Data: &api.InteractionResponseData{
					Content: option.NewNullableString(content),
				},
			}
		}
	}

	r.AddComponentFunc("first_button", buttonPressed("You pressed the first button!"))
	r.AddComponentFunc("second_button", buttonPressed("You pressed the second button!"))

	s.AddHandler(func(ev *gateway.InteractionCreateEvent) {
		if resp := r.HandleInteraction(&ev.InteractionEvent); resp != nil {
			if err := s.RespondInteraction(ev.ID, ev.Token, *resp); err != nil {
				log.Println("cannot respond:", err)
			}
		}
	})

	err := cmdroute.OverwriteCommands(s.Client, []api.CreateCommandData{
		{
			Name:        "buttons",
			Description: "send a message with buttons",
		},
	})
	if err != nil {
		log.Fatalln("cannot update commands:", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := s.Connect(ctx); err != nil && ctx.Err() == nil {
		log.Fatalln("cannot connect:", err)
	}
}
