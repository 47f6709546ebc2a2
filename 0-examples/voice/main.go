package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/session"
	"github.com/accordlib/accord/voice"
	"github.com/accordlib/accord/voice/voicegateway"
)

// To run, do `BOT_TOKEN="TOKEN HERE" VOICE_ID="CHANNEL ID" go run .`
//
// This example only drives the signaling gateway; it joins the channel and
// toggles the speaking indicator without sending audio.

func main() {
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatalln("no $BOT_TOKEN given")
	}

	snowflake, err := discord.ParseSnowflake(os.Getenv("VOICE_ID"))
	if err != nil {
		log.Fatalln("invalid $VOICE_ID:", err)
	}
	channelID := discord.ChannelID(snowflake)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	s := session.NewWithIntents("Bot "+token, gateway.IntentGuilds, gateway.IntentGuildVoiceStates)

	if err := s.Open(ctx); err != nil {
		log.Fatalln("cannot open session:", err)
	}
	defer s.Close()

	ch, err := s.Channel(channelID)
	if err != nil {
		log.Fatalln("cannot get voice channel:", err)
	}

	v := voice.NewSession(s)
	v.AddHandler(func(speaking *voicegateway.SpeakingEvent) {
		log.Println("user", speaking.UserID, "is speaking with flag", speaking.Speaking)
	})

	if err := v.JoinChannel(ctx, ch.GuildID, ch.ID, false, true); err != nil {
		log.Fatalln("cannot join voice channel:", err)
	}
	defer v.Leave(ctx)

	if err := v.Speaking(ctx, voicegateway.Microphone); err != nil {
		log.Fatalln("cannot send speaking:", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
	}
}
