package cmdroute

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json"
	"github.com/accordlib/accord/utils/json/option"
)

var fixtureOptions = discord.CommandInteractionOptions{
	{
		Name:  "count",
		Type:  discord.NumberOptionType,
		Value: json.Raw("3"),
	},
	{
		Name:  "reason",
		Type:  discord.StringOptionType,
		Value: json.Raw(`"spam"`),
	},
}

func mockEvent(data discord.InteractionData) *discord.InteractionEvent {
	return &discord.InteractionEvent{
		ID:        10,
		AppID:     20,
		ChannelID: 30,
		Token:     "fixture token",
		Data:      data,
	}
}

// expectOptions returns a handler that fails the test unless it is invoked
// with exactly the given options.
func expectOptions(t *testing.T, opts discord.CommandInteractionOptions) CommandHandler {
	return CommandHandlerFunc(func(ctx context.Context, data CommandData) *api.InteractionResponseData {
		require.Len(t, data.Options, len(opts))
		for i, opt := range opts {
			assert.Equal(t, opt.Name, data.Options[i].Name)
			assert.Equal(t, string(opt.Value), string(data.Options[i].Value))
		}
		return nil
	})
}

func TestRouterCommand(t *testing.T) {
	r := NewRouter()
	r.Add("prune", expectOptions(t, fixtureOptions))
	r.HandleInteraction(mockEvent(&discord.CommandInteraction{
		ID:      1,
		Name:    "prune",
		Options: fixtureOptions,
	}))
}

func TestRouterSubcommand(t *testing.T) {
	r := NewRouter()
	r.Sub("config", func(r *Router) {
		r.Add("set", expectOptions(t, fixtureOptions))
	})
	r.HandleInteraction(mockEvent(&discord.CommandInteraction{
		ID:   1,
		Name: "config",
		Options: discord.CommandInteractionOptions{
			{
				Name:    "set",
				Type:    discord.SubcommandOptionType,
				Options: fixtureOptions,
			},
		},
	}))
}

func TestRouterUnknownCommand(t *testing.T) {
	r := NewRouter()
	r.AddFunc("known", func(ctx context.Context, data CommandData) *api.InteractionResponseData {
		t.Fatal("handler called for unknown command")
		return nil
	})

	resp := r.HandleInteraction(mockEvent(&discord.CommandInteraction{
		ID:   1,
		Name: "unheard-of",
	}))
	assert.Nil(t, resp)
}

func TestRouterResponse(t *testing.T) {
	data := &api.InteractionResponseData{
		Content: option.NewNullableString("pong"),
	}

	r := NewRouter()
	r.AddFunc("ping", func(context.Context, CommandData) *api.InteractionResponseData {
		return data
	})

	resp := r.HandleInteraction(mockEvent(&discord.CommandInteraction{
		ID:   1,
		Name: "ping",
	}))
	require.NotNil(t, resp)
	assert.Equal(t, api.MessageInteractionWithSource, resp.Type)
	assert.Same(t, data, resp.Data)
}

func TestRouterAutocomplete(t *testing.T) {
	known := []string{"apple", "apricot", "banana"}

	r := NewRouter()
	r.AddFunc("fruit", func(context.Context, CommandData) *api.InteractionResponseData {
		return nil
	})
	r.AddAutocompleterFunc("fruit", func(_ context.Context, comp AutocompleteData) api.AutocompleteChoices {
		var data struct {
			Name string `discord:"name"`
		}
		require.NoError(t, comp.Options.Unmarshal(&data))
		require.Equal(t, "name", comp.Options.Focused().Name)

		choices := api.AutocompleteStringChoices{}
		for _, fruit := range known {
			if strings.HasPrefix(fruit, data.Name) {
				choices = append(choices, discord.StringChoice{
					Name:  strings.ToUpper(fruit[:1]) + fruit[1:],
					Value: fruit,
				})
			}
		}
		return choices
	})

	resp := r.HandleInteraction(mockEvent(&discord.AutocompleteInteraction{
		Name:        "fruit",
		CommandType: discord.ChatInputCommand,
		Options: discord.AutocompleteOptions{
			{
				Type:    discord.StringOptionType,
				Name:    "name",
				Value:   json.Raw(`"ap"`),
				Focused: true,
			},
		},
	}))

	assert.Equal(t, &api.InteractionResponse{
		Type: api.AutocompleteResult,
		Data: &api.InteractionResponseData{
			Choices: api.AutocompleteStringChoices{
				{Name: "Apple", Value: "apple"},
				{Name: "Apricot", Value: "apricot"},
			},
		},
	}, resp)
}

func TestRouterComponent(t *testing.T) {
	r := NewRouter()
	r.AddComponentFunc("confirm", func(ctx context.Context, data ComponentData) *api.InteractionResponse {
		button, ok := data.ComponentInteraction.(*discord.ButtonInteraction)
		require.True(t, ok, "expected *ButtonInteraction, got %T", data.ComponentInteraction)

		return &api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Content: option.NewNullableString(string(button.CustomID)),
			},
		}
	})

	resp := r.HandleInteraction(mockEvent(&discord.ButtonInteraction{
		CustomID: "confirm",
	}))
	assert.Equal(t, &api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString("confirm"),
		},
	}, resp)
}

func TestRouterMiddlewareOrder(t *testing.T) {
	var order []string
	record := func(name string) Middleware {
		return func(next InteractionHandler) InteractionHandler {
			return InteractionHandlerFunc(func(ctx context.Context, ev *discord.InteractionEvent) *api.InteractionResponse {
				order = append(order, name)
				return next.HandleInteraction(ctx, ev)
			})
		}
	}

	r := NewRouter()
	r.Use(record("root"))
	r.Sub("outer", func(r *Router) {
		r.Use(record("outer"))
		r.Sub("inner", func(r *Router) {
			r.Use(record("inner"))
			r.Add("leaf", expectOptions(t, fixtureOptions))
		})
	})

	r.HandleInteraction(mockEvent(&discord.CommandInteraction{
		ID:   1,
		Name: "outer",
		Options: discord.CommandInteractionOptions{
			{
				Name: "inner",
				Type: discord.SubcommandGroupOptionType,
				Options: discord.CommandInteractionOptions{
					{
						Name:    "leaf",
						Type:    discord.SubcommandOptionType,
						Options: fixtureOptions,
					},
				},
			},
		},
	}))

	assert.Equal(t, []string{"root", "outer", "inner"}, order)
}

// followupRecorder fakes the follow-up API call that Deferrable makes once a
// handler overruns its deferral timeout.
type followupRecorder struct {
	t      *testing.T
	expect []api.InteractionResponseData
}

func (f *followupRecorder) CreateInteractionFollowup(
	appID discord.AppID, token string, d api.InteractionResponseData) (*discord.Message, error) {

	require.NotEmpty(f.t, f.expect, "unexpected follow-up call")
	want := f.expect[0]
	f.expect = f.expect[1:]

	assert.Equal(f.t, discord.AppID(20), appID)
	assert.Equal(f.t, "fixture token", token)
	assert.Equal(f.t, want, d)

	return &discord.Message{}, nil
}

func TestRouterDeferred(t *testing.T) {
	var wg sync.WaitGroup

	client := &followupRecorder{
		t: t,
		expect: []api.InteractionResponseData{
			{
				Content: option.NewNullableString("slow pong"),
				Flags:   discord.EphemeralMessage,
			},
		},
	}

	requireDeferred := func(t *testing.T, ctx context.Context, deferred bool) {
		t.Helper()
		ticket := DeferTicketFromContext(ctx)
		assert.NotEqual(t, context.Background(), ticket.Context(), "missing defer ticket")
		assert.Equal(t, deferred, ticket.IsDeferred())
	}

	r := NewRouter()
	r.Use(Deferrable(client, DeferOpts{
		Timeout: 100 * time.Millisecond,
		Flags:   discord.EphemeralMessage,
		Error:   func(err error) { t.Error(err) },
		Done:    func(*discord.Message) { wg.Done() },
	}))
	r.AddFunc("fast", func(ctx context.Context, data CommandData) *api.InteractionResponseData {
		requireDeferred(t, ctx, false)
		return &api.InteractionResponseData{
			Content: option.NewNullableString("pong"),
		}
	})
	r.AddFunc("slow", func(ctx context.Context, data CommandData) *api.InteractionResponseData {
		requireDeferred(t, ctx, false)
		time.Sleep(200 * time.Millisecond)
		requireDeferred(t, ctx, true)
		return &api.InteractionResponseData{
			Content: option.NewNullableString("slow pong"),
		}
	})

	assert.Equal(t, &api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString("pong"),
			Flags:   discord.EphemeralMessage,
		},
	}, r.HandleInteraction(mockEvent(&discord.CommandInteraction{
		ID:   1,
		Name: "fast",
	})))

	wg.Add(1)
	assert.Equal(t, &api.InteractionResponse{
		Type: api.DeferredMessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags: discord.EphemeralMessage,
		},
	}, r.HandleInteraction(mockEvent(&discord.CommandInteraction{
		ID:   1,
		Name: "slow",
	})))
	wg.Wait()
}
