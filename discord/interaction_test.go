package discord

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/utils/json"
)

func TestInteractionEventUnmarshal(t *testing.T) {
	t.Run("command", func(t *testing.T) {
		const payload = `{
			"id": "1",
			"application_id": "2",
			"type": 2,
			"token": "t",
			"version": 1,
			"guild_id": "3",
			"member": {"user": {"id": "4", "username": "user"}},
			"data": {
				"id": "5",
				"name": "ban",
				"options": [
					{"type": 6, "name": "target", "value": "4"},
					{"type": 3, "name": "reason", "value": "spam"}
				]
			}
		}`

		var ev InteractionEvent
		require.NoError(t, json.Unmarshal([]byte(payload), &ev))

		data, ok := ev.Data.(*CommandInteraction)
		require.True(t, ok, "expected *CommandInteraction, got %T", ev.Data)
		assert.Equal(t, "ban", data.Name)
		assert.Equal(t, CommandID(5), data.ID)

		sender := ev.Sender()
		require.NotNil(t, sender)
		assert.Equal(t, UserID(4), sender.ID)
		assert.Equal(t, UserID(4), ev.SenderID())
	})

	t.Run("ping", func(t *testing.T) {
		var ev InteractionEvent
		require.NoError(t, json.Unmarshal([]byte(`{"id": "1", "type": 1, "token": "t"}`), &ev))

		_, ok := ev.Data.(*PingInteraction)
		require.True(t, ok, "expected *PingInteraction, got %T", ev.Data)
		assert.Nil(t, ev.Sender())
		assert.Equal(t, UserID(0), ev.SenderID())
	})

	t.Run("button", func(t *testing.T) {
		const payload = `{
			"id": "1",
			"type": 3,
			"token": "t",
			"user": {"id": "4", "username": "user"},
			"data": {"component_type": 2, "custom_id": "accept"}
		}`

		var ev InteractionEvent
		require.NoError(t, json.Unmarshal([]byte(payload), &ev))

		data, ok := ev.Data.(*ButtonInteraction)
		require.True(t, ok, "expected *ButtonInteraction, got %T", ev.Data)
		assert.Equal(t, ComponentID("accept"), data.CustomID)
	})

	t.Run("select", func(t *testing.T) {
		const payload = `{
			"id": "1",
			"type": 3,
			"token": "t",
			"data": {"component_type": 3, "custom_id": "colors", "values": ["red", "blue"]}
		}`

		var ev InteractionEvent
		require.NoError(t, json.Unmarshal([]byte(payload), &ev))

		data, ok := ev.Data.(*SelectInteraction)
		require.True(t, ok, "expected *SelectInteraction, got %T", ev.Data)
		assert.Equal(t, []string{"red", "blue"}, data.Values)
	})

	t.Run("autocomplete", func(t *testing.T) {
		const payload = `{
			"id": "1",
			"type": 4,
			"token": "t",
			"data": {
				"id": "5",
				"name": "tag",
				"options": [
					{
						"type": 1,
						"name": "search",
						"options": [
							{"type": 3, "name": "query", "value": "go", "focused": true}
						]
					}
				]
			}
		}`

		var ev InteractionEvent
		require.NoError(t, json.Unmarshal([]byte(payload), &ev))

		data, ok := ev.Data.(*AutocompleteInteraction)
		require.True(t, ok, "expected *AutocompleteInteraction, got %T", ev.Data)

		sub := data.Options.Find("search")
		assert.Equal(t, "query", sub.Options.Focused().Name)

		var opts struct {
			Query string `discord:"query"`
		}
		require.NoError(t, sub.Options.Unmarshal(&opts))
		assert.Equal(t, "go", opts.Query)
	})

	t.Run("modal", func(t *testing.T) {
		const payload = `{
			"id": "1",
			"type": 5,
			"token": "t",
			"data": {
				"custom_id": "form",
				"components": [
					{"type": 1, "components": [{"type": 4, "custom_id": "name", "style": 1, "value": "hello"}]}
				]
			}
		}`

		var ev InteractionEvent
		require.NoError(t, json.Unmarshal([]byte(payload), &ev))

		data, ok := ev.Data.(*ModalInteraction)
		require.True(t, ok, "expected *ModalInteraction, got %T", ev.Data)
		assert.Equal(t, ComponentID("form"), data.CustomID)

		input, ok := data.Components.Find("name").(*TextInputComponent)
		require.True(t, ok)
		assert.Equal(t, "hello", input.Value)
	})

	t.Run("unknown", func(t *testing.T) {
		var ev InteractionEvent
		require.NoError(t, json.Unmarshal([]byte(`{"id": "1", "type": 99, "token": "t", "data": {"a": 1}}`), &ev))

		data, ok := ev.Data.(*UnknownInteractionData)
		require.True(t, ok, "expected *UnknownInteractionData, got %T", ev.Data)
		assert.Equal(t, InteractionDataType(99), data.InteractionType())
	})
}

func TestCommandInteractionOptionsUnmarshal(t *testing.T) {
	options := CommandInteractionOptions{
		{Type: UserOptionType, Name: "target", Value: json.Raw(`"4"`)},
		{Type: StringOptionType, Name: "reason", Value: json.Raw(`"spam"`)},
		{Type: IntegerOptionType, Name: "days", Value: json.Raw(`7`)},
		{Type: NumberOptionType, Name: "score", Value: json.Raw(`0.5`)},
		{Type: BooleanOptionType, Name: "silent", Value: json.Raw(`true`)},
	}

	var dst struct {
		Target UserID   `discord:"target"`
		Reason string   `discord:"reason"`
		Days   int      `discord:"days"`
		Score  float64  `discord:"score"`
		Silent bool     `discord:"silent"`
		Extra  *string  `discord:"extra"`
		Maybe  string   `discord:"maybe?"`
	}

	require.NoError(t, options.Unmarshal(&dst))
	assert.Equal(t, UserID(4), dst.Target)
	assert.Equal(t, "spam", dst.Reason)
	assert.Equal(t, 7, dst.Days)
	assert.Equal(t, 0.5, dst.Score)
	assert.True(t, dst.Silent)
	assert.Nil(t, dst.Extra)
	assert.Empty(t, dst.Maybe)
}

func TestCommandInteractionOptionsUnmarshalMissing(t *testing.T) {
	options := CommandInteractionOptions{}

	var dst struct {
		Reason string `discord:"reason"`
	}

	require.Error(t, options.Unmarshal(&dst))
}

func TestInteractionEventRoundTrip(t *testing.T) {
	events := []InteractionEvent{
		{
			ID:    1,
			AppID: 2,
			Token: "token",
			Data:  &PingInteraction{},
		},
		{
			ID:        3,
			AppID:     4,
			ChannelID: 5,
			Token:     "token",
			Data:      &ButtonInteraction{CustomID: "accept"},
		},
		{
			ID:    6,
			AppID: 7,
			Token: "token",
			Data: &CommandInteraction{
				ID:   8,
				Name: "ping",
			},
		},
	}

	for _, ev := range events {
		b, err := json.Marshal(&ev)
		require.NoError(t, err)

		var got InteractionEvent
		require.NoError(t, json.Unmarshal(b, &got))

		if !assert.Equal(t, ev.Data.InteractionType(), got.Data.InteractionType()) {
			t.Log("marshaled event:", string(b))
			t.Log("unmarshaled back:", spew.Sdump(got))
		}
	}
}
