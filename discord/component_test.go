package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/utils/json"
)

func TestComponentMarshal(t *testing.T) {
	components := Components(
		&ButtonComponent{
			Style:    DangerButtonStyle,
			Label:    "Delete",
			CustomID: "delete",
		},
		&SelectComponent{
			CustomID:    "colors",
			Placeholder: "Pick a color",
			ValueLimits: [2]int{1, 3},
			Options: []SelectOption{
				{Label: "Red", Value: "red"},
				{Label: "Green", Value: "green"},
				{Label: "Blue", Value: "blue"},
			},
		},
	)

	b, err := json.Marshal(components)
	require.NoError(t, err)

	const expect = `[` +
		`{"type":1,"components":[{"type":2,"style":4,"custom_id":"delete","label":"Delete"}]},` +
		`{"type":1,"components":[{"type":3,"options":[` +
		`{"label":"Red","value":"red"},` +
		`{"label":"Green","value":"green"},` +
		`{"label":"Blue","value":"blue"}],` +
		`"custom_id":"colors","placeholder":"Pick a color","min_values":1,"max_values":3}]}` +
		`]`

	assert.JSONEq(t, expect, string(b))
}

func TestComponentUnmarshal(t *testing.T) {
	const payload = `[
		{
			"type": 1,
			"components": [
				{"type": 2, "style": 1, "label": "Accept", "custom_id": "accept"},
				{"type": 3, "custom_id": "menu", "options": [{"label": "A", "value": "a"}]},
				{"type": 99, "custom_id": "future"}
			]
		}
	]`

	var components ContainerComponents
	require.NoError(t, json.Unmarshal([]byte(payload), &components))
	require.Len(t, components, 1)

	row, ok := components[0].(*ActionRowComponent)
	require.True(t, ok, "expected *ActionRowComponent, got %T", components[0])
	require.Len(t, *row, 3)

	button, ok := (*row)[0].(*ButtonComponent)
	require.True(t, ok, "expected *ButtonComponent, got %T", (*row)[0])
	assert.Equal(t, PrimaryButtonStyle, button.Style)
	assert.Equal(t, ComponentID("accept"), button.CustomID)

	sel, ok := (*row)[1].(*SelectComponent)
	require.True(t, ok, "expected *SelectComponent, got %T", (*row)[1])
	assert.Equal(t, ComponentID("menu"), sel.CustomID)
	require.Len(t, sel.Options, 1)

	unknown, ok := (*row)[2].(*UnknownComponent)
	require.True(t, ok, "expected *UnknownComponent, got %T", (*row)[2])
	assert.Equal(t, ComponentType(99), unknown.Type())
	assert.NotEmpty(t, []byte(unknown.Raw))
}

func TestContainerComponentsFind(t *testing.T) {
	components := Components(
		&ButtonComponent{CustomID: "one", Style: PrimaryButtonStyle},
		&ButtonComponent{CustomID: "two", Style: SecondaryButtonStyle},
	)

	found := components.Find("two")
	require.NotNil(t, found)

	button, ok := found.(*ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, SecondaryButtonStyle, button.Style)

	assert.Nil(t, components.Find("three"))
}

func TestTextInputMarshal(t *testing.T) {
	input := TextInputComponent{
		CustomID:     "name",
		Style:        TextInputShortStyle,
		Label:        "Name",
		Required:     true,
		LengthLimits: [2]int{1, 32},
	}

	b, err := json.Marshal(input)
	require.NoError(t, err)

	const expect = `{
		"type": 4,
		"custom_id": "name",
		"style": 1,
		"label": "Name",
		"required": true,
		"min_length": 1,
		"max_length": 32
	}`

	assert.JSONEq(t, expect, string(b))
}
