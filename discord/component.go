package discord

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/utils/json"
)

// ComponentType is the type of a component.
//
// https://discord.com/developers/docs/interactions/message-components#component-object-component-types
type ComponentType uint

const (
	_ ComponentType = iota
	ActionRowComponentType
	ButtonComponentType
	SelectComponentType
	TextInputComponentType
)

// String formats Type's name as a string.
func (t ComponentType) String() string {
	switch t {
	case ActionRowComponentType:
		return "ActionRow"
	case ButtonComponentType:
		return "Button"
	case SelectComponentType:
		return "Select"
	case TextInputComponentType:
		return "TextInput"
	default:
		return fmt.Sprintf("ComponentType(%d)", int(t))
	}
}

// ComponentID is the type for a component's custom ID. It is NOT a snowflake,
// but rather a user-defined opaque string.
type ComponentID string

// Component is a component that can be attached to an interaction response.
//
// The following types satisfy this interface:
//
//   - *ActionRowComponent
//   - *ButtonComponent
//   - *SelectComponent
//   - *TextInputComponent
//   - *UnknownComponent
type Component interface {
	// Type returns the type of the underlying component.
	Type() ComponentType
	_cmp()
}

// InteractiveComponent extends the Component interface to describe components
// that are interactive, meaning components that aren't containers (like
// ActionRow). This is useful for ActionRow to type-check that no nested
// ActionRows are allowed.
//
// The following types satisfy this interface:
//
//   - *ButtonComponent
//   - *SelectComponent
//   - *TextInputComponent
//   - *UnknownComponent
type InteractiveComponent interface {
	Component
	// ID returns the ID of the underlying component.
	ID() ComponentID
	_icp()
}

// ContainerComponent is the opposite of InteractiveComponent: it describes
// components that only contain other components. The only component that
// satisfies that is ActionRow.
//
// The following types satisfy this interface:
//
//   - *ActionRowComponent
//   - *UnknownComponent
type ContainerComponent interface {
	Component
	_ctn()
}

// ContainerComponents is primarily used for unmarshaling. It is the top-level
// list of components in a message.
type ContainerComponents []ContainerComponent

// Components wraps the given list of components inside ActionRows if they
// aren't already in one. It is a convenient function for the common case of
// laying out a few interactive components.
func Components(components ...Component) ContainerComponents {
	new := make(ContainerComponents, len(components))

	for i, comp := range components {
		cc, ok := comp.(ContainerComponent)
		if !ok {
			cc = &ActionRowComponent{comp.(InteractiveComponent)}
		}

		new[i] = cc
	}

	return new
}

// UnmarshalJSON unmarshals JSON into the components. It does type-checking
// and guarantees that all ContainerComponents are successfully converted.
func (c *ContainerComponents) UnmarshalJSON(b []byte) error {
	var jsons []json.Raw
	if err := json.Unmarshal(b, &jsons); err != nil {
		return err
	}

	*c = make(ContainerComponents, len(jsons))

	for i, b := range jsons {
		p, err := ParseComponent(b)
		if err != nil {
			return err
		}

		cc, ok := p.(ContainerComponent)
		if !ok {
			return fmt.Errorf("expected container, got %T", p)
		}
		(*c)[i] = cc
	}

	return nil
}

// Find finds any component with the given custom ID inside the component
// tree. If no component is found, nil is returned.
func (c *ContainerComponents) Find(customID ComponentID) Component {
	for _, component := range *c {
		switch component := component.(type) {
		case *ActionRowComponent:
			if component := component.Find(customID); component != nil {
				return component
			}
		}
	}

	return nil
}

// ParseComponent parses the given bytes as a component. It uses the type
// field to determine the concrete type. Components of an unknown type are
// returned as *UnknownComponent.
func ParseComponent(b []byte) (Component, error) {
	var t struct {
		Type ComponentType
	}

	if err := json.Unmarshal(b, &t); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal component type")
	}

	var c Component

	switch t.Type {
	case ActionRowComponentType:
		c = &ActionRowComponent{}
	case ButtonComponentType:
		c = &ButtonComponent{}
	case SelectComponentType:
		c = &SelectComponent{}
	case TextInputComponentType:
		c = &TextInputComponent{}
	default:
		c = &UnknownComponent{typ: t.Type}
	}

	if err := json.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal component body")
	}

	return c, nil
}

// ActionRowComponent is a row of components at the bottom of a message. Its
// type, InteractiveComponent, ensures that only non-ActionRow components are
// allowed on it.
//
// https://discord.com/developers/docs/interactions/message-components#action-rows
type ActionRowComponent []InteractiveComponent

// Type implements the Component interface.
func (a *ActionRowComponent) Type() ComponentType {
	return ActionRowComponentType
}

func (a *ActionRowComponent) _cmp() {}
func (a *ActionRowComponent) _ctn() {}

// Find finds any component with the given custom ID inside the action row. If
// no component is found, nil is returned.
func (a *ActionRowComponent) Find(customID ComponentID) Component {
	for _, component := range *a {
		if component.ID() == customID {
			return component
		}
	}

	return nil
}

// MarshalJSON marshals the action row in the format the API expects.
func (a *ActionRowComponent) MarshalJSON() ([]byte, error) {
	var actionRow struct {
		Type       ComponentType           `json:"type"`
		Components *[]InteractiveComponent `json:"components"`
	}

	actionRow.Components = (*[]InteractiveComponent)(a)
	actionRow.Type = a.Type()

	return json.Marshal(actionRow)
}

// UnmarshalJSON unmarshals JSON into the action row. It does type-checking
// and guarantees that all components are InteractiveComponents.
func (a *ActionRowComponent) UnmarshalJSON(b []byte) error {
	var row struct {
		Components []json.Raw `json:"components"`
	}

	if err := json.Unmarshal(b, &row); err != nil {
		return err
	}

	*a = make(ActionRowComponent, len(row.Components))

	for i, b := range row.Components {
		p, err := ParseComponent(b)
		if err != nil {
			return errors.Wrapf(err, "failed to parse component %d", i)
		}

		ic, ok := p.(InteractiveComponent)
		if !ok {
			return fmt.Errorf("expected interactive, got %T", p)
		}
		(*a)[i] = ic
	}

	return nil
}

// ComponentEmoji is the emoji displayed on the button before the text. For
// more information, see Emoji.
type ComponentEmoji struct {
	ID       EmojiID `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Animated bool    `json:"animated,omitempty"`
}

// ButtonComponentStyle is the style to display a button in.
//
// https://discord.com/developers/docs/interactions/message-components#button-object-button-styles
type ButtonComponentStyle uint

const (
	_ ButtonComponentStyle = iota
	// PrimaryButtonStyle is a blurple button.
	PrimaryButtonStyle
	// SecondaryButtonStyle is a grey button.
	SecondaryButtonStyle
	// SuccessButtonStyle is a green button.
	SuccessButtonStyle
	// DangerButtonStyle is a red button.
	DangerButtonStyle
	// LinkButtonStyle is a grey button that navigates to a URL.
	LinkButtonStyle
)

// ButtonComponent is a clickable button that may be added to an interaction
// response.
//
// https://discord.com/developers/docs/interactions/message-components#button-object
type ButtonComponent struct {
	// Style is one of the button styles.
	Style ButtonComponentStyle `json:"style"`
	// CustomID attached to InteractionCreateEvent when clicked.
	CustomID ComponentID `json:"custom_id,omitempty"`
	// Label is the text that appears on the button. It can have a maximum of
	// 100 characters.
	Label string `json:"label,omitempty"`
	// Emoji should have Name, ID and Animated filled.
	Emoji *ComponentEmoji `json:"emoji,omitempty"`
	// URL is the URL for LinkButtonStyle buttons. A LinkButtonStyle button
	// must not have a CustomID and does not send an interaction.
	URL URL `json:"url,omitempty"`
	// Disabled determines whether the button is disabled.
	Disabled bool `json:"disabled,omitempty"`
}

// TextButtonComponent creates a new button with the given label used for the
// label and the custom ID.
func TextButtonComponent(style ButtonComponentStyle, label string) *ButtonComponent {
	return &ButtonComponent{
		Style:    style,
		Label:    label,
		CustomID: ComponentID(label),
	}
}

// ID implements the InteractiveComponent interface.
func (b *ButtonComponent) ID() ComponentID {
	return b.CustomID
}

// Type implements the Component interface.
func (b *ButtonComponent) Type() ComponentType {
	return ButtonComponentType
}

func (b *ButtonComponent) _cmp() {}
func (b *ButtonComponent) _icp() {}

// MarshalJSON marshals the button in the format the API expects.
func (b ButtonComponent) MarshalJSON() ([]byte, error) {
	if b.Style == 0 {
		b.Style = PrimaryButtonStyle
	}

	type button ButtonComponent

	msg := struct {
		Type ComponentType `json:"type"`
		button
	}{
		Type:   ButtonComponentType,
		button: button(b),
	}

	return json.Marshal(msg)
}

// SelectComponent is a dropdown menu that may be added to an interaction
// response.
//
// https://discord.com/developers/docs/interactions/message-components#select-menu-object
type SelectComponent struct {
	// Options are the choices in the select.
	Options []SelectOption `json:"options"`
	// CustomID is the custom unique ID.
	CustomID ComponentID `json:"custom_id,omitempty"`
	// Placeholder is the custom placeholder text if nothing is selected. It
	// can have a maximum of 100 characters.
	Placeholder string `json:"placeholder,omitempty"`
	// ValueLimits is the minimum and maximum number of items that can be
	// chosen. The default is [1, 1] if ValueLimits is a zero-value.
	ValueLimits [2]int `json:"-"`
	// Disabled disables the select if true.
	Disabled bool `json:"disabled,omitempty"`
}

// SelectOption is an option in the select component.
type SelectOption struct {
	// Label is the user-facing name of the option. It can have a maximum of
	// 100 characters.
	Label string `json:"label"`
	// Value is the internal value that is echoed back to the program. It's
	// similar to the custom ID. It can have a maximum of 100 characters.
	Value string `json:"value"`
	// Description is the additional description of an option.
	Description string `json:"description,omitempty"`
	// Emoji is the optional emoji object.
	Emoji *ComponentEmoji `json:"emoji,omitempty"`
	// Default will render this option as selected by default if true.
	Default bool `json:"default,omitempty"`
}

// ID implements the InteractiveComponent interface.
func (s *SelectComponent) ID() ComponentID {
	return s.CustomID
}

// Type implements the Component interface.
func (s *SelectComponent) Type() ComponentType {
	return SelectComponentType
}

func (s *SelectComponent) _cmp() {}
func (s *SelectComponent) _icp() {}

// MarshalJSON marshals the select in the format the API expects.
func (s SelectComponent) MarshalJSON() ([]byte, error) {
	type sel SelectComponent

	type Msg struct {
		Type ComponentType `json:"type"`
		sel
		MinValues *int `json:"min_values,omitempty"`
		MaxValues *int `json:"max_values,omitempty"`
	}

	msg := Msg{
		Type: SelectComponentType,
		sel:  sel(s),
	}

	if s.ValueLimits != [2]int{0, 0} {
		msg.MinValues = new(int)
		msg.MaxValues = new(int)

		*msg.MinValues = s.ValueLimits[0]
		*msg.MaxValues = s.ValueLimits[1]
	}

	return json.Marshal(msg)
}

// TextInputStyle is the style of a text input component.
type TextInputStyle uint

const (
	_ TextInputStyle = iota
	// TextInputShortStyle is a single-line input.
	TextInputShortStyle
	// TextInputParagraphStyle is a multi-line input.
	TextInputParagraphStyle
)

// TextInputComponent is a text input field, usable in modals.
//
// https://discord.com/developers/docs/interactions/message-components#text-inputs
type TextInputComponent struct {
	// CustomID identifies the input.
	CustomID ComponentID `json:"custom_id"`
	// Style is the style of the input.
	Style TextInputStyle `json:"style"`
	// Label is the label of the input.
	Label string `json:"label,omitempty"`
	// LengthLimits is the minimum and maximum length of the input. A
	// zero-value means no limit.
	LengthLimits [2]int `json:"-"`
	// Required specifies whether the input is required.
	Required bool `json:"required"`
	// Value is the value filled in. For modal responses, this is what the
	// user typed.
	Value string `json:"value,omitempty"`
	// Placeholder is the custom placeholder text if the input is empty.
	Placeholder string `json:"placeholder,omitempty"`
}

// ID implements the InteractiveComponent interface.
func (i *TextInputComponent) ID() ComponentID {
	return i.CustomID
}

// Type implements the Component interface.
func (i *TextInputComponent) Type() ComponentType {
	return TextInputComponentType
}

func (i *TextInputComponent) _cmp() {}
func (i *TextInputComponent) _icp() {}

// MarshalJSON marshals the text input in the format the API expects.
func (i TextInputComponent) MarshalJSON() ([]byte, error) {
	type text TextInputComponent

	type Msg struct {
		Type ComponentType `json:"type"`
		text
		MinLength *int `json:"min_length,omitempty"`
		MaxLength *int `json:"max_length,omitempty"`
	}

	msg := Msg{
		Type: TextInputComponentType,
		text: text(i),
	}

	if i.LengthLimits != [2]int{0, 0} {
		msg.MinLength = new(int)
		msg.MaxLength = new(int)

		*msg.MinLength = i.LengthLimits[0]
		*msg.MaxLength = i.LengthLimits[1]
	}

	return json.Marshal(msg)
}

// UnknownComponent is reserved for components of unknown or not yet
// implemented types. It satisfies the InteractiveComponent,
// ContainerComponent and ComponentInteraction interfaces.
type UnknownComponent struct {
	json.Raw
	id  ComponentID
	typ ComponentType
}

// ID implements the InteractiveComponent interface.
func (u *UnknownComponent) ID() ComponentID {
	return u.id
}

// Type implements the Component interface.
func (u *UnknownComponent) Type() ComponentType {
	return u.typ
}

// InteractionType implements InteractionData.
func (u *UnknownComponent) InteractionType() InteractionDataType {
	return ComponentInteractionType
}

func (u *UnknownComponent) _cmp() {}
func (u *UnknownComponent) _icp() {}
func (u *UnknownComponent) _ctn() {}
func (u *UnknownComponent) resp() {}
func (u *UnknownComponent) data() {}
