package discord

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/internal/rfutil"
	"github.com/accordlib/accord/utils/json"
)

// InteractionEvent describes the full incoming interaction event. It may be
// a gateway event or a webhook event.
//
// https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object
type InteractionEvent struct {
	ID        InteractionID   `json:"id"`
	Data      InteractionData `json:"data"`
	AppID     AppID           `json:"application_id"`
	ChannelID ChannelID       `json:"channel_id,omitempty"`
	Token     string          `json:"token"`
	Version   int             `json:"version"`

	// Message is the message the component was attached to. It is only
	// present for component interactions, not command interactions.
	Message *Message `json:"message,omitempty"`

	// Member is only present if this came from a guild. To get a user, use
	// the Sender method.
	Member  *Member `json:"member,omitempty"`
	GuildID GuildID `json:"guild_id,omitempty"`

	// User is only present if this didn't come from a guild. To get a user,
	// use the Sender method.
	User *User `json:"user,omitempty"`

	// Locale is the selected language of the invoking user. It is present in
	// all interactions except ping interactions.
	Locale Language `json:"locale,omitempty"`
	// GuildLocale is the guild's preferred locale, if invoked in a guild.
	GuildLocale string `json:"guild_locale,omitempty"`
}

// Sender returns the sender of this event from either the Member field or
// the User field. If neither of those fields are available, nil is returned.
func (e *InteractionEvent) Sender() *User {
	if e.User != nil {
		return e.User
	}
	if e.Member != nil {
		return &e.Member.User
	}
	return nil
}

// SenderID returns the sender's ID, or 0 if Sender returns nil.
func (e *InteractionEvent) SenderID() UserID {
	if sender := e.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}

func (e *InteractionEvent) UnmarshalJSON(b []byte) error {
	type event InteractionEvent

	target := struct {
		Type InteractionDataType `json:"type"`
		Data json.Raw            `json:"data"`
		*event
	}{
		event: (*event)(e),
	}

	if err := json.Unmarshal(b, &target); err != nil {
		return err
	}

	switch target.Type {
	case PingInteractionType:
		// Ping isn't actually an object.
		e.Data = &PingInteraction{}
		return nil
	case CommandInteractionType:
		e.Data = &CommandInteraction{}
	case ComponentInteractionType:
		d, err := ParseComponentInteraction(target.Data)
		if err != nil {
			return errors.Wrap(err, "failed to unmarshal component interaction event data")
		}
		e.Data = d
		return nil
	case AutocompleteInteractionType:
		e.Data = &AutocompleteInteraction{}
	case ModalInteractionType:
		e.Data = &ModalInteraction{}
	default:
		e.Data = &UnknownInteractionData{
			Raw: target.Data,
			typ: target.Type,
		}
		return nil
	}

	if err := json.Unmarshal(target.Data, e.Data); err != nil {
		return errors.Wrap(err, "failed to unmarshal interaction event data")
	}

	return nil
}

func (e *InteractionEvent) MarshalJSON() ([]byte, error) {
	type event InteractionEvent

	if e.Data == nil {
		return nil, errors.New("missing InteractionEvent.Data")
	}
	if e.Data.InteractionType() == 0 {
		return nil, errors.New("unexpected 0 InteractionEvent.Data.Type")
	}

	v := struct {
		Type InteractionDataType `json:"type"`
		*event
	}{
		Type:  e.Data.InteractionType(),
		event: (*event)(e),
	}

	return json.Marshal(v)
}

// InteractionDataType is the type of each interaction, enumerated in
// integers.
//
// https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object-interaction-type
type InteractionDataType uint

const (
	PingInteractionType InteractionDataType = iota + 1
	CommandInteractionType
	ComponentInteractionType
	AutocompleteInteractionType
	ModalInteractionType
)

// InteractionData holds the data of an interaction, or more specifically,
// the payload that the API sends us. Type assertions should be made on it to
// access the underlying data.
//
// The following types implement this interface:
//
//   - *PingInteraction
//   - *AutocompleteInteraction
//   - *CommandInteraction
//   - *ModalInteraction
//   - *SelectInteraction (also ComponentInteraction)
//   - *ButtonInteraction (also ComponentInteraction)
type InteractionData interface {
	InteractionType() InteractionDataType
	data()
}

// PingInteraction is a ping interaction, only received over webhook
// endpoints.
type PingInteraction struct{}

// InteractionType implements InteractionData.
func (*PingInteraction) InteractionType() InteractionDataType { return PingInteractionType }
func (*PingInteraction) data()                                {}

// AutocompleteInteraction is sent when a user is filling in an autocompleted
// command option.
type AutocompleteInteraction struct {
	CommandID CommandID `json:"id"`

	// Name is the name of the command autocomplete is triggered for.
	Name        string              `json:"name"`
	CommandType CommandType         `json:"type"`
	Version     string              `json:"version"`
	Options     AutocompleteOptions `json:"options"`
}

// InteractionType implements InteractionData.
func (*AutocompleteInteraction) InteractionType() InteractionDataType {
	return AutocompleteInteractionType
}
func (*AutocompleteInteraction) data() {}

// AutocompleteOptions is a list of autocompletion options. Use Find to get
// a named option.
type AutocompleteOptions []AutocompleteOption

// Find returns the named autocomplete option.
func (o AutocompleteOptions) Find(name string) AutocompleteOption {
	for _, opt := range o {
		if strings.EqualFold(opt.Name, name) {
			return opt
		}
	}
	return AutocompleteOption{}
}

// Unmarshal unmarshals the options into the struct pointer v. Focused
// options are unmarshaled like regular ones. See the documentation on
// CommandInteractionOptions.Unmarshal for the conversion rules.
func (o AutocompleteOptions) Unmarshal(v interface{}) error {
	return o.commandOptions().Unmarshal(v)
}

func (o AutocompleteOptions) commandOptions() CommandInteractionOptions {
	opts := make(CommandInteractionOptions, len(o))
	for i, opt := range o {
		opts[i] = CommandInteractionOption{
			Type:    opt.Type,
			Name:    opt.Name,
			Value:   opt.Value,
			Options: opt.Options.commandOptions(),
		}
	}
	return opts
}

// Focused returns the option that the user is currently typing in, or a
// zero-value option if none is focused.
func (o AutocompleteOptions) Focused() AutocompleteOption {
	for _, opt := range o {
		if opt.Focused {
			return opt
		}
	}
	return AutocompleteOption{}
}

// AutocompleteOption is an option in an AutocompleteInteraction.
type AutocompleteOption struct {
	Type    CommandOptionType   `json:"type"`
	Name    string              `json:"name"`
	Value   json.Raw            `json:"value,omitempty"`
	Focused bool                `json:"focused,omitempty"`
	Options AutocompleteOptions `json:"options,omitempty"`
}

// String returns the value if the option's value is a valid string.
// Otherwise, it returns the raw JSON value of the other type.
func (o AutocompleteOption) String() string {
	var value string
	if err := json.Unmarshal(o.Value, &value); err != nil {
		return string(o.Value)
	}
	return value
}

// IntValue reads the option's value as an int.
func (o AutocompleteOption) IntValue() (int64, error) {
	var i int64
	err := o.Value.UnmarshalTo(&i)
	return i, err
}

// BoolValue reads the option's value as a bool.
func (o AutocompleteOption) BoolValue() (bool, error) {
	var b bool
	err := o.Value.UnmarshalTo(&b)
	return b, err
}

// SnowflakeValue reads the option's value as a snowflake.
func (o AutocompleteOption) SnowflakeValue() (Snowflake, error) {
	var id Snowflake
	err := o.Value.UnmarshalTo(&id)
	return id, err
}

// FloatValue reads the option's value as a float64.
func (o AutocompleteOption) FloatValue() (float64, error) {
	var f float64
	err := o.Value.UnmarshalTo(&f)
	return f, err
}

// ComponentInteraction is the union of component interaction data types.
//
// The following types implement this interface:
//
//   - *SelectInteraction
//   - *ButtonInteraction
//   - *UnknownComponent
type ComponentInteraction interface {
	InteractionData
	// ID returns the custom ID of the component in response. Not all
	// component interactions will have a component ID.
	ID() ComponentID
	// Type returns the type of the component in response.
	Type() ComponentType
	resp()
}

// SelectInteraction is the data of an interacted select component.
type SelectInteraction struct {
	CustomID ComponentID `json:"custom_id"`
	Values   []string    `json:"values"`
}

// ID implements ComponentInteraction.
func (s *SelectInteraction) ID() ComponentID { return s.CustomID }

// Type implements ComponentInteraction.
func (s *SelectInteraction) Type() ComponentType { return SelectComponentType }

// InteractionType implements InteractionData.
func (s *SelectInteraction) InteractionType() InteractionDataType {
	return ComponentInteractionType
}

func (s *SelectInteraction) resp() {}
func (s *SelectInteraction) data() {}

// ButtonInteraction is the data of a clicked button. It is the custom ID of
// the button within the component tree.
type ButtonInteraction struct {
	CustomID ComponentID `json:"custom_id"`
}

// ID implements ComponentInteraction.
func (b *ButtonInteraction) ID() ComponentID { return b.CustomID }

// Type implements ComponentInteraction.
func (b *ButtonInteraction) Type() ComponentType { return ButtonComponentType }

// InteractionType implements InteractionData.
func (b *ButtonInteraction) InteractionType() InteractionDataType {
	return ComponentInteractionType
}

func (b *ButtonInteraction) data() {}
func (b *ButtonInteraction) resp() {}

// ParseComponentInteraction parses the given bytes as component interaction
// data. It uses the component_type field to determine the concrete type.
// Unknown component types are returned as *UnknownComponent.
func ParseComponentInteraction(b []byte) (ComponentInteraction, error) {
	var t struct {
		Type     ComponentType `json:"component_type"`
		CustomID ComponentID   `json:"custom_id"`
	}

	if err := json.Unmarshal(b, &t); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal component interaction header")
	}

	var d ComponentInteraction

	switch t.Type {
	case ButtonComponentType:
		d = &ButtonInteraction{CustomID: t.CustomID}
	case SelectComponentType:
		d = &SelectInteraction{CustomID: t.CustomID}
	default:
		d = &UnknownComponent{
			Raw: append(json.Raw(nil), b...),
			id:  t.CustomID,
			typ: t.Type,
		}
		return d, nil
	}

	if err := json.Unmarshal(b, d); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal component interaction data")
	}

	return d, nil
}

// CommandInteraction is the data of an invoked application command.
type CommandInteraction struct {
	ID      CommandID                 `json:"id"`
	Name    string                    `json:"name"`
	Options CommandInteractionOptions `json:"options,omitempty"`
	// GuildID is the id of the guild the command is registered to.
	GuildID GuildID `json:"guild_id,omitempty"`
	// TargetID is the id of the user or message targeted by a user or
	// message command. See also TargetUserID and TargetMessageID.
	TargetID Snowflake `json:"target_id,omitempty"`
	// Resolved contains the full objects for the IDs referenced in the
	// options.
	Resolved struct {
		// Users contains user objects.
		Users map[UserID]User `json:"users,omitempty"`
		// Members contains partial member objects, missing User, Deaf and
		// Mute.
		Members map[UserID]Member `json:"members,omitempty"`
		// Roles contains role objects.
		Roles map[RoleID]Role `json:"roles,omitempty"`
		// Channels contains partial channel objects that only have ID,
		// Name, Type and Permissions. Threads also have ThreadMetadata and
		// ParentID.
		Channels map[ChannelID]Channel `json:"channels,omitempty"`
		// Messages contains partial message objects.
		Messages map[MessageID]Message `json:"messages,omitempty"`
		// Attachments contains attachment objects.
		Attachments map[AttachmentID]Attachment `json:"attachments,omitempty"`
	} `json:"resolved,omitempty"`
}

// InteractionType implements InteractionData.
func (*CommandInteraction) InteractionType() InteractionDataType {
	return CommandInteractionType
}

// TargetUserID is the id of the user targeted by a user command.
func (c *CommandInteraction) TargetUserID() UserID {
	return UserID(c.TargetID)
}

// TargetMessageID is the id of the message targeted by a message command.
func (c *CommandInteraction) TargetMessageID() MessageID {
	return MessageID(c.TargetID)
}

func (*CommandInteraction) data() {}

// CommandInteractionOptions is a list of interaction options. Use Find to
// get a named option.
type CommandInteractionOptions []CommandInteractionOption

// CommandInteractionOption is an option in a CommandInteraction.
type CommandInteractionOption struct {
	Type    CommandOptionType         `json:"type"`
	Name    string                    `json:"name"`
	Value   json.Raw                  `json:"value,omitempty"`
	Options CommandInteractionOptions `json:"options,omitempty"`
}

var optionSupportedSnowflakeTypes = map[reflect.Type]CommandOptionType{
	reflect.TypeOf(ChannelID(0)):    ChannelOptionType,
	reflect.TypeOf(UserID(0)):       UserOptionType,
	reflect.TypeOf(RoleID(0)):       RoleOptionType,
	reflect.TypeOf(AttachmentID(0)): AttachmentOptionType,
	reflect.TypeOf(Snowflake(0)):    MentionableOptionType,
}

var optionKindMap = map[reflect.Kind]CommandOptionType{
	reflect.Int:     IntegerOptionType,
	reflect.Int8:    IntegerOptionType,
	reflect.Int16:   IntegerOptionType,
	reflect.Int32:   IntegerOptionType,
	reflect.Int64:   IntegerOptionType,
	reflect.Uint:    IntegerOptionType,
	reflect.Uint8:   IntegerOptionType,
	reflect.Uint16:  IntegerOptionType,
	reflect.Uint32:  IntegerOptionType,
	reflect.Uint64:  IntegerOptionType,
	reflect.Float32: NumberOptionType,
	reflect.Float64: NumberOptionType,
	reflect.String:  StringOptionType,
	reflect.Bool:    BooleanOptionType,
}

// Unmarshal unmarshals the options into the struct pointer v. Each struct
// field must be exported and of a supported type.
//
// Fields that don't satisfy any of the below are ignored. The "discord"
// struct tag with a value "-" is ignored. Fields that aren't found in the
// list of options and have a "?" at the end of the "discord" struct tag are
// ignored.
//
// # Supported Types
//
// The following types are supported:
//
//   - ChannelID (ChannelOptionType)
//   - UserID (UserOptionType)
//   - RoleID (RoleOptionType)
//   - AttachmentID (AttachmentOptionType)
//   - Snowflake (MentionableOptionType)
//   - string (StringOptionType)
//   - bool (BooleanOptionType)
//   - int* (int, int8, int16, int32, int64) (IntegerOptionType)
//   - float* (float32, float64) (NumberOptionType)
//   - (any struct and struct pointer) (not type-checked)
//
// Any types that are derived from any of the above built-in types are also
// supported.
//
// Pointer types to any of the above types are also supported and imply
// optionality.
func (o CommandInteractionOptions) Unmarshal(v interface{}) error {
	return o.unmarshal(reflect.ValueOf(v))
}

func (o CommandInteractionOptions) unmarshal(rv reflect.Value) error {
	rv, rt, err := rfutil.StructRValue(rv)
	if err != nil {
		return err
	}

	numField := rt.NumField()
	for i := 0; i < numField; i++ {
		fieldStruct := rt.Field(i)
		if !fieldStruct.IsExported() {
			continue
		}

		name := fieldStruct.Tag.Get("discord")
		switch name {
		case "-":
			continue
		case "?":
			name = fieldStruct.Name + "?"
		case "":
			name = fieldStruct.Name
		}

		option := o.Find(strings.TrimSuffix(name, "?"))
		fieldv := rv.Field(i)
		fieldt := fieldStruct.Type

		if strings.HasSuffix(name, "?") {
			name = strings.TrimSuffix(name, "?")
			if option.Type == 0 {
				// not found
				continue
			}
		} else if fieldStruct.Type.Kind() == reflect.Ptr {
			fieldt = fieldt.Elem()
			if option.Type == 0 {
				// not found
				fieldv.Set(reflect.NewAt(fieldt, nil))
				continue
			}
			// found, so allocate a new value and use that to set
			newv := reflect.New(fieldt)
			fieldv.Set(newv)
			fieldv = newv.Elem()
		} else if option.Type == 0 {
			// not found AND the field is not a pointer, so error out
			return fmt.Errorf("option %q is required but not found", name)
		}

		if expectType, ok := optionSupportedSnowflakeTypes[fieldt]; ok {
			if option.Type != expectType {
				return fmt.Errorf("option %q expecting type %v, got %v", name, expectType, option.Type)
			}

			snowflake, err := option.SnowflakeValue()
			if err != nil {
				return errors.Wrapf(err, "option %q is not a valid snowflake", name)
			}

			fieldv.Set(reflect.ValueOf(snowflake).Convert(fieldt))
			continue
		}

		fieldk := fieldt.Kind()
		if expectType, ok := optionKindMap[fieldk]; ok {
			if option.Type != expectType {
				return fmt.Errorf("option %q expecting type %v, got %v", name, expectType, option.Type)
			}
		}

		switch fieldk {
		case reflect.Struct:
			if err := option.Options.unmarshal(fieldv.Addr()); err != nil {
				return errors.Wrapf(err, "option %q has invalid suboptions", name)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			i64, err := option.IntValue()
			if err != nil {
				return errors.Wrapf(err, "option %q is not a valid int64", name)
			}
			fieldv.Set(reflect.ValueOf(i64).Convert(fieldt))
		case reflect.Float32, reflect.Float64:
			f64, err := option.FloatValue()
			if err != nil {
				return errors.Wrapf(err, "option %q is not a valid float64", name)
			}
			fieldv.Set(reflect.ValueOf(f64).Convert(fieldt))
		case reflect.Bool:
			b, err := option.BoolValue()
			if err != nil {
				return errors.Wrapf(err, "option %q is not a valid bool", name)
			}
			fieldv.Set(reflect.ValueOf(b).Convert(fieldt))
		case reflect.String:
			fieldv.Set(reflect.ValueOf(option.String()).Convert(fieldt))
		default:
			return fmt.Errorf("field %s (%q) has unknown type %s", fieldStruct.Name, name, fieldt)
		}
	}

	return nil
}

// Find returns the named command option.
func (o CommandInteractionOptions) Find(name string) CommandInteractionOption {
	for _, opt := range o {
		if strings.EqualFold(opt.Name, name) {
			return opt
		}
	}
	return CommandInteractionOption{}
}

// String returns the value if the option's value is a valid string.
// Otherwise, it returns the raw JSON value of the other type.
func (o CommandInteractionOption) String() string {
	var value string
	if err := json.Unmarshal(o.Value, &value); err != nil {
		return string(o.Value)
	}
	return value
}

// IntValue reads the option's value as an int.
func (o CommandInteractionOption) IntValue() (int64, error) {
	var i int64
	err := o.Value.UnmarshalTo(&i)
	return i, err
}

// BoolValue reads the option's value as a bool.
func (o CommandInteractionOption) BoolValue() (bool, error) {
	var b bool
	err := o.Value.UnmarshalTo(&b)
	return b, err
}

// SnowflakeValue reads the option's value as a snowflake.
func (o CommandInteractionOption) SnowflakeValue() (Snowflake, error) {
	var id Snowflake
	err := o.Value.UnmarshalTo(&id)
	return id, err
}

// FloatValue reads the option's value as a float64.
func (o CommandInteractionOption) FloatValue() (float64, error) {
	var f float64
	err := o.Value.UnmarshalTo(&f)
	return f, err
}

// ModalInteraction is the data of a submitted modal form.
type ModalInteraction struct {
	CustomID   ComponentID         `json:"custom_id"`
	Components ContainerComponents `json:"components"`
}

// InteractionType implements InteractionData.
func (m *ModalInteraction) InteractionType() InteractionDataType {
	return ModalInteractionType
}

func (m *ModalInteraction) data() {}

// UnknownInteractionData describes interaction data with an unknown type.
type UnknownInteractionData struct {
	json.Raw
	typ InteractionDataType
}

// InteractionType implements InteractionData.
func (u *UnknownInteractionData) InteractionType() InteractionDataType {
	return u.typ
}

func (u *UnknownInteractionData) data() {}
