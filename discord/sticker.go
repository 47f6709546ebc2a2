package discord

import "time"

// Sticker is a sticker that can be sent in messages.
//
// https://discord.com/developers/docs/resources/sticker#sticker-object
type Sticker struct {
	// ID is the id of the sticker.
	ID StickerID `json:"id"`
	// PackID is the id of the pack the sticker is from, for standard
	// stickers.
	PackID StickerPackID `json:"pack_id,omitempty"`
	// Name is the name of the sticker.
	Name string `json:"name"`
	// Description is the description of the sticker.
	Description string `json:"description,omitempty"`
	// Tags are autocomplete/suggestion tags for the sticker (max 200
	// characters).
	Tags string `json:"tags"`
	// Type is the type of the sticker.
	Type StickerType `json:"type"`
	// FormatType is the type of the sticker format.
	FormatType StickerFormatType `json:"format_type"`
	// Available specifies whether the sticker can be used. It may be false
	// due to loss of server boosts.
	Available bool `json:"available,omitempty"`
	// GuildID is the id of the guild that owns this sticker.
	GuildID GuildID `json:"guild_id,omitempty"`
	// User is the user that uploaded the guild sticker.
	User *User `json:"user,omitempty"`
	// SortValue is the standard sticker's sort order within its pack.
	SortValue *int `json:"sort_value,omitempty"`
}

// CreatedAt returns a time object representing when the sticker was created.
func (s Sticker) CreatedAt() time.Time {
	return s.ID.Time()
}

// StickerType is the type of a sticker.
//
// https://discord.com/developers/docs/resources/sticker#sticker-object-sticker-types
type StickerType int

const (
	// StandardSticker is an official sticker in a pack, part of Nitro or in
	// a removed purchasable pack.
	StandardSticker StickerType = iota + 1
	// GuildSticker is a sticker uploaded to a boosted guild for the guild's
	// members.
	GuildSticker
)

// StickerFormatType is the format type of a sticker.
//
// https://discord.com/developers/docs/resources/sticker#sticker-object-sticker-format-types
type StickerFormatType int

const (
	StickerFormatPNG StickerFormatType = iota + 1
	StickerFormatAPNG
	StickerFormatLottie
)

// StickerItem is the smallest amount of data required to render a sticker.
//
// https://discord.com/developers/docs/resources/sticker#sticker-item-object
type StickerItem struct {
	// ID is the id of the sticker.
	ID StickerID `json:"id"`
	// Name is the name of the sticker.
	Name string `json:"name"`
	// FormatType is the type of the sticker format.
	FormatType StickerFormatType `json:"format_type"`
}

// StickerPack is a pack of standard stickers.
//
// https://discord.com/developers/docs/resources/sticker#sticker-pack-object
type StickerPack struct {
	// ID is the id of the sticker pack.
	ID StickerPackID `json:"id"`
	// Stickers are the stickers in the pack.
	Stickers []Sticker `json:"stickers"`
	// Name is the name of the sticker pack.
	Name string `json:"name"`
	// SKUID is the id of the pack's SKU.
	SKUID Snowflake `json:"sku_id"`
	// CoverStickerID is the id of the sticker in the pack that is shown as
	// the pack's icon.
	CoverStickerID StickerID `json:"cover_sticker_id,omitempty"`
	// Description is the description of the sticker pack.
	Description string `json:"description"`
	// BannerAssetID is the id of the sticker pack's banner image.
	BannerAssetID Snowflake `json:"banner_asset_id,omitempty"`
}
