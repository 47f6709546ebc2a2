package discord

// Permissions is a bit set of permissions. It is serialized as a string in
// JSON payloads.
//
// https://discord.com/developers/docs/topics/permissions
type Permissions uint64

const (
	// PermissionCreateInstantInvite allows the creation of instant invites.
	PermissionCreateInstantInvite Permissions = 1 << iota
	// PermissionKickMembers allows the kicking of members.
	PermissionKickMembers
	// PermissionBanMembers allows the banning of members.
	PermissionBanMembers
	// PermissionAdministrator allows all permissions and bypasses channel
	// permission overwrites.
	PermissionAdministrator
	// PermissionManageChannels allows the management and editing of channels.
	PermissionManageChannels
	// PermissionManageGuild allows the management and editing of the guild.
	PermissionManageGuild
	// PermissionAddReactions allows the addition of reactions to messages.
	PermissionAddReactions
	// PermissionViewAuditLog allows the viewing of audit logs.
	PermissionViewAuditLog
	// PermissionPrioritySpeaker allows using priority speaker in a voice
	// channel.
	PermissionPrioritySpeaker
	// PermissionStream allows the user to go live.
	PermissionStream
	// PermissionViewChannel allows viewing a channel, which includes reading
	// messages in text channels.
	PermissionViewChannel
	// PermissionSendMessages allows the sending of messages in a channel.
	PermissionSendMessages
	// PermissionSendTTSMessages allows the sending of /tts messages.
	PermissionSendTTSMessages
	// PermissionManageMessages allows the deletion of other users' messages.
	PermissionManageMessages
	// PermissionEmbedLinks embeds links sent by users.
	PermissionEmbedLinks
	// PermissionAttachFiles allows uploading images and files.
	PermissionAttachFiles
	// PermissionReadMessageHistory allows the reading of message history.
	PermissionReadMessageHistory
	// PermissionMentionEveryone allows using the @everyone tag and all role
	// tags.
	PermissionMentionEveryone
	// PermissionUseExternalEmojis allows using custom emojis from other
	// servers.
	PermissionUseExternalEmojis
	// PermissionViewGuildInsights allows viewing guild insights.
	PermissionViewGuildInsights
	// PermissionConnect allows joining a voice channel.
	PermissionConnect
	// PermissionSpeak allows speaking in a voice channel.
	PermissionSpeak
	// PermissionMuteMembers allows muting members in a voice channel.
	PermissionMuteMembers
	// PermissionDeafenMembers allows deafening members in a voice channel.
	PermissionDeafenMembers
	// PermissionMoveMembers allows moving members between voice channels.
	PermissionMoveMembers
	// PermissionUseVAD allows using voice activity detection in a voice
	// channel.
	PermissionUseVAD
	// PermissionChangeNickname allows modification of one's own nickname.
	PermissionChangeNickname
	// PermissionManageNicknames allows modification of other users'
	// nicknames.
	PermissionManageNicknames
	// PermissionManageRoles allows the management and editing of roles.
	PermissionManageRoles
	// PermissionManageWebhooks allows the management and editing of webhooks.
	PermissionManageWebhooks
	// PermissionManageEmojisAndStickers allows the management and editing of
	// emojis and stickers.
	PermissionManageEmojisAndStickers
	// PermissionUseSlashCommands allows using application commands.
	PermissionUseSlashCommands
	// PermissionRequestToSpeak allows requesting to speak in stage channels.
	PermissionRequestToSpeak
	// PermissionManageEvents allows the management and editing of scheduled
	// events.
	PermissionManageEvents
	// PermissionManageThreads allows deleting and archiving threads, and
	// viewing all private threads.
	PermissionManageThreads
	// PermissionCreatePublicThreads allows the creation of public threads.
	PermissionCreatePublicThreads
	// PermissionCreatePrivateThreads allows the creation of private threads.
	PermissionCreatePrivateThreads
	// PermissionUseExternalStickers allows using custom stickers from other
	// servers.
	PermissionUseExternalStickers
	// PermissionSendMessagesInThreads allows the sending of messages in
	// threads.
	PermissionSendMessagesInThreads
	// PermissionStartEmbeddedActivities allows launching activities in a
	// voice channel.
	PermissionStartEmbeddedActivities
	// PermissionModerateMembers allows timing out users.
	PermissionModerateMembers

	PermissionAllText = 0 |
		PermissionViewChannel |
		PermissionSendMessages |
		PermissionSendTTSMessages |
		PermissionManageMessages |
		PermissionEmbedLinks |
		PermissionAttachFiles |
		PermissionReadMessageHistory |
		PermissionMentionEveryone |
		PermissionUseExternalEmojis |
		PermissionUseSlashCommands |
		PermissionManageThreads |
		PermissionCreatePublicThreads |
		PermissionCreatePrivateThreads |
		PermissionUseExternalStickers |
		PermissionSendMessagesInThreads

	PermissionAllVoice = 0 |
		PermissionViewChannel |
		PermissionConnect |
		PermissionSpeak |
		PermissionStream |
		PermissionMuteMembers |
		PermissionDeafenMembers |
		PermissionMoveMembers |
		PermissionUseVAD |
		PermissionPrioritySpeaker |
		PermissionRequestToSpeak |
		PermissionStartEmbeddedActivities

	PermissionAllChannel = 0 |
		PermissionAllText |
		PermissionAllVoice |
		PermissionCreateInstantInvite |
		PermissionManageRoles |
		PermissionManageChannels |
		PermissionAddReactions |
		PermissionViewAuditLog

	PermissionAll = 0 |
		PermissionAllChannel |
		PermissionKickMembers |
		PermissionBanMembers |
		PermissionManageGuild |
		PermissionAdministrator |
		PermissionManageWebhooks |
		PermissionManageEmojisAndStickers |
		PermissionManageNicknames |
		PermissionChangeNickname |
		PermissionViewGuildInsights |
		PermissionManageEvents |
		PermissionModerateMembers
)

// Has returns true if p contains all of the bits in perm.
func (p Permissions) Has(perm Permissions) bool {
	return HasFlag(uint64(p), uint64(perm))
}

// Add returns a copy of p with the bits in perm set.
func (p Permissions) Add(perm Permissions) Permissions {
	return p | perm
}

// Remove returns a copy of p with the bits in perm cleared.
func (p Permissions) Remove(perm Permissions) Permissions {
	return p &^ perm
}

// CalcOverwrites computes the effective permissions of the member in the
// channel, applying the guild-level role permissions and the channel's
// permission overwrites in order.
func CalcOverwrites(guild Guild, channel Channel, member Member) Permissions {
	if guild.OwnerID == member.User.ID {
		return PermissionAll
	}

	var perm Permissions

	for _, role := range guild.Roles {
		if role.ID == RoleID(guild.ID) {
			perm |= role.Permissions
		}

		for _, id := range member.RoleIDs {
			if id == role.ID {
				perm |= role.Permissions
				break
			}
		}
	}

	if perm.Has(PermissionAdministrator) {
		return PermissionAll
	}

	for _, overwrite := range channel.Overwrites {
		if GuildID(overwrite.ID) == guild.ID {
			perm &= ^overwrite.Deny
			perm |= overwrite.Allow
			break
		}
	}

	var deny, allow Permissions

	for _, overwrite := range channel.Overwrites {
		for _, id := range member.RoleIDs {
			if id == RoleID(overwrite.ID) && overwrite.Type == OverwriteRole {
				deny |= overwrite.Deny
				allow |= overwrite.Allow
				break
			}
		}
	}

	perm &= ^deny
	perm |= allow

	for _, overwrite := range channel.Overwrites {
		if UserID(overwrite.ID) == member.User.ID {
			perm &= ^overwrite.Deny
			perm |= overwrite.Allow
			break
		}
	}

	if perm.Has(PermissionAdministrator) {
		return PermissionAll
	}

	return perm
}
