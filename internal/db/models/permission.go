package models

// PermissionState is the tri-state value a single permission flag can carry.
// Unset is the neutral state: it defers the decision to the next role in
// precedence order and is distinct from an explicit Forbidden.
// The integer values match the column encoding.
type PermissionState int

const (
	// PermUnset means the role has no opinion on the flag and inherits
	// from lower-precedence roles.
	PermUnset PermissionState = -1
	// PermForbidden explicitly denies the flag.
	PermForbidden PermissionState = 0
	// PermAllowed explicitly grants the flag.
	PermAllowed PermissionState = 1
)

// Valid reports whether the state is one of the three known values.
func (s PermissionState) Valid() bool {
	return s == PermUnset || s == PermForbidden || s == PermAllowed
}

// String returns the state name for logging and debug output.
func (s PermissionState) String() string {
	switch s {
	case PermUnset:
		return "unset"
	case PermForbidden:
		return "forbidden"
	case PermAllowed:
		return "allowed"
	default:
		return "invalid"
	}
}

// Timeout is the per-role delay in seconds between sending messages.
// TimeoutInherit defers to lower-precedence roles, any value >= 0 is an
// explicit delay. Modeled as its own type so the sentinel never gets
// mistaken for a plain integer.
type Timeout int

// TimeoutInherit means the role has no explicit timeout and inherits one.
const TimeoutInherit Timeout = -1

// Explicit reports whether the timeout carries an explicit value.
func (t Timeout) Explicit() bool {
	return t >= 0
}

// Valid reports whether the timeout is the inherit sentinel or non-negative.
func (t Timeout) Valid() bool {
	return t >= TimeoutInherit
}

// Seconds returns the delay value as a plain integer.
func (t Timeout) Seconds() int {
	return int(t)
}

// PermissionFlag names one flag of the fixed permission catalog.
type PermissionFlag string

// The fixed permission catalog. Adding a flag requires defining its value in
// every bootstrapped default role: an omission on Everyone silently resolves
// to Forbidden, an omission elsewhere changes inheritance and must be
// reviewed.
const (
	// FlagTitleUpdate allows renaming the room.
	FlagTitleUpdate PermissionFlag = "title_update"
	// FlagPathUpdate allows changing the room's URL path.
	FlagPathUpdate PermissionFlag = "path_update"
	// FlagPublicUpdate allows toggling room visibility.
	FlagPublicUpdate PermissionFlag = "public_update"
	// FlagRoomDelete allows deleting the room.
	FlagRoomDelete PermissionFlag = "room_delete"
	// FlagRoomView allows viewing the room at all.
	FlagRoomView PermissionFlag = "room_view"
	// FlagAuditLogRead allows reading the room audit log.
	FlagAuditLogRead PermissionFlag = "audit_log_read"
	// FlagEmbedLinks allows posting messages with embedded links.
	FlagEmbedLinks PermissionFlag = "embed_links"
	// FlagPingEveryone allows mentioning the whole room.
	FlagPingEveryone PermissionFlag = "ping_everyone"

	// FlagPasswordCreate allows setting a room password.
	FlagPasswordCreate PermissionFlag = "password_create"
	// FlagPasswordUpdate allows changing the room password.
	FlagPasswordUpdate PermissionFlag = "password_update"
	// FlagPasswordDelete allows removing the room password.
	FlagPasswordDelete PermissionFlag = "password_delete"
	// FlagPasswordBypass allows entering without the room password.
	FlagPasswordBypass PermissionFlag = "password_bypass"

	// FlagEmoteCreate allows adding room emotes.
	FlagEmoteCreate PermissionFlag = "emote_create"
	// FlagEmoteUpdate allows editing room emotes.
	FlagEmoteUpdate PermissionFlag = "emote_update"
	// FlagEmoteDelete allows removing room emotes.
	FlagEmoteDelete PermissionFlag = "emote_delete"
	// FlagEmoteView allows using and listing room emotes.
	FlagEmoteView PermissionFlag = "emote_view"

	// FlagRoleCreate allows creating roles in the room.
	FlagRoleCreate PermissionFlag = "role_create"
	// FlagRoleDelete allows deleting roles in the room.
	FlagRoleDelete PermissionFlag = "role_delete"
	// FlagRoleUpdate allows editing roles in the room.
	FlagRoleUpdate PermissionFlag = "role_update"
	// FlagRoleView allows listing roles in the room.
	FlagRoleView PermissionFlag = "role_view"

	// FlagVideoCreate allows adding videos to the room playlist.
	FlagVideoCreate PermissionFlag = "video_create"
	// FlagVideoDelete allows removing videos from the playlist.
	FlagVideoDelete PermissionFlag = "video_delete"
	// FlagVideoWatch allows watching the room player.
	FlagVideoWatch PermissionFlag = "video_watch"
	// FlagVideoMove allows reordering the playlist.
	FlagVideoMove PermissionFlag = "video_move"
	// FlagVideoIframe allows adding iframe-embedded videos.
	FlagVideoIframe PermissionFlag = "video_iframe"
	// FlagVideoRaw allows adding raw file/stream videos.
	FlagVideoRaw PermissionFlag = "video_raw"

	// FlagPlayerPause allows pausing playback for the room.
	FlagPlayerPause PermissionFlag = "player_pause"
	// FlagPlayerResume allows resuming playback for the room.
	FlagPlayerResume PermissionFlag = "player_resume"
	// FlagPlayerRewind allows seeking playback for the room.
	FlagPlayerRewind PermissionFlag = "player_rewind"

	// FlagSubtitlesFile allows attaching subtitle files.
	FlagSubtitlesFile PermissionFlag = "subtitles_file"
	// FlagSubtitlesEmbed allows selecting embedded subtitle tracks.
	FlagSubtitlesEmbed PermissionFlag = "subtitles_embed"

	// FlagMessageCreate allows sending messages.
	FlagMessageCreate PermissionFlag = "message_create"
	// FlagMessageRead allows reading live messages.
	FlagMessageRead PermissionFlag = "message_read"
	// FlagMessageDelete allows deleting other users' messages.
	FlagMessageDelete PermissionFlag = "message_delete"
	// FlagMessageHistoryRead allows reading message history.
	FlagMessageHistoryRead PermissionFlag = "message_history_read"

	// FlagUserKick allows kicking users from the room.
	FlagUserKick PermissionFlag = "user_kick"
	// FlagUserBan allows banning users from the room.
	FlagUserBan PermissionFlag = "user_ban"
	// FlagUserUnban allows lifting bans.
	FlagUserUnban PermissionFlag = "user_unban"
	// FlagUserTimeout allows temporarily muting users.
	FlagUserTimeout PermissionFlag = "user_timeout"
)

// Flags is the fixed, ordered permission catalog. Resolution and validation
// iterate this slice, so the order is part of the schema.
var Flags = []PermissionFlag{
	FlagTitleUpdate,
	FlagPathUpdate,
	FlagPublicUpdate,
	FlagRoomDelete,
	FlagRoomView,
	FlagAuditLogRead,
	FlagEmbedLinks,
	FlagPingEveryone,
	FlagPasswordCreate,
	FlagPasswordUpdate,
	FlagPasswordDelete,
	FlagPasswordBypass,
	FlagEmoteCreate,
	FlagEmoteUpdate,
	FlagEmoteDelete,
	FlagEmoteView,
	FlagRoleCreate,
	FlagRoleDelete,
	FlagRoleUpdate,
	FlagRoleView,
	FlagVideoCreate,
	FlagVideoDelete,
	FlagVideoWatch,
	FlagVideoMove,
	FlagVideoIframe,
	FlagVideoRaw,
	FlagPlayerPause,
	FlagPlayerResume,
	FlagPlayerRewind,
	FlagSubtitlesFile,
	FlagSubtitlesEmbed,
	FlagMessageCreate,
	FlagMessageRead,
	FlagMessageDelete,
	FlagMessageHistoryRead,
	FlagUserKick,
	FlagUserBan,
	FlagUserUnban,
	FlagUserTimeout,
}

// PermissionSet carries one tri-state value per catalog flag.
// It is embedded into the Role row, one column per flag, matching the flat
// roles table layout.
type PermissionSet struct {
	TitleUpdate  PermissionState `gorm:"column:title_update;not null;default:-1"`
	PathUpdate   PermissionState `gorm:"column:path_update;not null;default:-1"`
	PublicUpdate PermissionState `gorm:"column:public_update;not null;default:-1"`
	RoomDelete   PermissionState `gorm:"column:room_delete;not null;default:-1"`
	RoomView     PermissionState `gorm:"column:room_view;not null;default:-1"`
	AuditLogRead PermissionState `gorm:"column:audit_log_read;not null;default:-1"`
	EmbedLinks   PermissionState `gorm:"column:embed_links;not null;default:-1"`
	PingEveryone PermissionState `gorm:"column:ping_everyone;not null;default:-1"`

	PasswordCreate PermissionState `gorm:"column:password_create;not null;default:-1"`
	PasswordUpdate PermissionState `gorm:"column:password_update;not null;default:-1"`
	PasswordDelete PermissionState `gorm:"column:password_delete;not null;default:-1"`
	PasswordBypass PermissionState `gorm:"column:password_bypass;not null;default:-1"`

	EmoteCreate PermissionState `gorm:"column:emote_create;not null;default:-1"`
	EmoteUpdate PermissionState `gorm:"column:emote_update;not null;default:-1"`
	EmoteDelete PermissionState `gorm:"column:emote_delete;not null;default:-1"`
	EmoteView   PermissionState `gorm:"column:emote_view;not null;default:-1"`

	RoleCreate PermissionState `gorm:"column:role_create;not null;default:-1"`
	RoleDelete PermissionState `gorm:"column:role_delete;not null;default:-1"`
	RoleUpdate PermissionState `gorm:"column:role_update;not null;default:-1"`
	RoleView   PermissionState `gorm:"column:role_view;not null;default:-1"`

	VideoCreate PermissionState `gorm:"column:video_create;not null;default:-1"`
	VideoDelete PermissionState `gorm:"column:video_delete;not null;default:-1"`
	VideoWatch  PermissionState `gorm:"column:video_watch;not null;default:-1"`
	VideoMove   PermissionState `gorm:"column:video_move;not null;default:-1"`
	VideoIframe PermissionState `gorm:"column:video_iframe;not null;default:-1"`
	VideoRaw    PermissionState `gorm:"column:video_raw;not null;default:-1"`

	PlayerPause  PermissionState `gorm:"column:player_pause;not null;default:-1"`
	PlayerResume PermissionState `gorm:"column:player_resume;not null;default:-1"`
	PlayerRewind PermissionState `gorm:"column:player_rewind;not null;default:-1"`

	SubtitlesFile  PermissionState `gorm:"column:subtitles_file;not null;default:-1"`
	SubtitlesEmbed PermissionState `gorm:"column:subtitles_embed;not null;default:-1"`

	MessageCreate      PermissionState `gorm:"column:message_create;not null;default:-1"`
	MessageRead        PermissionState `gorm:"column:message_read;not null;default:-1"`
	MessageDelete      PermissionState `gorm:"column:message_delete;not null;default:-1"`
	MessageHistoryRead PermissionState `gorm:"column:message_history_read;not null;default:-1"`

	UserKick    PermissionState `gorm:"column:user_kick;not null;default:-1"`
	UserBan     PermissionState `gorm:"column:user_ban;not null;default:-1"`
	UserUnban   PermissionState `gorm:"column:user_unban;not null;default:-1"`
	UserTimeout PermissionState `gorm:"column:user_timeout;not null;default:-1"`
}

// Field returns a pointer to the state backing the given flag.
// A flag outside the catalog is a programming error and panics.
func (s *PermissionSet) Field(flag PermissionFlag) *PermissionState { //nolint:funlen,cyclop
	switch flag {
	case FlagTitleUpdate:
		return &s.TitleUpdate
	case FlagPathUpdate:
		return &s.PathUpdate
	case FlagPublicUpdate:
		return &s.PublicUpdate
	case FlagRoomDelete:
		return &s.RoomDelete
	case FlagRoomView:
		return &s.RoomView
	case FlagAuditLogRead:
		return &s.AuditLogRead
	case FlagEmbedLinks:
		return &s.EmbedLinks
	case FlagPingEveryone:
		return &s.PingEveryone
	case FlagPasswordCreate:
		return &s.PasswordCreate
	case FlagPasswordUpdate:
		return &s.PasswordUpdate
	case FlagPasswordDelete:
		return &s.PasswordDelete
	case FlagPasswordBypass:
		return &s.PasswordBypass
	case FlagEmoteCreate:
		return &s.EmoteCreate
	case FlagEmoteUpdate:
		return &s.EmoteUpdate
	case FlagEmoteDelete:
		return &s.EmoteDelete
	case FlagEmoteView:
		return &s.EmoteView
	case FlagRoleCreate:
		return &s.RoleCreate
	case FlagRoleDelete:
		return &s.RoleDelete
	case FlagRoleUpdate:
		return &s.RoleUpdate
	case FlagRoleView:
		return &s.RoleView
	case FlagVideoCreate:
		return &s.VideoCreate
	case FlagVideoDelete:
		return &s.VideoDelete
	case FlagVideoWatch:
		return &s.VideoWatch
	case FlagVideoMove:
		return &s.VideoMove
	case FlagVideoIframe:
		return &s.VideoIframe
	case FlagVideoRaw:
		return &s.VideoRaw
	case FlagPlayerPause:
		return &s.PlayerPause
	case FlagPlayerResume:
		return &s.PlayerResume
	case FlagPlayerRewind:
		return &s.PlayerRewind
	case FlagSubtitlesFile:
		return &s.SubtitlesFile
	case FlagSubtitlesEmbed:
		return &s.SubtitlesEmbed
	case FlagMessageCreate:
		return &s.MessageCreate
	case FlagMessageRead:
		return &s.MessageRead
	case FlagMessageDelete:
		return &s.MessageDelete
	case FlagMessageHistoryRead:
		return &s.MessageHistoryRead
	case FlagUserKick:
		return &s.UserKick
	case FlagUserBan:
		return &s.UserBan
	case FlagUserUnban:
		return &s.UserUnban
	case FlagUserTimeout:
		return &s.UserTimeout
	default:
		panic("models: unknown permission flag " + string(flag))
	}
}

// Get returns the state of the given flag.
func (s *PermissionSet) Get(flag PermissionFlag) PermissionState {
	return *s.Field(flag)
}

// Set assigns the state of the given flag.
func (s *PermissionSet) Set(flag PermissionFlag, state PermissionState) {
	*s.Field(flag) = state
}

// UniformSet returns a set with every catalog flag at the given state.
func UniformSet(state PermissionState) PermissionSet {
	var s PermissionSet
	for _, flag := range Flags {
		s.Set(flag, state)
	}

	return s
}

// Validate checks that every flag carries a known tri-state value.
func (s *PermissionSet) Validate() error {
	for _, flag := range Flags {
		if !s.Get(flag).Valid() {
			return ErrInvalidPermissionState
		}
	}

	return nil
}
