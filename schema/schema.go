// Package schema names the collections and fields the game clients already
// read and write under apps/{appId}.
package schema

import (
	"fmt"

	"arayWorlds/docstore"
)

const DefaultAppID = "aray"

const (
	UsersCollection    = "users"
	NicksCollection    = "nicks"
	ProgressCollection = "progress"
)

// users
const (
	FieldUID          = "uid"
	FieldEmail        = "email"
	FieldNick         = "nick"
	FieldCandiesTotal = "candiesTotal"
	FieldLastSeen     = "lastSeen"
	FieldCreatedAt    = "createdAt"
	FieldSoundEnabled = "soundEnabled"
	FieldMusicEnabled = "musicEnabled"
)

// progress
const (
	FieldGameID    = "gameId"
	FieldBestLevel = "bestLevel"
	FieldUpdatedAt = "updatedAt"
)

type Paths struct {
	AppID string
}

func NewPaths(appID string) Paths {
	if appID == "" {
		appID = DefaultAppID
	}
	return Paths{AppID: appID}
}

func (p Paths) collection(name string) string {
	return fmt.Sprintf("apps/%s/%s", p.AppID, name)
}

func (p Paths) Users() string    { return p.collection(UsersCollection) }
func (p Paths) Nicks() string    { return p.collection(NicksCollection) }
func (p Paths) Progress() string { return p.collection(ProgressCollection) }

func (p Paths) User(userID string) docstore.Key {
	return docstore.Key{Collection: p.Users(), ID: userID}
}

func (p Paths) Nick(normalized string) docstore.Key {
	return docstore.Key{Collection: p.Nicks(), ID: normalized}
}

// ProgressDoc keys one (user, game) pair as "{uid}_{gameId}". Game ids never
// contain "_", so the last separator splits the pair unambiguously.
func (p Paths) ProgressDoc(userID, gameID string) docstore.Key {
	return docstore.Key{Collection: p.Progress(), ID: userID + "_" + gameID}
}
