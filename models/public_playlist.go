// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublicPlaylistRecord is one shared playlist in the public_playlists
// collection. A record exists iff its owning playlist is currently public;
// unpublishing deletes it. Title, cover and description are denormalised
// into several columns plus the auxiliary Data blob so that readers survive
// older schema revisions of the collection.
type PublicPlaylistRecord struct {
	ID            string `json:"id"`
	UUID          string `json:"uuid"`
	UserID        string `json:"user_id"`
	Title         string `json:"title,omitempty"`
	Name          string `json:"name,omitempty"`
	PlaylistName  string `json:"playlist_name,omitempty"`
	Image         string `json:"image,omitempty"`
	Cover         string `json:"cover,omitempty"`
	PlaylistCover string `json:"playlist_cover,omitempty"`
	Description   string `json:"description,omitempty"`

	// Tracks is the serialized ordered track list (JSON text or structured).
	Tracks any `json:"tracks,omitempty"`

	// Data is the auxiliary metadata blob: {title, cover, description}.
	Data any `json:"data,omitempty"`

	IsPublic bool `json:"is_public"`
}

// PublicPlaylistView is the resolved, display-ready form of a shared
// playlist returned to callers of FetchPublicPlaylist.
type PublicPlaylistView struct {
	ID          string `json:"id"`
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cover       string `json:"cover"`
	Image       string `json:"image"`
	Tracks      []Item `json:"tracks"`

	// Images holds up to 4 distinct track-album cover thumbnails, used when
	// no playlist cover could be resolved.
	Images []string `json:"images"`

	NumberOfTracks int    `json:"numberOfTracks"`
	Type           string `json:"type"`
	IsPublic       bool   `json:"isPublic"`
	OwnerName      string `json:"ownerName"`
}

// DefaultPlaylistTitle is the terminal fallback when neither the dedicated
// columns nor the auxiliary data blob yield a title.
const DefaultPlaylistTitle = "Untitled Playlist"

// PublicPlaylistType tags resolved views for the client UI.
const PublicPlaylistType = "user-playlist"

// CommunityOwnerName is shown for shared playlists, whose real owner is not
// exposed to readers.
const CommunityOwnerName = "Community Playlist"
