package models

// Item is a single catalog or library object (track, album, artist,
// playlist, mix, folder, history entry). The remote record fields are
// free-form JSON written by several producers, so items are kept as loose
// maps rather than rigid structs; accessor helpers live in item_access.go.
type Item = map[string]any

// Library maps a plural category key ("tracks", "albums", "artists",
// "playlists", "mixes") to a map of item id to minified item.
type Library map[string]map[string]Item

// History is the ordered play history, newest entry first.
type History []Item

// ItemMap keys playlist or folder snapshots by their id.
type ItemMap map[string]Item

// Catalog item categories understood by the minifier and the sync engine.
const (
	CategoryTrack    = "track"
	CategoryAlbum    = "album"
	CategoryArtist   = "artist"
	CategoryPlaylist = "playlist"
	CategoryMix      = "mix"
)

// Categories lists every known catalog category in a stable order.
var Categories = []string{CategoryTrack, CategoryAlbum, CategoryArtist, CategoryPlaylist, CategoryMix}

// PluralCategory returns the plural form used as a library map key:
// "mix" becomes "mixes", every other category just appends "s".
func PluralCategory(category string) string {
	if category == CategoryMix {
		return "mixes"
	}
	return category + "s"
}

// ItemKey returns the library map key for an item of the given category.
// Playlists are keyed by their client-generated uuid, falling back to id;
// everything else is keyed by id.
func ItemKey(category string, item Item) string {
	if category == CategoryPlaylist {
		if uuid := StringField(item, "uuid"); uuid != "" {
			return uuid
		}
	}
	return StringField(item, "id")
}

// EnsureLibrary returns lib with every known plural category present,
// allocating empty maps as needed. A nil lib yields a fully initialised one.
func EnsureLibrary(lib Library) Library {
	if lib == nil {
		lib = make(Library, len(Categories))
	}
	for _, category := range Categories {
		plural := PluralCategory(category)
		if lib[plural] == nil {
			lib[plural] = make(map[string]Item)
		}
	}
	return lib
}
