package service

import (
	"time"

	"github.com/samidy/monosync/models"
)

// nowMillis stamps addedAt/createdAt defaults; swapped in tests.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// MinifyItem projects a full catalog item down to the fields the cloud
// library keeps. Unknown categories pass through untouched. The projection
// is pure apart from the addedAt default.
func MinifyItem(category string, item models.Item) models.Item {
	if item == nil {
		return nil
	}

	switch category {
	case models.CategoryTrack:
		return minifyTrack(item)
	case models.CategoryAlbum:
		return minifyAlbum(item)
	case models.CategoryArtist:
		return minifyArtist(item)
	case models.CategoryPlaylist:
		return minifyPlaylist(item)
	case models.CategoryMix:
		return minifyMix(item)
	}

	return item
}

func addedAt(item models.Item) any {
	if v, ok := item["addedAt"]; ok && v != nil {
		return v
	}
	return nowMillis()
}

func fieldOrNil(item models.Item, key string) any {
	if v, ok := item[key]; ok && v != nil && v != "" {
		return v
	}
	return nil
}

func minifyTrack(item models.Item) models.Item {
	var artist any = fieldOrNil(item, "artist")
	artists := models.ItemSlice(models.SliceField(item, "artists"))
	if artist == nil && len(artists) > 0 {
		artist = artists[0]
	}

	minArtists := make([]any, 0, len(artists))
	for _, a := range artists {
		minArtists = append(minArtists, models.Item{
			"id":   a["id"],
			"name": fieldOrNil(a, "name"),
		})
	}

	var album any
	if full := models.MapField(item, "album"); full != nil {
		album = models.Item{
			"id":             full["id"],
			"title":          fieldOrNil(full, "title"),
			"cover":          fieldOrNil(full, "cover"),
			"releaseDate":    fieldOrNil(full, "releaseDate"),
			"vibrantColor":   fieldOrNil(full, "vibrantColor"),
			"artist":         fieldOrNil(full, "artist"),
			"numberOfTracks": fieldOrNil(full, "numberOfTracks"),
		}
	}

	return models.Item{
		"id":              item["id"],
		"addedAt":         addedAt(item),
		"title":           fieldOrNil(item, "title"),
		"duration":        fieldOrNil(item, "duration"),
		"explicit":        models.BoolField(item, "explicit"),
		"artist":          artist,
		"artists":         minArtists,
		"album":           album,
		"copyright":       fieldOrNil(item, "copyright"),
		"isrc":            fieldOrNil(item, "isrc"),
		"trackNumber":     fieldOrNil(item, "trackNumber"),
		"streamStartDate": fieldOrNil(item, "streamStartDate"),
		"version":         fieldOrNil(item, "version"),
		"mixes":           fieldOrNil(item, "mixes"),
	}
}

func minifyAlbum(item models.Item) models.Item {
	var artist any
	if full := models.MapField(item, "artist"); full != nil {
		artist = models.Item{"id": full["id"], "name": fieldOrNil(full, "name")}
	} else if artists := models.ItemSlice(models.SliceField(item, "artists")); len(artists) > 0 {
		artist = models.Item{"id": artists[0]["id"], "name": fieldOrNil(artists[0], "name")}
	}

	return models.Item{
		"id":             item["id"],
		"addedAt":        addedAt(item),
		"title":          fieldOrNil(item, "title"),
		"cover":          fieldOrNil(item, "cover"),
		"releaseDate":    fieldOrNil(item, "releaseDate"),
		"explicit":       models.BoolField(item, "explicit"),
		"artist":         artist,
		"type":           fieldOrNil(item, "type"),
		"numberOfTracks": fieldOrNil(item, "numberOfTracks"),
	}
}

func minifyArtist(item models.Item) models.Item {
	picture := fieldOrNil(item, "picture")
	if picture == nil {
		picture = fieldOrNil(item, "image")
	}

	return models.Item{
		"id":      item["id"],
		"addedAt": addedAt(item),
		"name":    fieldOrNil(item, "name"),
		"picture": picture,
	}
}

func minifyPlaylist(item models.Item) models.Item {
	var uuid any = fieldOrNil(item, "uuid")
	if uuid == nil {
		uuid = item["id"]
	}

	var title any = fieldOrNil(item, "title")
	if title == nil {
		title = fieldOrNil(item, "name")
	}

	var image any = fieldOrNil(item, "image")
	if image == nil {
		image = fieldOrNil(item, "squareImage")
	}
	if image == nil {
		image = fieldOrNil(item, "cover")
	}

	var count any = fieldOrNil(item, "numberOfTracks")
	if count == nil {
		count = len(models.SliceField(item, "tracks"))
	}

	var user any
	if full := models.MapField(item, "user"); full != nil {
		user = models.Item{"name": fieldOrNil(full, "name")}
	}

	return models.Item{
		"uuid":           uuid,
		"addedAt":        addedAt(item),
		"title":          title,
		"image":          image,
		"numberOfTracks": count,
		"user":           user,
	}
}

func minifyMix(item models.Item) models.Item {
	return models.Item{
		"id":       item["id"],
		"addedAt":  addedAt(item),
		"title":    item["title"],
		"subTitle": item["subTitle"],
		"mixType":  item["mixType"],
		"cover":    item["cover"],
	}
}
