// Command schema bootstraps and repairs the record service collections used
// by monosync. It authenticates against the admin API, creates the
// collections that are missing, and adds any fields an existing collection
// lacks. With -check it only reports drift without writing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/config"
	"github.com/samidy/monosync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func authRule() *string {
	rule := `@request.auth.id != ""`
	return &rule
}

func publicRule() *string {
	rule := ""
	return &rule
}

func collectionDefs() []baas.CollectionDef {
	return []baas.CollectionDef{
		{
			Name: baas.UserDataCollection,
			Type: "base",
			Schema: []baas.CollectionField{
				{Name: "user_id", Type: "text", Required: true, Unique: true},
				{Name: "library", Type: "json"},
				{Name: "history", Type: "json"},
				{Name: "user_playlists", Type: "json"},
				{Name: "user_folders", Type: "json"},
			},
			ListRule:   authRule(),
			ViewRule:   authRule(),
			CreateRule: authRule(),
			UpdateRule: authRule(),
			DeleteRule: authRule(),
		},
		{
			Name: baas.PublicPlaylistsCollection,
			Type: "base",
			Schema: []baas.CollectionField{
				{Name: "uuid", Type: "text", Required: true, Unique: true},
				{Name: "user_id", Type: "text", Required: true},
				{Name: "title", Type: "text"},
				{Name: "name", Type: "text"},
				{Name: "playlist_name", Type: "text"},
				{Name: "image", Type: "text"},
				{Name: "cover", Type: "text"},
				{Name: "playlist_cover", Type: "text"},
				{Name: "description", Type: "text"},
				{Name: "tracks", Type: "json"},
				{Name: "data", Type: "json"},
				{Name: "is_public", Type: "bool"},
			},
			// shared playlists are world-readable, writes need auth
			ListRule:   publicRule(),
			ViewRule:   publicRule(),
			CreateRule: authRule(),
			UpdateRule: authRule(),
			DeleteRule: authRule(),
		},
	}
}

func main() {
	printBuildInfo()

	// Parsed together with the config flags inside GetStructuredConfig.
	checkOnly := flag.Bool("check", false, "report schema drift without writing")

	log := logger.NewLogger("schema")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Remote.AdminEmail == "" || cfg.Remote.AdminPassword == "" {
		log.Fatal().Msg("REMOTE_ADMIN_EMAIL and REMOTE_ADMIN_PASSWORD are required")
	}

	client := baas.NewClient(baas.ClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.RequestTimeout,
	}, log)

	ctx := log.WithContext(context.Background())
	if err = client.AdminAuth(ctx, cfg.Remote.AdminEmail, cfg.Remote.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin authentication failed")
	}

	drift := false
	for _, def := range collectionDefs() {
		changed, err := ensureCollection(ctx, client, def, *checkOnly)
		if err != nil {
			log.Fatal().Err(err).Str("collection", def.Name).Msg("ensure collection failed")
		}
		drift = drift || changed
	}

	if *checkOnly && drift {
		log.Warn().Msg("schema drift detected")
		os.Exit(1)
	}
	log.Info().Msg("schema is up to date")
}

// ensureCollection creates the collection when missing and adds absent
// fields to an existing one. It reports whether anything was (or, in check
// mode, would be) changed.
func ensureCollection(ctx context.Context, client *baas.Client, def baas.CollectionDef, checkOnly bool) (bool, error) {
	log := logger.FromContext(ctx)

	meta, err := client.GetCollection(ctx, def.Name)
	if err != nil {
		if !errors.Is(err, baas.ErrNotFound) {
			return false, fmt.Errorf("get collection %s: %w", def.Name, err)
		}

		if checkOnly {
			log.Warn().Str("collection", def.Name).Msg("collection is missing")
			return true, nil
		}
		if err = client.CreateCollection(ctx, def); err != nil {
			return false, fmt.Errorf("create collection %s: %w", def.Name, err)
		}
		log.Info().Str("collection", def.Name).Msg("collection created")
		return true, nil
	}

	missing := missingFields(meta.Schema, def.Schema)
	if len(missing) == 0 {
		log.Info().Str("collection", def.Name).Msg("collection schema is complete")
		return false, nil
	}

	for _, field := range missing {
		log.Warn().Str("collection", def.Name).Str("field", field.Name).Msg("field is missing")
	}
	if checkOnly {
		return true, nil
	}

	merged := append(append([]baas.CollectionField{}, meta.Schema...), missing...)
	if err = client.UpdateCollection(ctx, meta.ID, map[string]any{"schema": merged}); err != nil {
		return false, fmt.Errorf("update collection %s: %w", def.Name, err)
	}
	log.Info().Str("collection", def.Name).Int("added", len(missing)).Msg("collection schema repaired")
	return true, nil
}

func missingFields(have, want []baas.CollectionField) []baas.CollectionField {
	present := make(map[string]bool, len(have))
	for _, field := range have {
		present[field.Name] = true
	}

	var missing []baas.CollectionField
	for _, field := range want {
		if !present[field.Name] {
			missing = append(missing, field)
		}
	}
	return missing
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
