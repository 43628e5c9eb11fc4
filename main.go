// main.go
//
// nagaram-server: JSON API over the anagram search.
// Configuration comes from the environment (see internal/config).

package main

import (
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/nagaram/internal/config"
	"github.com/robalobadob/nagaram/internal/history"
	"github.com/robalobadob/nagaram/internal/httpserver"
	"github.com/robalobadob/nagaram/internal/store"
	"github.com/robalobadob/nagaram/internal/words"
)

func main() {
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	var src words.Source = words.Embedded()
	if cfg.WordlistDir != "" {
		src = words.Dir(cfg.WordlistDir)
	} else {
		log.Warn().Msg("NAGARAM_WORDLIST_DIR not set, using embedded sample word lists")
	}
	for _, v := range []words.Variant{words.TWL, words.SOWPODS} {
		n, err := words.Count(src, v)
		if err != nil {
			log.Fatal().Err(err).Str("dict", v.String()).Msg("failed to load word list")
		}
		log.Info().Str("dict", v.String()).Str("words", humanize.Comma(int64(n))).Msg("word list ready")
	}

	db, err := history.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open history database")
	}
	defer db.Close()
	if err := history.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate history database")
	}

	srv := httpserver.New(httpserver.Options{
		Source:       src,
		Cache:        store.NewMemoryStore(cfg.CacheSize),
		History:      history.NewStore(db),
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
	})
	log.Info().Str("port", cfg.Port).Msg("starting nagaram-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
