// Command calendar precomputes rows of the calendar dimension. Every row
// is derived from its timestamp, so the whole range can be generated ahead
// of any simulation run instead of on demand.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm/clause"

	"trading_backend/internal/app/config"
	"trading_backend/internal/domain/entity"
	infradb "trading_backend/internal/infrastructure/db"
	"trading_backend/internal/platform/logging"
)

const dateLayout = "2006-01-02"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	from := flag.String("from", "", "first day to generate, inclusive (YYYY-MM-DD)")
	to := flag.String("to", "", "last day to generate, inclusive (YYYY-MM-DD)")
	step := flag.Duration("step", time.Minute, "spacing between consecutive rows")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	start, err := time.Parse(dateLayout, *from)
	if err != nil {
		log.Fatal().Str("from", *from).Msg("invalid -from date")
	}
	end, err := time.Parse(dateLayout, *to)
	if err != nil {
		log.Fatal().Str("to", *to).Msg("invalid -to date")
	}
	end = end.AddDate(0, 0, 1)
	if !start.Before(end) || *step <= 0 {
		log.Fatal().Msg("-from must precede -to and -step must be positive")
	}

	conn, err := infradb.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	var rows []entity.DateTimeDim
	for t := start; t.Before(end); t = t.Add(*step) {
		rows = append(rows, entity.NewDateTimeDim(t.Unix(), t))
	}

	// Re-runs over an overlapping range are harmless: existing rows are
	// left untouched.
	res := conn.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 500)
	if res.Error != nil {
		log.Fatal().Err(res.Error).Msg("insert calendar rows")
	}
	log.Info().
		Int("generated", len(rows)).
		Int64("inserted", res.RowsAffected).
		Str("from", *from).
		Str("to", *to).
		Msg("calendar populated")
}
