package migrator

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Up applies goose SQL migrations from dir to the postgres database at connString.
func Up(connString, dir string) error {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = db.Ping(); err != nil {
		return errors.New("pinging migrations connection error: " + err.Error())
	}
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting migrations dialect error: " + err.Error())
	}
	if err = goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	version, err := goose.GetDBVersion(db)
	if err != nil {
		return errors.New("reading migrations version error: " + err.Error())
	}
	slog.Info("migrations applied", slog.String("dir", dir), slog.Int64("version", version))
	return nil
}
