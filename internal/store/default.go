package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type DefaultStore struct {
	Path string
	db   *sql.DB
}

const columns = "id, run, sum, song, author, difficulty, bpm, stream, voltage, air, chaos, total_hits, created_at"

func (s *DefaultStore) Init() error {
	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return errors.Wrap(err, "unable to open report database")
	}

	initStatement := `
	create table if not exists reports
	  (
		  id integer not null primary key,
		  run text,
		  sum text,
		  song text,
		  author text,
		  difficulty text,
		  bpm text,
		  stream integer,
		  voltage integer,
		  air integer,
		  chaos integer,
		  total_hits integer,
		  created_at timestamp
	  );
	create index if not exists reports_sum on reports(sum);
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create report table")
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultStore) Save(e *Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	result, err := s.db.Exec(
		"insert into reports(run, sum, song, author, difficulty, bpm, stream, voltage, air, chaos, total_hits, created_at) values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.Run, e.Sum, e.Song, e.Author, e.Difficulty, e.BPM,
		e.Ratings.Stream, e.Ratings.Voltage, e.Ratings.Air, e.Ratings.Chaos,
		e.TotalHits, e.CreatedAt,
	)
	if nil != err {
		return errors.Wrapf(err, "unable to save report for %s - %s", e.Song, e.Author)
	}
	e.ID, err = result.LastInsertId()
	return err
}

func (s *DefaultStore) Load(sum string) ([]Entry, error) {
	return s.query("select "+columns+" from reports where sum = ? order by id", sum)
}

func (s *DefaultStore) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	return s.query("select "+columns+" from reports order by id desc limit ?", limit)
}

func (s *DefaultStore) query(query string, args ...interface{}) ([]Entry, error) {
	entries := []Entry{}
	rows, err := s.db.Query(query, args...)
	if nil != err {
		return entries, errors.Wrap(err, "unable to load reports")
	}
	defer rows.Close()
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.Run, &e.Sum, &e.Song, &e.Author, &e.Difficulty, &e.BPM,
			&e.Ratings.Stream, &e.Ratings.Voltage, &e.Ratings.Air, &e.Ratings.Chaos,
			&e.TotalHits, &e.CreatedAt,
		); nil != err {
			return entries, errors.Wrap(err, "unable to read report")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
