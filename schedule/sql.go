package schedule

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"freebusy/interval"

	_ "github.com/go-sql-driver/mysql"
)

const busyQuery = "SELECT start_time, end_time FROM busy WHERE party = ? ORDER BY start_time"

// SQLResolver reads busy time from a MySQL table:
//
//	CREATE TABLE busy (party VARCHAR(64), start_time TIME(6), end_time TIME(6))
//
// Rows of one party may overlap; they are merged on read. A party without
// rows is free all day, so unknown parties are not reported.
type SQLResolver struct {
	database  *sql.DB
	statement *sql.Stmt
}

// OpenSQLResolver connects to the database at dsn and prepares the busy
// time query.
func OpenSQLResolver(ctx context.Context, dsn string) (*SQLResolver, error) {
	database, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, errors.Wrap(err, "ping mysql")
	}

	statement, err := database.PrepareContext(ctx, busyQuery)
	if err != nil {
		database.Close()
		return nil, errors.Wrap(err, "prepare busy query")
	}

	return &SQLResolver{
		database:  database,
		statement: statement,
	}, nil
}

func (r *SQLResolver) Close() error {
	stmtErr := r.statement.Close()
	if err := r.database.Close(); err != nil {
		return err
	}
	return stmtErr
}

func (r *SQLResolver) Resolve(ctx context.Context, party string) (Busy, error) {
	rows, err := r.statement.QueryContext(ctx, party)
	if err != nil {
		return nil, errors.Wrapf(err, "query busy time of %s", party)
	}
	defer rows.Close()

	var raw [][2]string
	for rows.Next() {
		var start, end string
		if err := rows.Scan(&start, &end); err != nil {
			return nil, errors.Wrapf(err, "scan busy time of %s", party)
		}
		raw = append(raw, [2]string{start, end})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "read busy time of %s", party)
	}

	logrus.WithField("party", party).WithField("rows", len(raw)).Debug("resolved busy time from mysql")
	return parseRows(party, raw)
}

// parseRows turns (start_time, end_time) rows into a normalized schedule.
// No rows is an empty schedule.
func parseRows(party string, raw [][2]string) (Busy, error) {
	busy := make([]interval.Interval[interval.TimeOfDay], 0, len(raw))
	for _, row := range raw {
		iv, err := parseRow(row[0], row[1])
		if err != nil {
			return nil, errors.Wrapf(err, "busy time of %s", party)
		}
		busy = append(busy, iv)
	}
	if out := interval.Normalize(busy); out != nil {
		return out, nil
	}
	return Busy{}, nil
}

func parseRow(start, end string) (interval.Interval[interval.TimeOfDay], error) {
	s, err := interval.ParseTimeOfDay(start)
	if err != nil {
		return interval.Interval[interval.TimeOfDay]{}, err
	}
	e, err := interval.ParseTimeOfDay(end)
	if err != nil {
		return interval.Interval[interval.TimeOfDay]{}, err
	}
	iv := interval.Of(s, e)
	if s > e {
		return iv, errors.Wrapf(interval.ErrInvalidInterval, "%v", iv)
	}
	return iv, nil
}
