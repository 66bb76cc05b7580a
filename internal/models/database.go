package models

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type GoalpostContext string

const (
	DBContextURL GoalpostContext = "goalpost-backend-url"
)

// IsSQLite reports if the DSN is a path to an SQLite database.
//
// DSNs in URL or keyword form for PostgreSQL select the postgres driver,
// everything else is treated as a path to an SQLite database.
func IsSQLite(dsn string) bool {
	return !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") && !strings.HasPrefix(dsn, "host=")
}

// dialector returns the gorm dialector for a DSN.
func dialector(dsn string) (gorm.Dialector, bool) {
	if !IsSQLite(dsn) {
		return postgres.Open(dsn), false
	}

	if !strings.Contains(dsn, "_pragma=foreign_keys") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn = fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator)
	}

	return sqlite.Open(dsn), true
}

// Connect opens the database, migrates the schema and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	d, isSQLite := dialector(dsn)
	db, err := gorm.Open(d, config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	if isSQLite {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("goalpost:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("goalpost:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("goalpost:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("goalpost:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("goalpost:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("goalpost:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("goalpost:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Raw row queries (SUM) only go through the row callbacks
	err = db.Callback().Row().After("*").Register("goalpost:after_row_general", generalCallback)
	if err != nil {
		return err
	}

	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Milestone positions are unique per goal
	if strings.Contains(msg, "UNIQUE constraint failed: milestones.goal_id, milestones.position") ||
		strings.Contains(msg, "idx_milestone_goal_position") {
		db.Error = ErrMilestonePositionNotUnique
		return
	}

	// Provider transaction IDs are unique system-wide. The ledger inserts with
	// ON CONFLICT DO NOTHING, so this only surfaces on direct inserts.
	if strings.Contains(msg, "UNIQUE constraint failed: donations.provider_transaction_id") ||
		strings.Contains(msg, "idx_donations_provider_transaction_id") {
		db.Error = ErrDuplicateTransaction
		return
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	db.Error = generalError(db.Error)
}

// generalError replaces errors of the database connection and the
// database server with ErrGeneral.
func generalError(err error) error {
	if !isDatabaseError(err) {
		return err
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return ErrGeneral
}

// isDatabaseError reports if err was caused by the database or the
// connection to it instead of the data in the request.
func isDatabaseError(err error) bool {
	var (
		sqliteErr *go_sqlite.Error
		pgErr     *pgconn.PgError
		netErr    net.Error
	)

	switch {
	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	case err.Error() == "sql: database is closed":
		return true
	case errors.Is(err, sql.ErrConnDone), errors.Is(err, sql.ErrTxDone), errors.Is(err, driver.ErrBadConn):
		return true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return true
	case errors.As(err, &sqliteErr), errors.As(err, &pgErr), errors.As(err, &netErr):
		return true
	case pgconn.Timeout(err), pgconn.SafeToRetry(err):
		return true
	}

	return false
}

// transaction runs fc in a transaction. Beginning and committing a
// transaction does not run any callbacks, their errors are handled here.
func transaction(db *gorm.DB, fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	err := db.Transaction(fc, opts...)
	if err != nil {
		return generalError(err)
	}

	return nil
}

// ReadTransaction runs fc in a read only transaction. All queries in fc read
// the same state of the database.
func ReadTransaction(db *gorm.DB, fc func(tx *gorm.DB) error) error {
	return transaction(db, fc, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Goal{}, Milestone{}, Donation{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
