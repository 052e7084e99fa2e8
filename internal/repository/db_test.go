package repository

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementLog keeps every SQL string the driver was asked to run.
type statementLog struct {
	mu   sync.Mutex
	all  []string
	seen map[string]struct{}
}

func (l *statementLog) match(expectedSQL, actualSQL string) error {
	l.mu.Lock()
	if _, ok := l.seen[actualSQL]; !ok {
		l.seen[actualSQL] = struct{}{}
		l.all = append(l.all, actualSQL)
	}
	l.mu.Unlock()
	return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
}

func (l *statementLog) joined() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.all, "\n")
}

// newMockDB opens gorm over sqlmock with the postgres dialector, so statements
// are built exactly as they are against a real server.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *statementLog) {
	t.Helper()

	log := &statementLog{seen: map[string]struct{}{}}
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(log.match)))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Discard,
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return db, mock, log
}

// sqlLike builds a pattern that matches the fragments in order.
func sqlLike(fragments ...string) string {
	quoted := make([]string, len(fragments))
	for i, f := range fragments {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return strings.Join(quoted, ".*")
}

func idRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id"})
	for _, id := range ids {
		rows.AddRow(id)
	}
	return rows
}
