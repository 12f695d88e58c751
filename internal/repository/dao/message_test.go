package dao

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*egorm.Component, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestMessageDAOCreate(t *testing.T) {
	t.Parallel()

	t.Run("落库并回填主键", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		dao := NewMessageDAO(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `messages`").
			WillReturnResult(sqlmock.NewResult(42, 1))
		mock.ExpectCommit()

		created, err := dao.Create(context.Background(), Message{
			CatererID:     10,
			ContactID:     101,
			RecipientName: "Ravi Traders",
			MessageText:   "Delivery tomorrow 9am",
			ContactMethod: "EMAIL",
			Status:        "SENT",
			SentAt:        time.Now().UnixMilli(),
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("发送时间缺省取当前时间", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		dao := NewMessageDAO(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `messages`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		before := time.Now().UnixMilli()
		created, err := dao.Create(context.Background(), Message{
			CatererID:     10,
			MessageText:   "hello",
			ContactMethod: "SMS",
			Status:        "SENT",
		})
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, created.SentAt, before)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMessageDAOFindByCaterer(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	dao := NewMessageDAO(db)

	rows := sqlmock.NewRows([]string{
		"id", "caterer_id", "contact_id", "recipient_name",
		"recipient_phone", "message_text", "contact_method", "status", "sent_at",
	}).
		AddRow(3, 10, 101, "Ravi Traders", "9876543210", "later", "EMAIL", "SENT", 3000).
		AddRow(2, 10, 0, "Manual Dealer", "9000000000", "earlier", "SMS", "SENT", 2000)

	// 历史按发送时间倒序，同一毫秒内按主键倒序
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `messages` WHERE caterer_id = ? ORDER BY sent_at DESC, id DESC")).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	msgs, err := dao.FindByCaterer(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, int64(3), msgs[0].ID)
	assert.Equal(t, int64(2), msgs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageDAOCountByCaterer(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	dao := NewMessageDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM `messages` WHERE caterer_id = ?")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(45))

	cnt, err := dao.CountByCaterer(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(45), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
