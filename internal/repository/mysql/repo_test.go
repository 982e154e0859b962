package mysql

import (
	"testing"
	"time"

	"SiteExer/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. The
// repositories only use portable SQL, so sqlite stands in for MySQL here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.QuestionVoter{},
		&model.AnswerVoter{},
		&model.ContentOutbox{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Password: "x", Email: username + "@example.com"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func mustCreateQuestion(t *testing.T, db *gorm.DB, author *model.User, subject, content string, createdAt time.Time) *model.Question {
	t.Helper()
	q := &model.Question{AuthorID: author.ID, Subject: subject, Content: content, CreatedAt: createdAt}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("create question %q: %v", subject, err)
	}
	return q
}

func mustCreateAnswer(t *testing.T, db *gorm.DB, author *model.User, questionID uint64, content string) *model.Answer {
	t.Helper()
	a := &model.Answer{QuestionID: questionID, AuthorID: author.ID, Content: content}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("create answer %q: %v", content, err)
	}
	return a
}
