package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawwork/models"
)

func setupMockDB(t *testing.T) (*AssessmentRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAssessmentRepo(db), mock
}

func TestSaveSubmission(t *testing.T) {
	repo, mock := setupMockDB(t)
	sub := models.AssessmentSubmission{
		ID:        "7f1c1c52-0b5e-4c3b-9d44-1f6f3f6b8a10",
		SessionID: "0c7b0bb8-9a4c-4b8e-a7c6-53b9b2b5a3f1",
		FirmName:  "Johnson & Associates",
		Payload:   `{"firmName":"Johnson & Associates"}`,
	}

	mock.ExpectExec("INSERT INTO assessment_submissions").
		WithArgs(sub.ID, sub.SessionID, sub.FirmName, sub.Payload).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveSubmission(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubmissionError(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectExec("INSERT INTO assessment_submissions").
		WillReturnError(errors.New("connection refused"))

	err := repo.SaveSubmission(context.Background(), models.AssessmentSubmission{ID: "x"})
	assert.EqualError(t, err, "connection refused")
}

func TestCountSubmissionsSince(t *testing.T) {
	repo, mock := setupMockDB(t)
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM assessment_submissions").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.CountSubmissionsSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
