package repository

import (
	"context"
	"database/sql"
	"time"

	"lawwork/models"
)

// AssessmentRepo 把提交的评估写入线索库
type AssessmentRepo struct {
	DB *sql.DB
}

func NewAssessmentRepo(db *sql.DB) *AssessmentRepo {
	return &AssessmentRepo{DB: db}
}

// SaveSubmission 插入一条提交记录，payload按原文写入JSON列
func (r *AssessmentRepo) SaveSubmission(ctx context.Context, sub models.AssessmentSubmission) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO assessment_submissions (id, session_id, firm_name, payload, created_at)
		VALUES (?, ?, ?, CAST(? AS JSON), NOW())
	`, sub.ID, sub.SessionID, sub.FirmName, sub.Payload)
	return err
}

// CountSubmissionsSince 统计某时间点之后的提交数
func (r *AssessmentRepo) CountSubmissionsSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM assessment_submissions WHERE created_at >= ?`, since).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
