package store

import (
	"context"
	"fmt"

	"github.com/abhisek/intervu/ent"
	"github.com/abhisek/intervu/ent/answerrecord"
	"github.com/abhisek/intervu/ent/candidate"
)

// candidateRepo implements CandidateRepo using the ent client.
type candidateRepo struct {
	client *ent.Client
}

func (r *candidateRepo) Archive(ctx context.Context, rec ArchivedInterview) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}

	c, err := tx.Candidate.Create().
		SetSessionID(rec.SessionID).
		SetName(rec.Name).
		SetEmail(rec.Email).
		SetPhone(rec.Phone).
		SetRole(rec.Role).
		SetFinalScore(rec.FinalScore).
		SetSummary(rec.Summary).
		SetCompletedAt(rec.CompletedAt).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("archive candidate: %w", err)
	}

	for _, a := range rec.Answers {
		_, err := tx.AnswerRecord.Create().
			SetCandidate(c).
			SetQuestionIndex(a.QuestionIndex).
			SetQuestionID(a.QuestionID).
			SetQuestionText(a.QuestionText).
			SetDifficulty(a.Difficulty).
			SetAnswerText(a.AnswerText).
			SetScore(a.Score).
			SetFeedback(a.Feedback).
			SetConfidence(a.Confidence).
			SetSubmittedAt(a.SubmittedAt).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("archive answer %d: %w", a.QuestionIndex, err)
		}
	}

	return tx.Commit()
}

func (r *candidateRepo) List(ctx context.Context, limit int) ([]ArchivedInterview, error) {
	q := r.client.Candidate.Query().
		Order(ent.Desc(candidate.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out := make([]ArchivedInterview, len(rows))
	for i, c := range rows {
		out[i] = candidateToArchived(c, nil)
	}
	return out, nil
}

func (r *candidateRepo) Get(ctx context.Context, sessionID string) (*ArchivedInterview, error) {
	c, err := r.client.Candidate.Query().
		Where(candidate.SessionID(sessionID)).
		WithAnswers(func(q *ent.AnswerRecordQuery) {
			q.Order(ent.Asc(answerrecord.FieldQuestionIndex))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	answers := make([]ArchivedAnswer, len(c.Edges.Answers))
	for i, a := range c.Edges.Answers {
		answers[i] = ArchivedAnswer{
			QuestionIndex: a.QuestionIndex,
			QuestionID:    a.QuestionID,
			QuestionText:  a.QuestionText,
			Difficulty:    a.Difficulty,
			AnswerText:    a.AnswerText,
			Score:         a.Score,
			Feedback:      a.Feedback,
			Confidence:    a.Confidence,
			SubmittedAt:   a.SubmittedAt,
		}
	}

	rec := candidateToArchived(c, answers)
	return &rec, nil
}

func candidateToArchived(c *ent.Candidate, answers []ArchivedAnswer) ArchivedInterview {
	return ArchivedInterview{
		SessionID:   c.SessionID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Role:        c.Role,
		FinalScore:  c.FinalScore,
		Summary:     c.Summary,
		CompletedAt: c.CompletedAt,
		Answers:     answers,
	}
}
