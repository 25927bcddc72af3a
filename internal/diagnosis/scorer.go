package diagnosis

import (
	"context"
	"fmt"
	"github.com/miyakoshi/septade/internal/errors"
	"log/slog"
)

// ErrValidation marks answer sets that cannot be scored at all. Callers are
// expected to surface these to the user instead of guessing.
var ErrValidation = errors.NewSentinel("invalid answer set")

const (
	minAnswerValue = 1
	maxAnswerValue = 7
	// neutralAnswerValue maps to zero points so that "neither agree nor
	// disagree" never moves an axis.
	neutralAnswerValue = 4
)

// Scorer converts raw Likert answers into axis scores against a fixed
// question catalog. The catalog is captured at construction so that the axis
// question counts are always derived from the data, never hard-coded.
type Scorer struct {
	questions map[int]Question
	catalog   []Question
	logger    *slog.Logger
}

// NewScorer validates the question catalog and builds a scorer for it.
func NewScorer(catalog []Question, logger *slog.Logger) (*Scorer, error) {
	questions := make(map[int]Question, len(catalog))
	for _, q := range catalog {
		if _, ok := questions[q.ID]; ok {
			return nil, errors.Wrap(ErrValidation, fmt.Sprintf("duplicate question id %d in catalog", q.ID))
		}
		switch q.Axis {
		case AxisE, AxisS, AxisT, AxisJ:
		default:
			return nil, errors.Wrap(ErrValidation, fmt.Sprintf("question %d has unknown axis %q", q.ID, q.Axis))
		}
		questions[q.ID] = q
	}
	return &Scorer{
		questions: questions,
		catalog:   catalog,
		logger:    logger.With("source", "Scorer"),
	}, nil
}

// AxisQuestionCounts reports how many catalog questions feed each axis. The
// natural bound of an axis score is three times its count.
func (s *Scorer) AxisQuestionCounts() map[Axis]int {
	counts := make(map[Axis]int, 4)
	for _, q := range s.catalog {
		counts[q.Axis]++
	}
	return counts
}

// Score accumulates one answer per catalog question into the four axis
// totals.
//
// The answer count must match the catalog size exactly; a mismatch fails with
// ErrValidation rather than silently truncating or padding. An answer whose
// question id is missing from the catalog is skipped with a warning so that a
// single malformed entry does not block the rest of the batch.
func (s *Scorer) Score(ctx context.Context, answers []Answer) (AxisScores, error) {
	var scores AxisScores

	if len(answers) != len(s.catalog) {
		return scores, errors.Wrap(ErrValidation,
			fmt.Sprintf("expected %d answers, got %d", len(s.catalog), len(answers)))
	}

	for _, answer := range answers {
		if answer.Value < minAnswerValue || answer.Value > maxAnswerValue {
			return AxisScores{}, errors.Wrap(ErrValidation,
				fmt.Sprintf("answer for question %d has value %d outside [%d,%d]",
					answer.QuestionID, answer.Value, minAnswerValue, maxAnswerValue))
		}

		question, ok := s.questions[answer.QuestionID]
		if !ok {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "skipping answer for unknown question",
				slog.Int("question_id", answer.QuestionID))
			continue
		}

		points := answer.Value - neutralAnswerValue
		if question.Reversed {
			points = -points
		}

		switch question.Axis {
		case AxisE:
			scores.E += points
		case AxisS:
			scores.S += points
		case AxisT:
			scores.T += points
		case AxisJ:
			scores.J += points
		}
	}

	return scores, nil
}
