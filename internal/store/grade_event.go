package store

import (
	"context"
	"fmt"

	"github.com/abhisek/grammiz/ent"
	"github.com/abhisek/grammiz/ent/gradeevent"
)

func (r *eventRepo) AppendGradeEvent(ctx context.Context, data GradeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GradeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStage(data.Stage).
		SetDifficulty(data.Difficulty).
		SetSentence(data.Sentence).
		SetWork(data.Work).
		SetCorrect(data.Correct).
		SetFeedback(data.Feedback).
		SetCorrectData(data.CorrectData).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save grade event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGradeEvents(ctx context.Context, opts QueryOpts) ([]GradeRecord, error) {
	q := r.client.GradeEvent.Query().
		Order(ent.Desc(gradeevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(gradeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(gradeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(gradeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(gradeevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade events: %w", err)
	}

	out := make([]GradeRecord, len(events))
	for i, e := range events {
		out[i] = GradeRecord{
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
			SessionID:   e.SessionID,
			Stage:       e.Stage,
			Difficulty:  e.Difficulty,
			Sentence:    e.Sentence,
			Correct:     e.Correct,
			Feedback:    e.Feedback,
			CorrectData: e.CorrectData,
			TimeMs:      e.TimeMs,
		}
	}
	return out, nil
}

func (r *eventRepo) StageAccuracy(ctx context.Context) ([]StageStats, error) {
	events, err := r.client.GradeEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade events: %w", err)
	}

	byStage := make(map[string]*StageStats)
	var order []string
	for _, e := range events {
		st, ok := byStage[e.Stage]
		if !ok {
			st = &StageStats{Stage: e.Stage}
			byStage[e.Stage] = st
			order = append(order, e.Stage)
		}
		st.Attempts++
		if e.Correct {
			st.Correct++
		}
	}

	out := make([]StageStats, 0, len(order))
	for _, stage := range order {
		out = append(out, *byStage[stage])
	}
	return out, nil
}
