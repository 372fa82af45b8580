package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradeEvent records a single graded submission within a session.
type GradeEvent struct {
	ent.Schema
}

func (GradeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GradeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("stage").
			NotEmpty().
			Comment("monday, tuesday, wednesday, thursday, or friday"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("sentence").
			NotEmpty().
			Comment("The target sentence"),
		field.String("work").
			Comment("The submitted markup as JSON"),
		field.Bool("correct").
			Comment("Whether the submission was graded correct"),
		field.String("feedback").
			Default("").
			Comment("Grader feedback shown to the learner"),
		field.String("correct_data").
			Default("").
			Comment("Corrective explanation when wrong"),
		field.Int("time_ms").
			Comment("Milliseconds from sentence display to submit"),
	}
}

func (GradeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("stage"),
		index.Fields("correct"),
	}
}
