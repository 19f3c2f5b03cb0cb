package attendance

import (
	"fmt"
	"strings"
)

// NumLevels is the number of sequential approval levels every record
// passes through.
const NumLevels = 3

// DecisionAt returns the decision stored at the given level, Pending when
// none is stored. Levels outside 1..NumLevels are Pending.
func (r *Record) DecisionAt(level int) Decision {
	switch level {
	case 1:
		return r.Level1.Normalize()
	case 2:
		return r.Level2.Normalize()
	case 3:
		return r.Level3.Normalize()
	}
	return DecisionPending
}

// NoticeAt returns the rejection notice stored at the given level, if any.
func (r *Record) NoticeAt(level int) *string {
	switch level {
	case 1:
		return r.Level1Notice
	case 2:
		return r.Level2Notice
	case 3:
		return r.Level3Notice
	}
	return nil
}

func (r *Record) setDecision(level int, d Decision, notice *string) {
	switch level {
	case 1:
		r.Level1, r.Level1Notice = d, notice
	case 2:
		r.Level2, r.Level2Notice = d, notice
	case 3:
		r.Level3, r.Level3Notice = d, notice
	}
}

// Eligible reports whether the given level may transition out of Pending:
// the level itself must still be Pending, and every lower level must
// already be Approved. Level 1 has no precondition beyond being Pending.
func (r *Record) Eligible(level int) bool {
	if level < 1 || level > NumLevels {
		return false
	}
	if r.DecisionAt(level) != DecisionPending {
		return false
	}
	if level > 1 && r.DecisionAt(level-1) != DecisionApproved {
		return false
	}
	return true
}

// ActionableBy reports whether the record belongs in the worklist of the
// given approval level.
func (r *Record) ActionableBy(level int) bool {
	return r.Eligible(level)
}

// Approve transitions the given level from Pending to Approved. It refuses
// with ErrNotEligible when the level's gating precondition is unmet or the
// level has already been decided; the record is left unchanged.
func (r *Record) Approve(level int) error {
	if level < 1 || level > NumLevels {
		return ErrInvalidLevel
	}
	if !r.Eligible(level) {
		return ErrNotEligible
	}
	r.setDecision(level, DecisionApproved, nil)
	return nil
}

// Reject transitions the given level from Pending to Rejected, storing the
// rejection comment alongside in the same step. A level is never Rejected
// without its comment. An empty (after trimming) comment refuses the
// transition with ErrCommentRequired and leaves the record unchanged.
func (r *Record) Reject(level int, comment string) error {
	if level < 1 || level > NumLevels {
		return ErrInvalidLevel
	}
	if !r.Eligible(level) {
		return ErrNotEligible
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrCommentRequired
	}
	r.setDecision(level, DecisionRejected, &comment)
	return nil
}

// Status is the derived overall standing of a record: the governing
// decision and the level it was made at. Level is 0 while fully pending.
type Status struct {
	State Decision
	Level int
}

func (s Status) String() string {
	if s.State == DecisionPending {
		return "Pending"
	}
	return fmt.Sprintf("%s (Level %d)", s.State, s.Level)
}

// OverallStatus derives the record's overall standing. A rejection at any
// level outranks approvals, higher levels outrank lower ones. Under the
// gating rule a rejection at level k implies approvals below it, so the
// rejected branch fires for at most one level in practice.
func (r *Record) OverallStatus() Status {
	for level := NumLevels; level >= 1; level-- {
		if r.DecisionAt(level) == DecisionRejected {
			return Status{State: DecisionRejected, Level: level}
		}
	}
	for level := NumLevels; level >= 1; level-- {
		if r.DecisionAt(level) == DecisionApproved {
			return Status{State: DecisionApproved, Level: level}
		}
	}
	return Status{State: DecisionPending}
}

// RejectionNotice returns the highest-level stored rejection comment, or
// "" when none exists. Highest level wins deterministically even if the
// gating invariant were violated and several notices existed at once.
func (r *Record) RejectionNotice() string {
	for level := NumLevels; level >= 1; level-- {
		if notice := r.NoticeAt(level); notice != nil && *notice != "" {
			return *notice
		}
	}
	return ""
}
