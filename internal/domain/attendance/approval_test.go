package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionNormalize(t *testing.T) {
	assert.Equal(t, DecisionPending, Decision("").Normalize())
	assert.Equal(t, DecisionApproved, DecisionApproved.Normalize())
	assert.True(t, Decision("").Valid())
	assert.False(t, Decision("Maybe").Valid())
}

func TestRecord_DecisionAt_EmptyIsPending(t *testing.T) {
	var rec Record
	for level := 1; level <= NumLevels; level++ {
		assert.Equal(t, DecisionPending, rec.DecisionAt(level))
	}
	assert.Equal(t, DecisionPending, rec.DecisionAt(0))
	assert.Equal(t, DecisionPending, rec.DecisionAt(4))
}

func TestRecord_Approve_SequentialGating(t *testing.T) {
	var rec Record

	// Levels 2 and 3 are locked until level 1 approves.
	assert.ErrorIs(t, rec.Approve(2), ErrNotEligible)
	assert.ErrorIs(t, rec.Approve(3), ErrNotEligible)

	require.NoError(t, rec.Approve(1))
	assert.Equal(t, DecisionApproved, rec.DecisionAt(1))

	assert.ErrorIs(t, rec.Approve(3), ErrNotEligible)
	require.NoError(t, rec.Approve(2))
	require.NoError(t, rec.Approve(3))

	assert.Equal(t, "Approved (Level 3)", rec.OverallStatus().String())
}

func TestRecord_Approve_DecidedLevelIsFinal(t *testing.T) {
	var rec Record
	require.NoError(t, rec.Approve(1))

	assert.ErrorIs(t, rec.Approve(1), ErrNotEligible)

	require.NoError(t, rec.Reject(2, "false entry"))
	assert.ErrorIs(t, rec.Approve(2), ErrNotEligible)
	assert.ErrorIs(t, rec.Reject(2, "again"), ErrNotEligible)
}

func TestRecord_Approve_InvalidLevel(t *testing.T) {
	var rec Record
	assert.ErrorIs(t, rec.Approve(0), ErrInvalidLevel)
	assert.ErrorIs(t, rec.Approve(4), ErrInvalidLevel)
	assert.ErrorIs(t, rec.Reject(-1, "comment"), ErrInvalidLevel)
}

func TestRecord_Reject_RequiresComment(t *testing.T) {
	var rec Record

	assert.ErrorIs(t, rec.Reject(1, ""), ErrCommentRequired)
	assert.ErrorIs(t, rec.Reject(1, "   \t"), ErrCommentRequired)

	// A refused rejection leaves the record untouched.
	assert.Equal(t, DecisionPending, rec.DecisionAt(1))
	assert.Nil(t, rec.NoticeAt(1))
}

func TestRecord_Reject_StoresDecisionAndNoticeTogether(t *testing.T) {
	var rec Record
	require.NoError(t, rec.Approve(1))
	require.NoError(t, rec.Reject(2, "  timesheet mismatch  "))

	assert.Equal(t, DecisionRejected, rec.DecisionAt(2))
	require.NotNil(t, rec.NoticeAt(2))
	assert.Equal(t, "timesheet mismatch", *rec.NoticeAt(2))

	// Level 3 is locked behind the rejection.
	assert.ErrorIs(t, rec.Approve(3), ErrNotEligible)
}

func TestRecord_OverallStatus(t *testing.T) {
	var rec Record
	assert.Equal(t, "Pending", rec.OverallStatus().String())

	require.NoError(t, rec.Approve(1))
	assert.Equal(t, Status{State: DecisionApproved, Level: 1}, rec.OverallStatus())

	require.NoError(t, rec.Reject(2, "wrong location"))
	assert.Equal(t, Status{State: DecisionRejected, Level: 2}, rec.OverallStatus())
	assert.Equal(t, "Rejected (Level 2)", rec.OverallStatus().String())
}

func TestRecord_OverallStatus_RejectionOutranksApproval(t *testing.T) {
	// Even with the gating rule bypassed, a rejection anywhere governs.
	rec := Record{Level1: DecisionApproved, Level2: DecisionApproved, Level3: DecisionRejected}
	assert.Equal(t, Status{State: DecisionRejected, Level: 3}, rec.OverallStatus())
}

func TestRecord_RejectionNotice_HighestLevelWins(t *testing.T) {
	lower := "level one notice"
	higher := "level three notice"
	rec := Record{Level1Notice: &lower, Level3Notice: &higher}

	assert.Equal(t, higher, rec.RejectionNotice())

	rec.Level3Notice = nil
	assert.Equal(t, lower, rec.RejectionNotice())

	rec.Level1Notice = nil
	assert.Equal(t, "", rec.RejectionNotice())
}

func TestRecord_ActionableBy(t *testing.T) {
	var rec Record
	assert.True(t, rec.ActionableBy(1))
	assert.False(t, rec.ActionableBy(2))

	require.NoError(t, rec.Approve(1))
	assert.False(t, rec.ActionableBy(1))
	assert.True(t, rec.ActionableBy(2))
	assert.False(t, rec.ActionableBy(3))
}
