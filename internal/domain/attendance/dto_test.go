package attendance

import (
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInRequest_Validate(t *testing.T) {
	req := CheckInRequest{Username: "alice"}
	assert.NoError(t, req.Validate())

	req = CheckInRequest{Username: "   "}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "username")
}

func TestDecideRequest_Validate(t *testing.T) {
	valid := DecideRequest{
		ApproverUsername: "lead1",
		EntryID:          42,
		Status:           StatusApproved,
	}
	assert.NoError(t, valid.Validate())

	rejected := valid
	rejected.Status = StatusRejected
	assert.NoError(t, rejected.Validate())

	cases := []struct {
		name  string
		req   DecideRequest
		field string
	}{
		{"missing approver", DecideRequest{EntryID: 42, Status: StatusApproved}, "approver_username"},
		{"missing entry id", DecideRequest{ApproverUsername: "lead1", Status: StatusApproved}, "entry_id"},
		{"pending not a decision", DecideRequest{ApproverUsername: "lead1", EntryID: 42, Status: StatusPending}, "status"},
		{"lowercase status", DecideRequest{ApproverUsername: "lead1", EntryID: 42, Status: "approved"}, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestSummaryRequest_Validate(t *testing.T) {
	valid := SummaryRequest{Username: "alice", Year: 2024, Month: 2}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   SummaryRequest
		field string
	}{
		{"missing username", SummaryRequest{Year: 2024, Month: 2}, "username"},
		{"month zero", SummaryRequest{Username: "alice", Year: 2024, Month: 0}, "month"},
		{"month thirteen", SummaryRequest{Username: "alice", Year: 2024, Month: 13}, "month"},
		{"year out of range", SummaryRequest{Username: "alice", Year: 1999, Month: 2}, "year"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}
