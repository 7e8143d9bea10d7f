package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

// listEntriesCap bounds the user-facing entry listing.
const listEntriesCap = 100

type LedgerServiceImpl struct {
	db *database.DB
	attendance.TimeEntryRepository
	user.UserRepository
}

func NewLedgerService(
	db *database.DB,
	entryRepo attendance.TimeEntryRepository,
	userRepo user.UserRepository,
) attendance.LedgerService {
	return &LedgerServiceImpl{
		db:                  db,
		TimeEntryRepository: entryRepo,
		UserRepository:      userRepo,
	}
}

// CheckIn implements attendance.LedgerService.
func (s *LedgerServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	u, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	// Members without a supervising lead have no approval path; their
	// entries would be stuck pending forever.
	if u.RequiresSupervision() {
		hasLead, err := s.UserRepository.HasLead(ctx, u.Username)
		if err != nil {
			return attendance.CheckResponse{}, err
		}
		if !hasLead {
			return attendance.CheckResponse{}, attendance.ErrMemberWithoutLead
		}
	}

	now := time.Now().UTC()
	entry := attendance.TimeEntry{
		Username: u.Username,
		InTime:   now,
		Status:   attendance.StatusPending,
	}
	if u.SelfApproving() {
		entry.Status = attendance.StatusApproved
		entry.ApprovedBy = &u.Username
		entry.ApprovedAt = &now
	}

	var created attendance.TimeEntry
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Friendly fast path; the partial unique index on open entries is
		// what actually guarantees exclusivity under concurrent check-ins.
		_, err := s.TimeEntryRepository.GetOpenEntry(txCtx, u.Username)
		if err == nil {
			return attendance.ErrOpenEntryExists
		}
		if !errors.Is(err, attendance.ErrNoOpenEntry) {
			return err
		}

		created, err = s.TimeEntryRepository.Create(txCtx, entry)
		return err
	})
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	return attendance.CheckResponse{
		EntryID: created.ID,
		Status:  created.Status,
	}, nil
}

// CheckOut implements attendance.LedgerService.
func (s *LedgerServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	var closed attendance.TimeEntry
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		entry, err := s.TimeEntryRepository.GetOpenEntry(txCtx, req.Username)
		if err != nil {
			return err
		}

		if err := s.TimeEntryRepository.Close(txCtx, entry.ID, time.Now().UTC()); err != nil {
			return err
		}
		closed = entry
		return nil
	})
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	return attendance.CheckResponse{
		EntryID: closed.ID,
		Status:  closed.Status,
	}, nil
}

// ListEntries implements attendance.LedgerService.
func (s *LedgerServiceImpl) ListEntries(ctx context.Context, username string) ([]attendance.EntryResponse, error) {
	if _, err := s.UserRepository.GetByUsername(ctx, username); err != nil {
		return nil, err
	}

	entries, err := s.TimeEntryRepository.ListByUsername(ctx, username, listEntriesCap)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, attendance.ToEntryResponse(e))
	}
	return responses, nil
}

// ListPending implements attendance.LedgerService.
func (s *LedgerServiceImpl) ListPending(ctx context.Context, approverUsername string) ([]attendance.EntryResponse, error) {
	approver, err := s.UserRepository.GetByUsername(ctx, approverUsername)
	if err != nil {
		return nil, err
	}

	authority := approver.Authority()
	if authority == user.AuthorityNone {
		return nil, attendance.ErrApprovalNotPermitted
	}

	entries, err := s.TimeEntryRepository.ListPending(ctx, approver.Username, authority)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, attendance.ToEntryResponse(e))
	}
	return responses, nil
}

// Decide implements attendance.LedgerService.
func (s *LedgerServiceImpl) Decide(ctx context.Context, req attendance.DecideRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	approver, err := s.UserRepository.GetByUsername(ctx, req.ApproverUsername)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	authority := approver.Authority()
	if authority == user.AuthorityNone {
		return attendance.EntryResponse{}, attendance.ErrApprovalNotPermitted
	}

	var decided attendance.TimeEntry
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		entry, err := s.TimeEntryRepository.GetForApproval(txCtx, req.EntryID, approver.Username, authority)
		if err != nil {
			return err
		}
		if entry.Decided() {
			return attendance.ErrEntryAlreadyDecided
		}

		if err := s.TimeEntryRepository.Decide(txCtx, entry.ID, req.Status, approver.Username, req.Notes); err != nil {
			return err
		}

		now := time.Now().UTC()
		entry.Status = req.Status
		entry.ApprovedBy = &approver.Username
		entry.ApprovedAt = &now
		entry.Notes = &req.Notes
		decided = entry
		return nil
	})
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	return attendance.ToEntryResponse(decided), nil
}

// Summarize implements attendance.LedgerService.
func (s *LedgerServiceImpl) Summarize(ctx context.Context, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	if _, err := s.UserRepository.GetByUsername(ctx, req.Username); err != nil {
		return attendance.SummaryResponse{}, err
	}

	return s.summarize(ctx, req.Username, req.Year, req.Month)
}

func (s *LedgerServiceImpl) summarize(ctx context.Context, username string, year, month int) (attendance.SummaryResponse, error) {
	monthStart, nextMonthStart := monthRange(year, month)
	expectedWorkdays := countWeekdays(monthStart, nextMonthStart)

	days, err := s.TimeEntryRepository.SummarizeMonth(ctx, username, monthStart, nextMonthStart)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to summarize %s %d-%02d: %w", username, year, month, err)
	}

	totalHours := 0.0
	details := make([]attendance.DaySummaryResponse, 0, len(days))
	for _, d := range days {
		totalHours += d.HoursWorked
		details = append(details, attendance.DaySummaryResponse{
			WorkDate:     d.WorkDate.Format("2006-01-02"),
			FirstCheckIn: d.FirstCheckIn.Format(time.RFC3339),
			LastCheckOut: d.LastCheckOut.Format(time.RFC3339),
			HoursWorked:  round2(d.HoursWorked),
		})
	}

	daysWorked := len(days)
	return attendance.SummaryResponse{
		Username: username,
		Year:     year,
		Month:    month,
		Summary: attendance.SummaryTotals{
			DaysWorked:       daysWorked,
			ExpectedWorkdays: expectedWorkdays,
			TotalHours:       round2(totalHours),
			// Day-count comparison only; this does not verify which
			// weekdays were covered.
			IsFullAttendance: daysWorked >= expectedWorkdays,
		},
		Details: details,
	}, nil
}

// SummarizeTeam implements attendance.LedgerService.
func (s *LedgerServiceImpl) SummarizeTeam(ctx context.Context, leadUsername string, year, month int) (attendance.TeamSummaryResponse, error) {
	req := attendance.SummaryRequest{Username: leadUsername, Year: year, Month: month}
	if err := req.Validate(); err != nil {
		return attendance.TeamSummaryResponse{}, err
	}

	lead, err := s.UserRepository.GetByUsername(ctx, leadUsername)
	if err != nil {
		return attendance.TeamSummaryResponse{}, err
	}
	if lead.Authority() != user.AuthorityEdgeScoped {
		return attendance.TeamSummaryResponse{}, user.ErrNotALead
	}

	team, err := s.UserRepository.ListTeam(ctx, lead.Username)
	if err != nil {
		return attendance.TeamSummaryResponse{}, err
	}

	members := make([]attendance.SummaryResponse, 0, len(team))
	for _, member := range team {
		summary, err := s.summarize(ctx, member.Username, year, month)
		if err != nil {
			return attendance.TeamSummaryResponse{}, err
		}
		members = append(members, summary)
	}

	return attendance.TeamSummaryResponse{
		LeadUsername: lead.Username,
		Year:         year,
		Month:        month,
		Members:      members,
	}, nil
}
