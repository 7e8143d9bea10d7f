package qr

import (
	"context"
	"errors"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/qr"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

type TokenServiceImpl struct {
	db *database.DB
	qr.QRRequestRepository
	attendance.TimeEntryRepository
	user.UserRepository
}

func NewTokenService(
	db *database.DB,
	qrRepo qr.QRRequestRepository,
	entryRepo attendance.TimeEntryRepository,
	userRepo user.UserRepository,
) qr.TokenService {
	return &TokenServiceImpl{
		db:                  db,
		QRRequestRepository: qrRepo,
		TimeEntryRepository: entryRepo,
		UserRepository:      userRepo,
	}
}

// Generate implements qr.TokenService.
func (s *TokenServiceImpl) Generate(ctx context.Context, req qr.GenerateRequest) (qr.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return qr.GenerateResponse{}, err
	}

	lead, err := s.UserRepository.GetByUsername(ctx, req.LeadUsername)
	if err != nil {
		return qr.GenerateResponse{}, err
	}
	if lead.Authority() != user.AuthorityEdgeScoped {
		return qr.GenerateResponse{}, qr.ErrOnlyLeadsCanIssue
	}

	member, err := s.UserRepository.GetByUsername(ctx, req.MemberUsername)
	if err != nil {
		return qr.GenerateResponse{}, err
	}
	if member.Role != user.RoleMember {
		return qr.GenerateResponse{}, qr.ErrSubjectNotMember
	}

	assigned, err := s.UserRepository.IsAssigned(ctx, lead.Username, member.Username)
	if err != nil {
		return qr.GenerateResponse{}, err
	}
	if !assigned {
		return qr.GenerateResponse{}, user.ErrNotAssignedToLead
	}

	// Issuance-time precondition. Verification re-checks it; this only stops
	// tokens that can never succeed from being issued at all.
	_, err = s.TimeEntryRepository.GetOpenEntry(ctx, member.Username)
	switch req.Action {
	case qr.ActionCheckIn:
		if err == nil {
			return qr.GenerateResponse{}, attendance.ErrOpenEntryExists
		}
		if !errors.Is(err, attendance.ErrNoOpenEntry) {
			return qr.GenerateResponse{}, err
		}
	case qr.ActionCheckOut:
		if errors.Is(err, attendance.ErrNoOpenEntry) {
			return qr.GenerateResponse{}, attendance.ErrNoOpenEntry
		}
		if err != nil {
			return qr.GenerateResponse{}, err
		}
	}

	token, err := newToken()
	if err != nil {
		return qr.GenerateResponse{}, err
	}

	now := time.Now().UTC()
	created, err := s.QRRequestRepository.Create(ctx, qr.QRRequest{
		Token:          token,
		LeadUsername:   lead.Username,
		MemberUsername: member.Username,
		Action:         req.Action,
		Status:         qr.StatusPending,
		CreatedAt:      now,
		ExpiresAt:      now.Add(qr.TokenTTL),
	})
	if err != nil {
		return qr.GenerateResponse{}, err
	}

	return qr.GenerateResponse{
		Token:            created.Token,
		MemberUsername:   member.Username,
		MemberName:       member.DisplayName,
		Action:           created.Action,
		ExpiresAt:        created.ExpiresAt.Format(time.RFC3339),
		ExpiresInSeconds: int(qr.TokenTTL / time.Second),
	}, nil
}

// Verify implements qr.TokenService.
func (s *TokenServiceImpl) Verify(ctx context.Context, req qr.VerifyRequest) (qr.VerifyResponse, error) {
	if err := req.Validate(); err != nil {
		return qr.VerifyResponse{}, err
	}

	var result qr.VerifyResponse

	// A precondition failure must consume the token, which means the
	// transaction has to commit while the operation still reports an error.
	// consumeErr carries that error past the commit.
	var consumeErr error

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.QRRequestRepository.GetByTokenForUpdate(txCtx, req.Token)
		if err != nil {
			if errors.Is(err, qr.ErrTokenNotFound) {
				return qr.ErrInvalidOrExpiredToken
			}
			return err
		}

		now := time.Now().UTC()
		if !request.Verifiable(now) {
			return qr.ErrInvalidOrExpiredToken
		}

		// A mismatched scan does not consume the token; the right member can
		// still use it within the window.
		if req.MemberUsername != "" && req.MemberUsername != request.MemberUsername {
			return qr.ErrSubjectMismatch
		}

		var entryID int64
		switch request.Action {
		case qr.ActionCheckIn:
			_, err := s.TimeEntryRepository.GetOpenEntry(txCtx, request.MemberUsername)
			if err == nil {
				if err := s.QRRequestRepository.MarkFailed(txCtx, request.Token); err != nil {
					return err
				}
				consumeErr = attendance.ErrOpenEntryExists
				return nil
			}
			if err != nil && !errors.Is(err, attendance.ErrNoOpenEntry) {
				return err
			}

			entry, err := s.TimeEntryRepository.Create(txCtx, attendance.TimeEntry{
				Username:   request.MemberUsername,
				InTime:     now,
				Status:     attendance.StatusApproved,
				ApprovedBy: &request.LeadUsername,
				ApprovedAt: &now,
			})
			if err != nil {
				return err
			}
			entryID = entry.ID

		case qr.ActionCheckOut:
			open, err := s.TimeEntryRepository.GetOpenEntry(txCtx, request.MemberUsername)
			if err != nil {
				if errors.Is(err, attendance.ErrNoOpenEntry) {
					if err := s.QRRequestRepository.MarkFailed(txCtx, request.Token); err != nil {
						return err
					}
					consumeErr = attendance.ErrNoOpenEntry
					return nil
				}
				return err
			}

			if err := s.TimeEntryRepository.Close(txCtx, open.ID, now); err != nil {
				return err
			}
			entryID = open.ID
		}

		if err := s.QRRequestRepository.MarkUsed(txCtx, request.Token, now); err != nil {
			return err
		}

		result = qr.VerifyResponse{
			Action:         request.Action,
			MemberUsername: request.MemberUsername,
			EntryID:        entryID,
			Timestamp:      now.Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return qr.VerifyResponse{}, err
	}
	if consumeErr != nil {
		return qr.VerifyResponse{}, consumeErr
	}

	return result, nil
}

// GetStatus implements qr.TokenService.
func (s *TokenServiceImpl) GetStatus(ctx context.Context, token string) (qr.StatusResponse, error) {
	request, err := s.QRRequestRepository.GetByToken(ctx, token)
	if err != nil {
		return qr.StatusResponse{}, err
	}

	return qr.ToStatusResponse(request, time.Now().UTC()), nil
}
