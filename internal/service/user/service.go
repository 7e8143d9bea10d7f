package user

import (
	"context"

	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type DirectoryServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewDirectoryService(db *database.DB, userRepo user.UserRepository) user.DirectoryService {
	return &DirectoryServiceImpl{
		db:             db,
		UserRepository: userRepo,
	}
}

// GetUser implements user.DirectoryService.
func (s *DirectoryServiceImpl) GetUser(ctx context.Context, username string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByUsername(ctx, username)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

// GetLead implements user.DirectoryService.
func (s *DirectoryServiceImpl) GetLead(ctx context.Context, memberUsername string) (user.UserResponse, error) {
	if _, err := s.UserRepository.GetByUsername(ctx, memberUsername); err != nil {
		return user.UserResponse{}, err
	}

	lead, err := s.UserRepository.GetLead(ctx, memberUsername)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(lead), nil
}

// ListTeam implements user.DirectoryService.
func (s *DirectoryServiceImpl) ListTeam(ctx context.Context, leadUsername string) ([]user.UserResponse, error) {
	lead, err := s.UserRepository.GetByUsername(ctx, leadUsername)
	if err != nil {
		return nil, err
	}
	if lead.Role != user.RoleLead {
		return nil, user.ErrNotALead
	}

	team, err := s.UserRepository.ListTeam(ctx, lead.Username)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(team))
	for _, member := range team {
		responses = append(responses, user.ToUserResponse(member))
	}
	return responses, nil
}

// AssignLead implements user.DirectoryService.
func (s *DirectoryServiceImpl) AssignLead(ctx context.Context, req user.AssignLeadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	lead, err := s.UserRepository.GetByUsername(ctx, req.LeadUsername)
	if err != nil {
		return err
	}
	if lead.Role != user.RoleLead {
		return user.ErrNotALead
	}

	member, err := s.UserRepository.GetByUsername(ctx, req.MemberUsername)
	if err != nil {
		return err
	}
	if member.Role != user.RoleMember {
		return user.ErrNotAMember
	}

	// The unique constraints on lead_assignments are authoritative; the
	// repository maps duplicate edges to the matching domain error.
	_, err = s.UserRepository.CreateAssignment(ctx, lead.Username, member.Username)
	return err
}
