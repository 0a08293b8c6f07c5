package service

import (
	"time"

	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
)

// Storage mocks shared by the service tests. Each method delegates to
// a func field when set and falls back to a zero-value success.

type MockBoardStorage struct {
	createBoardFunc   func(data domain.BoardCreationData, createdBy domain.UserId) (*domain.Board, error)
	listBoardsFunc    func(scope access.BoardScope) ([]domain.Board, error)
	getBoardFunc      func(scope access.BoardScope, id domain.BoardId) (*domain.Board, error)
	getBoardFactsFunc func(scope access.BoardScope, id domain.BoardId, actorId domain.UserId) (access.ObjectFacts, error)
	updateBoardFunc   func(id domain.BoardId, data domain.BoardUpdateData) error
	deleteBoardFunc   func(id domain.BoardId) error
}

func (m *MockBoardStorage) CreateBoard(data domain.BoardCreationData, createdBy domain.UserId) (*domain.Board, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(data, createdBy)
	}
	return &domain.Board{Name: data.Name, CreatedBy: createdBy}, nil
}

func (m *MockBoardStorage) ListBoards(scope access.BoardScope) ([]domain.Board, error) {
	if m.listBoardsFunc != nil {
		return m.listBoardsFunc(scope)
	}
	return nil, nil
}

func (m *MockBoardStorage) GetBoard(scope access.BoardScope, id domain.BoardId) (*domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(scope, id)
	}
	return &domain.Board{Id: id}, nil
}

func (m *MockBoardStorage) GetBoardFacts(scope access.BoardScope, id domain.BoardId, actorId domain.UserId) (access.ObjectFacts, error) {
	if m.getBoardFactsFunc != nil {
		return m.getBoardFactsFunc(scope, id, actorId)
	}
	return access.ObjectFacts{}, nil
}

func (m *MockBoardStorage) UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) error {
	if m.updateBoardFunc != nil {
		return m.updateBoardFunc(id, data)
	}
	return nil
}

func (m *MockBoardStorage) DeleteBoard(id domain.BoardId) error {
	if m.deleteBoardFunc != nil {
		return m.deleteBoardFunc(id)
	}
	return nil
}

type MockFeedbackStorage struct {
	createFeedbackFunc    func(data domain.FeedbackCreationData, createdBy domain.UserId) (*domain.Feedback, error)
	listFeedbackFunc      func(scope access.BoardScope, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	getFeedbackFunc       func(scope access.BoardScope, id domain.FeedbackId) (*domain.Feedback, error)
	getFeedbackFactsFunc  func(scope access.BoardScope, id domain.FeedbackId, actorId domain.UserId) (access.ObjectFacts, error)
	updateFeedbackFunc    func(id domain.FeedbackId, data domain.FeedbackUpdateData) error
	deleteFeedbackFunc    func(id domain.FeedbackId) error
	setFeedbackStatusFunc func(id domain.FeedbackId, status domain.FeedbackStatus) error
	toggleUpvoteFunc      func(id domain.FeedbackId, userId domain.UserId) (bool, int, error)
}

func (m *MockFeedbackStorage) CreateFeedback(data domain.FeedbackCreationData, createdBy domain.UserId) (*domain.Feedback, error) {
	if m.createFeedbackFunc != nil {
		return m.createFeedbackFunc(data, createdBy)
	}
	return &domain.Feedback{Board: data.Board, Title: data.Title, Body: data.Body, CreatedBy: createdBy}, nil
}

func (m *MockFeedbackStorage) ListFeedback(scope access.BoardScope, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	if m.listFeedbackFunc != nil {
		return m.listFeedbackFunc(scope, filter)
	}
	return nil, nil
}

func (m *MockFeedbackStorage) GetFeedback(scope access.BoardScope, id domain.FeedbackId) (*domain.Feedback, error) {
	if m.getFeedbackFunc != nil {
		return m.getFeedbackFunc(scope, id)
	}
	return &domain.Feedback{Id: id}, nil
}

func (m *MockFeedbackStorage) GetFeedbackFacts(scope access.BoardScope, id domain.FeedbackId, actorId domain.UserId) (access.ObjectFacts, error) {
	if m.getFeedbackFactsFunc != nil {
		return m.getFeedbackFactsFunc(scope, id, actorId)
	}
	return access.ObjectFacts{}, nil
}

func (m *MockFeedbackStorage) UpdateFeedback(id domain.FeedbackId, data domain.FeedbackUpdateData) error {
	if m.updateFeedbackFunc != nil {
		return m.updateFeedbackFunc(id, data)
	}
	return nil
}

func (m *MockFeedbackStorage) DeleteFeedback(id domain.FeedbackId) error {
	if m.deleteFeedbackFunc != nil {
		return m.deleteFeedbackFunc(id)
	}
	return nil
}

func (m *MockFeedbackStorage) SetFeedbackStatus(id domain.FeedbackId, status domain.FeedbackStatus) error {
	if m.setFeedbackStatusFunc != nil {
		return m.setFeedbackStatusFunc(id, status)
	}
	return nil
}

func (m *MockFeedbackStorage) ToggleUpvote(id domain.FeedbackId, userId domain.UserId) (bool, int, error) {
	if m.toggleUpvoteFunc != nil {
		return m.toggleUpvoteFunc(id, userId)
	}
	return true, 1, nil
}

type MockCommentStorage struct {
	createCommentFunc   func(data domain.CommentCreationData, createdBy domain.UserId) (*domain.Comment, error)
	listCommentsFunc    func(scope access.BoardScope, feedback *domain.FeedbackId) ([]domain.Comment, error)
	getCommentFunc      func(scope access.BoardScope, id domain.CommentId) (*domain.Comment, error)
	getCommentFactsFunc func(scope access.BoardScope, id domain.CommentId, actorId domain.UserId) (access.ObjectFacts, error)
	updateCommentFunc   func(id domain.CommentId, body string) error
	deleteCommentFunc   func(id domain.CommentId) error
}

func (m *MockCommentStorage) CreateComment(data domain.CommentCreationData, createdBy domain.UserId) (*domain.Comment, error) {
	if m.createCommentFunc != nil {
		return m.createCommentFunc(data, createdBy)
	}
	return &domain.Comment{Feedback: data.Feedback, Body: data.Body, CreatedBy: createdBy}, nil
}

func (m *MockCommentStorage) ListComments(scope access.BoardScope, feedback *domain.FeedbackId) ([]domain.Comment, error) {
	if m.listCommentsFunc != nil {
		return m.listCommentsFunc(scope, feedback)
	}
	return nil, nil
}

func (m *MockCommentStorage) GetComment(scope access.BoardScope, id domain.CommentId) (*domain.Comment, error) {
	if m.getCommentFunc != nil {
		return m.getCommentFunc(scope, id)
	}
	return &domain.Comment{Id: id}, nil
}

func (m *MockCommentStorage) GetCommentFacts(scope access.BoardScope, id domain.CommentId, actorId domain.UserId) (access.ObjectFacts, error) {
	if m.getCommentFactsFunc != nil {
		return m.getCommentFactsFunc(scope, id, actorId)
	}
	return access.ObjectFacts{}, nil
}

func (m *MockCommentStorage) UpdateComment(id domain.CommentId, body string) error {
	if m.updateCommentFunc != nil {
		return m.updateCommentFunc(id, body)
	}
	return nil
}

func (m *MockCommentStorage) DeleteComment(id domain.CommentId) error {
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

type MockMembershipStorage struct {
	createRequestFunc  func(board domain.BoardId, user domain.UserId, message string) (*domain.MembershipRequest, error)
	listRequestsFunc   func(board domain.BoardId) ([]domain.MembershipRequest, error)
	resolveRequestFunc func(id domain.RequestId, handler domain.UserId, approve bool) (*domain.MembershipRequest, error)
}

func (m *MockMembershipStorage) CreateMembershipRequest(board domain.BoardId, user domain.UserId, message string) (*domain.MembershipRequest, error) {
	if m.createRequestFunc != nil {
		return m.createRequestFunc(board, user, message)
	}
	return &domain.MembershipRequest{Board: board, User: user, Message: message, Status: domain.RequestPending}, nil
}

func (m *MockMembershipStorage) ListMembershipRequests(board domain.BoardId) ([]domain.MembershipRequest, error) {
	if m.listRequestsFunc != nil {
		return m.listRequestsFunc(board)
	}
	return nil, nil
}

func (m *MockMembershipStorage) ResolveMembershipRequest(id domain.RequestId, handler domain.UserId, approve bool) (*domain.MembershipRequest, error) {
	if m.resolveRequestFunc != nil {
		return m.resolveRequestFunc(id, handler, approve)
	}
	status := domain.RequestRejected
	if approve {
		status = domain.RequestApproved
	}
	return &domain.MembershipRequest{Id: id, Status: status}, nil
}

type MockInviteStorage struct {
	createInviteFunc     func(data domain.InviteCreationData, token domain.InviteToken, createdBy domain.UserId) (*domain.BoardInvite, error)
	listInvitesFunc      func(board domain.BoardId) ([]domain.BoardInvite, error)
	getInviteByTokenFunc func(token domain.InviteToken) (*domain.BoardInvite, error)
	acceptInviteFunc     func(token domain.InviteToken, user domain.UserId, now time.Time) (*domain.BoardInvite, error)
	revokeInviteFunc     func(token domain.InviteToken) error
}

func (m *MockInviteStorage) CreateInvite(data domain.InviteCreationData, token domain.InviteToken, createdBy domain.UserId) (*domain.BoardInvite, error) {
	if m.createInviteFunc != nil {
		return m.createInviteFunc(data, token, createdBy)
	}
	return &domain.BoardInvite{Board: data.Board, Token: token, CreatedBy: createdBy, Active: true}, nil
}

func (m *MockInviteStorage) ListInvites(board domain.BoardId) ([]domain.BoardInvite, error) {
	if m.listInvitesFunc != nil {
		return m.listInvitesFunc(board)
	}
	return nil, nil
}

func (m *MockInviteStorage) GetInviteByToken(token domain.InviteToken) (*domain.BoardInvite, error) {
	if m.getInviteByTokenFunc != nil {
		return m.getInviteByTokenFunc(token)
	}
	return &domain.BoardInvite{Token: token, Active: true}, nil
}

func (m *MockInviteStorage) AcceptInvite(token domain.InviteToken, user domain.UserId, now time.Time) (*domain.BoardInvite, error) {
	if m.acceptInviteFunc != nil {
		return m.acceptInviteFunc(token, user, now)
	}
	return &domain.BoardInvite{Token: token, Active: true}, nil
}

func (m *MockInviteStorage) RevokeInvite(token domain.InviteToken) error {
	if m.revokeInviteFunc != nil {
		return m.revokeInviteFunc(token)
	}
	return nil
}

type MockAnalyticsStorage struct {
	summaryFunc  func(board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error)
	perDayFunc   func(board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error)
	topVotedFunc func(board *domain.BoardId, limit int) ([]domain.Feedback, error)
}

func (m *MockAnalyticsStorage) FeedbackSummary(board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(board, from, to)
	}
	return &api.AnalyticsSummaryResponse{}, nil
}

func (m *MockAnalyticsStorage) FeedbackCreatedPerDay(board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error) {
	if m.perDayFunc != nil {
		return m.perDayFunc(board, from, to)
	}
	return nil, nil
}

func (m *MockAnalyticsStorage) TopVotedFeedback(board *domain.BoardId, limit int) ([]domain.Feedback, error) {
	if m.topVotedFunc != nil {
		return m.topVotedFunc(board, limit)
	}
	return nil, nil
}
