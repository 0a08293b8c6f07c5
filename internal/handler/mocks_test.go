package handler

import (
	"errors"
	"time"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
)

// Service mocks for handler tests, func-field style.

type MockBoardService struct {
	MockCreate func(actor domain.Actor, data domain.BoardCreationData) (*domain.Board, error)
	MockGet    func(actor domain.Actor, id domain.BoardId) (*domain.Board, error)
	MockGetAll func(actor domain.Actor) ([]domain.Board, error)
	MockUpdate func(actor domain.Actor, id domain.BoardId, data domain.BoardUpdateData) error
	MockDelete func(actor domain.Actor, id domain.BoardId) error
}

func (m *MockBoardService) Create(actor domain.Actor, data domain.BoardCreationData) (*domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, data)
	}
	return &domain.Board{Name: data.Name}, nil
}

func (m *MockBoardService) Get(actor domain.Actor, id domain.BoardId) (*domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(actor, id)
	}
	return &domain.Board{Id: id}, nil
}

func (m *MockBoardService) GetAll(actor domain.Actor) ([]domain.Board, error) {
	if m.MockGetAll != nil {
		return m.MockGetAll(actor)
	}
	return nil, nil
}

func (m *MockBoardService) Update(actor domain.Actor, id domain.BoardId, data domain.BoardUpdateData) error {
	if m.MockUpdate != nil {
		return m.MockUpdate(actor, id, data)
	}
	return nil
}

func (m *MockBoardService) Delete(actor domain.Actor, id domain.BoardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, id)
	}
	return nil
}

type MockFeedbackService struct {
	MockCreate       func(actor domain.Actor, data domain.FeedbackCreationData) (*domain.Feedback, error)
	MockGet          func(actor domain.Actor, id domain.FeedbackId) (*domain.Feedback, error)
	MockList         func(actor domain.Actor, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	MockUpdate       func(actor domain.Actor, id domain.FeedbackId, data domain.FeedbackUpdateData) error
	MockDelete       func(actor domain.Actor, id domain.FeedbackId) error
	MockSetStatus    func(actor domain.Actor, id domain.FeedbackId, status domain.FeedbackStatus) error
	MockToggleUpvote func(actor domain.Actor, id domain.FeedbackId) (bool, int, error)
}

func (m *MockFeedbackService) Create(actor domain.Actor, data domain.FeedbackCreationData) (*domain.Feedback, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, data)
	}
	return &domain.Feedback{Board: data.Board, Title: data.Title, Body: data.Body}, nil
}

func (m *MockFeedbackService) Get(actor domain.Actor, id domain.FeedbackId) (*domain.Feedback, error) {
	if m.MockGet != nil {
		return m.MockGet(actor, id)
	}
	return &domain.Feedback{Id: id}, nil
}

func (m *MockFeedbackService) List(actor domain.Actor, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	if m.MockList != nil {
		return m.MockList(actor, filter)
	}
	return nil, nil
}

func (m *MockFeedbackService) Update(actor domain.Actor, id domain.FeedbackId, data domain.FeedbackUpdateData) error {
	if m.MockUpdate != nil {
		return m.MockUpdate(actor, id, data)
	}
	return nil
}

func (m *MockFeedbackService) Delete(actor domain.Actor, id domain.FeedbackId) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, id)
	}
	return nil
}

func (m *MockFeedbackService) SetStatus(actor domain.Actor, id domain.FeedbackId, status domain.FeedbackStatus) error {
	if m.MockSetStatus != nil {
		return m.MockSetStatus(actor, id, status)
	}
	return nil
}

func (m *MockFeedbackService) ToggleUpvote(actor domain.Actor, id domain.FeedbackId) (bool, int, error) {
	if m.MockToggleUpvote != nil {
		return m.MockToggleUpvote(actor, id)
	}
	return true, 1, nil
}

type MockCommentService struct {
	MockCreate func(actor domain.Actor, data domain.CommentCreationData) (*domain.Comment, error)
	MockGet    func(actor domain.Actor, id domain.CommentId) (*domain.Comment, error)
	MockList   func(actor domain.Actor, feedback *domain.FeedbackId) ([]domain.Comment, error)
	MockUpdate func(actor domain.Actor, id domain.CommentId, body string) error
	MockDelete func(actor domain.Actor, id domain.CommentId) error
}

func (m *MockCommentService) Create(actor domain.Actor, data domain.CommentCreationData) (*domain.Comment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, data)
	}
	return &domain.Comment{Feedback: data.Feedback, Body: data.Body}, nil
}

func (m *MockCommentService) Get(actor domain.Actor, id domain.CommentId) (*domain.Comment, error) {
	if m.MockGet != nil {
		return m.MockGet(actor, id)
	}
	return &domain.Comment{Id: id}, nil
}

func (m *MockCommentService) List(actor domain.Actor, feedback *domain.FeedbackId) ([]domain.Comment, error) {
	if m.MockList != nil {
		return m.MockList(actor, feedback)
	}
	return nil, nil
}

func (m *MockCommentService) Update(actor domain.Actor, id domain.CommentId, body string) error {
	if m.MockUpdate != nil {
		return m.MockUpdate(actor, id, body)
	}
	return nil
}

func (m *MockCommentService) Delete(actor domain.Actor, id domain.CommentId) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, id)
	}
	return nil
}

type MockMembershipService struct {
	MockRequest      func(actor domain.Actor, board domain.BoardId, message string) (*domain.MembershipRequest, error)
	MockListForBoard func(actor domain.Actor, board domain.BoardId) ([]domain.MembershipRequest, error)
	MockApprove      func(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error)
	MockReject       func(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error)
}

func (m *MockMembershipService) Request(actor domain.Actor, board domain.BoardId, message string) (*domain.MembershipRequest, error) {
	if m.MockRequest != nil {
		return m.MockRequest(actor, board, message)
	}
	return &domain.MembershipRequest{Board: board, User: actor.Id, Message: message, Status: domain.RequestPending}, nil
}

func (m *MockMembershipService) ListForBoard(actor domain.Actor, board domain.BoardId) ([]domain.MembershipRequest, error) {
	if m.MockListForBoard != nil {
		return m.MockListForBoard(actor, board)
	}
	return nil, nil
}

func (m *MockMembershipService) Approve(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error) {
	if m.MockApprove != nil {
		return m.MockApprove(actor, id)
	}
	return &domain.MembershipRequest{Id: id, Status: domain.RequestApproved}, nil
}

func (m *MockMembershipService) Reject(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error) {
	if m.MockReject != nil {
		return m.MockReject(actor, id)
	}
	return &domain.MembershipRequest{Id: id, Status: domain.RequestRejected}, nil
}

type MockInviteService struct {
	MockCreate       func(actor domain.Actor, data domain.InviteCreationData) (*domain.BoardInvite, error)
	MockListForBoard func(actor domain.Actor, board domain.BoardId) ([]domain.BoardInvite, error)
	MockAccept       func(actor domain.Actor, token domain.InviteToken) (*domain.BoardInvite, error)
	MockRevoke       func(actor domain.Actor, token domain.InviteToken) error
}

func (m *MockInviteService) Create(actor domain.Actor, data domain.InviteCreationData) (*domain.BoardInvite, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, data)
	}
	return &domain.BoardInvite{Board: data.Board, Token: "tok", Active: true}, nil
}

func (m *MockInviteService) ListForBoard(actor domain.Actor, board domain.BoardId) ([]domain.BoardInvite, error) {
	if m.MockListForBoard != nil {
		return m.MockListForBoard(actor, board)
	}
	return nil, nil
}

func (m *MockInviteService) Accept(actor domain.Actor, token domain.InviteToken) (*domain.BoardInvite, error) {
	if m.MockAccept != nil {
		return m.MockAccept(actor, token)
	}
	return &domain.BoardInvite{Board: 1, Token: token, Active: true}, nil
}

func (m *MockInviteService) Revoke(actor domain.Actor, token domain.InviteToken) error {
	if m.MockRevoke != nil {
		return m.MockRevoke(actor, token)
	}
	return nil
}

type MockAnalyticsService struct {
	MockSummary       func(actor domain.Actor, board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error)
	MockCreatedPerDay func(actor domain.Actor, board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error)
	MockTopVoted      func(actor domain.Actor, board *domain.BoardId, limit int) ([]domain.Feedback, error)
}

func (m *MockAnalyticsService) Summary(actor domain.Actor, board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error) {
	if m.MockSummary != nil {
		return m.MockSummary(actor, board, from, to)
	}
	return &api.AnalyticsSummaryResponse{}, nil
}

func (m *MockAnalyticsService) CreatedPerDay(actor domain.Actor, board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error) {
	if m.MockCreatedPerDay != nil {
		return m.MockCreatedPerDay(actor, board, from, to)
	}
	return nil, nil
}

func (m *MockAnalyticsService) TopVoted(actor domain.Actor, board *domain.BoardId, limit int) ([]domain.Feedback, error) {
	if m.MockTopVoted != nil {
		return m.MockTopVoted(actor, board, limit)
	}
	return nil, nil
}

type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping() error { return m.Err }

var errStorage = errors.New("storage down")
