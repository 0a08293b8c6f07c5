package api

import (
	"github.com/feedboard-dev/feedboard/internal/domain"
)

type RequestMembershipRequest struct {
	Message string `json:"message"`
}

type MembershipRequestListResponse struct {
	Requests []domain.MembershipRequest `json:"requests"`
}
