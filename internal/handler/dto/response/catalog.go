package response

import (
	"petcare-booking/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

type PlanResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Features    []string `json:"features"`
}

type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type TimeSlotsResponse struct {
	TimeSlots []string `json:"timeSlots"`
}

func FromPlan(p catalog.Plan) *PlanResponse {
	var resp PlanResponse
	_ = copier.Copy(&resp, &p)
	return &resp
}

func FromPlans(plans []catalog.Plan) []*PlanResponse {
	out := make([]*PlanResponse, len(plans))
	for i, p := range plans {
		out[i] = FromPlan(p)
	}
	return out
}

func FromBranch(b catalog.Branch) *BranchResponse {
	var resp BranchResponse
	_ = copier.Copy(&resp, &b)
	return &resp
}

func FromBranches(branches []catalog.Branch) []*BranchResponse {
	out := make([]*BranchResponse, len(branches))
	for i, b := range branches {
		out[i] = FromBranch(b)
	}
	return out
}
