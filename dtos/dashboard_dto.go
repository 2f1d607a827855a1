package dtos

import "time"

// DashboardDTO is the aggregated "my projects" view: every non-deleted
// project of the user with its application history, plus the rewards granted
// across those projects.
type DashboardDTO struct {
	Projects []DashboardProjectDTO `json:"projects"`
	Rewards  []RewardDTO           `json:"rewards"`
	Totals   []RoundTotalDTO       `json:"totals"`
}

type DashboardProjectDTO struct {
	ProjectDTO
	Applications []ApplicationDTO `json:"applications"`
}

type RewardDTO struct {
	ID        string     `json:"id"`
	RoundID   string     `json:"roundId"`
	ProjectID string     `json:"projectId"`
	Amount    string     `json:"amount"`
	ClaimedAt *time.Time `json:"claimedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

type RoundTotalDTO struct {
	RoundID string `json:"roundId"`
	Total   string `json:"total"`
}
