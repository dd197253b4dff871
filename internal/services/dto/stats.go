package dto

import "time"

type DailyStatsResponse struct {
	Date             time.Time `json:"date"`
	RegisteredUsers  int       `json:"registered_users"`
	CreatedOrders    int       `json:"created_orders"`
	CreatedProposals int       `json:"created_proposals"`
}

type StatsRangeRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}
