package dto

type CreateCampaignRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCampaignRequest struct {
	Name *string `json:"name"`
}

type UpdatePlayersRequest struct {
	PlayerIDs []string `json:"playerIds" binding:"required"`
}
