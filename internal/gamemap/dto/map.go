package dto

// CreateMapRequest creates a map inside a campaign.
type CreateMapRequest struct {
	Name            string   `json:"name" binding:"required"`
	CampaignID      string   `json:"campaignId" binding:"required"`
	MediaIDs        []string `json:"mediaIds"`
	SelectedMediaID *string  `json:"selectedMediaId"`
}

// UpdateMapRequest is a partial map update; nil fields are unchanged.
type UpdateMapRequest struct {
	Name            *string  `json:"name"`
	MediaIDs        []string `json:"mediaIds"`
	SelectedMediaID *string  `json:"selectedMediaId"`
}

// DeleteMapRequest carries the campaign ID so clients can target the right
// cache key when reconciling the optimistic delete.
type DeleteMapRequest struct {
	CampaignID string `json:"campaignId"`
}

// ListMapsQuery filters, sorts and pages a map listing. Search matches map
// names with typo tolerance.
type ListMapsQuery struct {
	CampaignID string `form:"campaignId"`
	Search     string `form:"search"`
	OrderBy    string `form:"orderBy"`
	Order      string `form:"order"`
	Skip       int    `form:"skip"`
	Take       int    `form:"take"`
}
