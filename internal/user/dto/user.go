package dto

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"displayName"`
	AvatarID    *string `json:"avatarId"`
}

type ReorderCampaignsRequest struct {
	CampaignOrder []string `json:"campaignOrder" binding:"required"`
}
