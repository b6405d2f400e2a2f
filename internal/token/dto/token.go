package dto

// CreateTokenRequest places a token on a map. At most one of the character
// references may be set; a token with neither is a plain marker.
type CreateTokenRequest struct {
	X                    float64 `json:"x"`
	Y                    float64 `json:"y"`
	Width                float64 `json:"width"`
	Height               float64 `json:"height"`
	PlayerCharacterID    *string `json:"playerCharacterId,omitempty"`
	NonPlayerCharacterID *string `json:"nonPlayerCharacterId,omitempty"`
}

// UpdateTokenRequest is a partial update. Only position and size are mutable
// after creation; nil fields are left unchanged.
type UpdateTokenRequest struct {
	ID     string   `json:"id"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}
