package domain

import (
	"time"

	mediadomain "vtt-backend/internal/media/domain"
	userdomain "vtt-backend/internal/user/domain"
)

type CharacterSize string

const (
	SizeTiny       CharacterSize = "Tiny"
	SizeSmall      CharacterSize = "Small"
	SizeMedium     CharacterSize = "Medium"
	SizeLarge      CharacterSize = "Large"
	SizeHuge       CharacterSize = "Huge"
	SizeGargantuan CharacterSize = "Gargantuan"
)

// StatBlock carries the derived character stats. It is opaque to the
// token/map subsystem and stored as a JSON column.
type StatBlock struct {
	Abilities  []Ability  `json:"abilities,omitempty"`
	Skills     []Skill    `json:"skills,omitempty"`
	HitPoints  HitPoints  `json:"hitPoints"`
	ArmorClass ArmorClass `json:"armorClass"`
	Movement   Movement   `json:"movement"`
	Senses     Senses     `json:"senses"`
}

type Ability struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Score     int    `json:"score"`
	Modifier  int    `json:"modifier"`
	Save      int    `json:"save"`
}

type Skill struct {
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Bonus   int    `json:"bonus"`
	Ability string `json:"ability"`
}

type HitPoints struct {
	Current   int    `json:"current"`
	Maximum   int    `json:"maximum"`
	Temporary int    `json:"temporary"`
	Formula   string `json:"formula"`
}

type ArmorClass struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
}

type Movement struct {
	Burrow int  `json:"burrow"`
	Climb  int  `json:"climb"`
	Fly    int  `json:"fly"`
	Hover  bool `json:"hover"`
	Swim   int  `json:"swim"`
	Walk   int  `json:"walk"`
}

type Senses struct {
	Blindsight  int `json:"blindsight"`
	Darkvision  int `json:"darkvision"`
	Tremorsense int `json:"tremorsense"`
	Truesight   int `json:"truesight"`
}

// PlayerCharacter belongs to a campaign, is owned by its creating user, and
// may be controlled by a distinct set of users.
type PlayerCharacter struct {
	ID    string        `json:"id" gorm:"primaryKey"`
	Name  string        `json:"name" gorm:"not null"`
	Size  CharacterSize `json:"size" gorm:"default:Medium"`
	Stats StatBlock     `json:"stats" gorm:"serializer:json"`
	// Media
	Media []*mediadomain.Media `json:"media,omitempty" gorm:"many2many:player_character_media"`
	// Controlled by
	ControlledBy []*userdomain.User `json:"controlledBy,omitempty" gorm:"many2many:player_character_controllers"`
	// Campaign
	CampaignID string `json:"campaignId" gorm:"index;not null"`
	// Created by
	CreatedByID string           `json:"createdById" gorm:"index;not null"`
	CreatedBy   *userdomain.User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// NonPlayerCharacter mirrors PlayerCharacter but lives in its own table so a
// token can reference exactly one of the two.
type NonPlayerCharacter struct {
	ID    string        `json:"id" gorm:"primaryKey"`
	Name  string        `json:"name" gorm:"not null"`
	Size  CharacterSize `json:"size" gorm:"default:Medium"`
	Stats StatBlock     `json:"stats" gorm:"serializer:json"`
	// Media
	Media []*mediadomain.Media `json:"media,omitempty" gorm:"many2many:non_player_character_media"`
	// Controlled by
	ControlledBy []*userdomain.User `json:"controlledBy,omitempty" gorm:"many2many:non_player_character_controllers"`
	// Campaign
	CampaignID string `json:"campaignId" gorm:"index;not null"`
	// Created by
	CreatedByID string           `json:"createdById" gorm:"index;not null"`
	CreatedBy   *userdomain.User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
