package domain

import "time"

// Step is the ordered setup wizard progression.
type Step int

const (
	StepDatabase  Step = 1
	StepUser      Step = 2
	StepCampaign  Step = 3
	StepMap       Step = 4
	StepCompleted Step = 5
)

// Setup is the singleton record tracking first-run progress. The server
// redirects clients into the setup flow while Completed is false.
type Setup struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Step      Step      `json:"step" gorm:"default:1"`
	Completed bool      `json:"completed" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
