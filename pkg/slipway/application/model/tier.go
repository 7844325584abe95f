package model

type TierID = string

const (
	TierDev   TierID = "dev"
	TierStage TierID = "stage"
	TierProd  TierID = "prod"
)

type Tier struct {
	ID     TierID
	Remote string
	Suffix string
}

// Tiers returns the environments in promotion order. The prod remote keeps
// the platform-conventional "heroku" alias.
func Tiers() []Tier {
	return []Tier{
		{ID: TierDev, Remote: "dev", Suffix: "-dev"},
		{ID: TierStage, Remote: "stage", Suffix: "-stage"},
		{ID: TierProd, Remote: "heroku", Suffix: "-prod"},
	}
}
