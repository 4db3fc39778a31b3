package model

type WaitTime struct {
	ID          int64  `db:"id" json:"id"`
	Department  string `db:"department" json:"department"`
	CurrentWait int    `db:"currentWait" json:"currentWait"`
	Status      string `db:"status" json:"status"`
	UpdatedAt   string `db:"updatedAt" json:"updatedAt"`
}
