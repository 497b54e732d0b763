package models

// Account is stored with its password exactly as submitted.
type Account struct {
	ID       int    `json:"id" db:"account_id" binding:"min=-2147483648,max=2147483647"`
	Username string `json:"username" db:"username"`
	Password string `json:"password" db:"password"`
}
