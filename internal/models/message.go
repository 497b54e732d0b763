package models

// Identifiers are Postgres integer columns, so bound request values must fit
// in 32 bits.
type Message struct {
	ID          int    `json:"id" db:"message_id" binding:"min=-2147483648,max=2147483647"`
	PostedBy    int    `json:"postedBy" db:"posted_by" binding:"min=-2147483648,max=2147483647"`
	MessageText string `json:"messageText" db:"message_text"`
}
