// Package model defines data structure.
package model

// Account is a registered user. Username is unique across accounts.
type Account struct {
	ID       int32  `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Message is a short text post owned by the account in PostedBy.
// PostedAt is the client supplied creation time in epoch milliseconds.
type Message struct {
	ID       int32  `json:"message_id"`
	PostedBy int32  `json:"posted_by"`
	Text     string `json:"message_text"`
	PostedAt int64  `json:"time_posted_epoch"`
}
