package models

type RegisterPushTokenRequest struct {
	Token string `json:"token"`
}
