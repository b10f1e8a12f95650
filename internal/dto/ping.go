package dto

import "time"

type PingResponse struct {
	Message    string    `json:"message"`
	ServerTime time.Time `json:"serverTime"`
}
