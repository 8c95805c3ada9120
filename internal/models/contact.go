package models

import "time"

type Contact struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Budget    *string
	Timeline  *string
	CreatedAt time.Time
}
