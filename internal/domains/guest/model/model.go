package model

import (
	"time"
)

const (
	EntityName = "guest"
)

type Guest struct {
	ID         string
	Name       string
	LastName   string
	Email      string
	Phone      string
	Document   string
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
	Notes      string
	CreatedAt  time.Time
}
