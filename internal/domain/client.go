package domain

import "time"

// Client описывает постоянного клиента. В текущем объёме — справочные данные.
type Client struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Points     int
	TotalSpent int64 // в центах
	LastVisit  time.Time
}
