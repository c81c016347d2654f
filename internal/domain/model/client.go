package model

import "time"

// Client is a known customer of the dairy.
type Client struct {
	ID        int64
	Name      string
	Contact   *string
	CreatedAt time.Time
}
