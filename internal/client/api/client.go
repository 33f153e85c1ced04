// Package api implements the HTTP client for the bucketlist backend.
package api

import (
	"context"
	"time"
)

// Client is the API surface the CLI operates against.
type Client interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Lists(ctx context.Context, search string) ([]BucketList, error)
	CreateList(ctx context.Context, name string) (*BucketList, error)
	GetList(ctx context.Context, id int64) (*BucketList, error)
	DeleteList(ctx context.Context, id int64) error
	AddItem(ctx context.Context, listID int64, name string) (*BucketList, error)
	SetItemDone(ctx context.Context, listID, itemID int64, done string) (*BucketListItem, error)
	IsLoggedIn() bool
}

// BucketList mirrors the server's list representation.
type BucketList struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	CreatedBy   int64            `json:"created_by"`
	DateCreated time.Time        `json:"date_created"`
	Items       []BucketListItem `json:"items"`
}

// BucketListItem mirrors the server's item representation.
type BucketListItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Done        string    `json:"done"`
	DateCreated time.Time `json:"date_created"`
}
