package httpapi

import (
	"time"

	"github.com/dmitrijs2005/bucketlist/internal/server/models"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createListRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateListRequest struct {
	Name string `json:"name" binding:"required"`
}

type createItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// updateItemRequest is a partial update: absent fields stay untouched.
type updateItemRequest struct {
	Name *string `json:"name"`
	Done *string `json:"done"`
}

type itemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Done        string    `json:"done"`
	DateCreated time.Time `json:"date_created"`
}

type listResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	CreatedBy   int64          `json:"created_by"`
	DateCreated time.Time      `json:"date_created"`
	Items       []itemResponse `json:"items"`
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{ID: i.ID, Name: i.Name, Done: i.Done, DateCreated: i.CreatedAt}
}

func toListResponse(l *models.List) listResponse {
	items := make([]itemResponse, 0, len(l.Items))
	for _, i := range l.Items {
		items = append(items, toItemResponse(i))
	}
	return listResponse{
		ID:          l.ID,
		Name:        l.Name,
		CreatedBy:   l.OwnerID,
		DateCreated: l.CreatedAt,
		Items:       items,
	}
}

func toListResponses(lists []*models.List) []listResponse {
	result := make([]listResponse, 0, len(lists))
	for _, l := range lists {
		result = append(result, toListResponse(l))
	}
	return result
}
