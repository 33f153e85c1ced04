package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bucketlist/internal/common"
	"github.com/dmitrijs2005/bucketlist/internal/server/services"
)

// renderError maps service errors to HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "nothing found"})
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// pathID parses a numeric path parameter. A non-numeric value behaves like
// an id that matches nothing.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

func (s *Server) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the bucketlist API. Send a POST request to /auth/login with your login details to get started.",
	})
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide both a username and a password"})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "username", user.UserName)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.UserName})
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Provide both a username and a password."})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid login details."})
			return
		}
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) logout(c *gin.Context) {
	if err := s.users.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully."})
}

func (s *Server) listBucketlists(c *gin.Context) {
	search, hasSearch := c.GetQuery("q")
	q := services.ParseListQuery(c.Query("limit"), c.Query("page"), search, hasSearch)

	lists, err := s.lists.List(c.Request.Context(), currentUserID(c), q)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResponses(lists))
}

func (s *Server) createBucketlist(c *gin.Context) {
	var req createListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	list, err := s.lists.Create(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toListResponse(list))
}

func (s *Server) getBucketlist(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.renderError(c, err)
		return
	}

	list, err := s.lists.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResponse(list))
}

func (s *Server) updateBucketlist(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.renderError(c, err)
		return
	}

	var req updateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	list, err := s.lists.Rename(c.Request.Context(), currentUserID(c), id, req.Name)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResponse(list))
}

func (s *Server) deleteBucketlist(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.renderError(c, err)
		return
	}

	if err := s.lists.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Bucketlist %d deleted successfully.", id)})
}

func (s *Server) createItem(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.renderError(c, err)
		return
	}

	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	list, err := s.items.Create(c.Request.Context(), currentUserID(c), id, req.Name)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toListResponse(list))
}

func (s *Server) updateItem(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.renderError(c, err)
		return
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		s.renderError(c, err)
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := services.UpdateItemParams{Name: req.Name, Done: req.Done}
	item, err := s.items.Update(c.Request.Context(), currentUserID(c), id, itemID, patch)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) deleteItem(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.renderError(c, err)
		return
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		s.renderError(c, err)
		return
	}

	if err := s.items.Delete(c.Request.Context(), currentUserID(c), id, itemID); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Item %d from bucketlist %d deleted successfully.", itemID, id),
	})
}
