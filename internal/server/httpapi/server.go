// Package httpapi exposes the bucketlist services over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bucketlist/internal/logging"
	"github.com/dmitrijs2005/bucketlist/internal/server/models"
	"github.com/dmitrijs2005/bucketlist/internal/server/services"
)

// UserProvider is the slice of the user service the transport needs.
type UserProvider interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, userID int64) error
	Authenticate(ctx context.Context, tokenString string) (int64, error)
}

// ListProvider is the slice of the list service the transport needs.
type ListProvider interface {
	List(ctx context.Context, userID int64, q services.ListQuery) ([]*models.List, error)
	Create(ctx context.Context, userID int64, name string) (*models.List, error)
	Get(ctx context.Context, userID, listID int64) (*models.List, error)
	Rename(ctx context.Context, userID, listID int64, name string) (*models.List, error)
	Delete(ctx context.Context, userID, listID int64) error
}

// ItemProvider is the slice of the item service the transport needs.
type ItemProvider interface {
	Create(ctx context.Context, userID, listID int64, name string) (*models.List, error)
	Update(ctx context.Context, userID, listID, itemID int64, patch services.UpdateItemParams) (*models.Item, error)
	Delete(ctx context.Context, userID, listID, itemID int64) error
}

type Server struct {
	address string
	logger  logging.Logger
	users   UserProvider
	lists   ListProvider
	items   ItemProvider
}

func NewServer(a string, l logging.Logger, us UserProvider, ls ListProvider, is ItemProvider) (*Server, error) {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		lists:   ls,
		items:   is,
	}, nil
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestIDMiddleware())

	r.GET("/", s.home)
	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)
	r.GET("/auth/logout", s.authMiddleware(), s.logout)

	lists := r.Group("/bucketlists", s.authMiddleware())
	lists.GET("/", s.listBucketlists)
	lists.POST("/", s.createBucketlist)
	lists.GET("/:id", s.getBucketlist)
	lists.PUT("/:id", s.updateBucketlist)
	lists.DELETE("/:id", s.deleteBucketlist)
	lists.POST("/:id/items/", s.createItem)
	lists.PUT("/:id/items/:item_id", s.updateItem)
	lists.DELETE("/:id/items/:item_id", s.deleteItem)

	return r
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
