package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bucketlist/internal/dbx"
	"github.com/dmitrijs2005/bucketlist/internal/server/repositories/items"
	"github.com/dmitrijs2005/bucketlist/internal/server/repositories/lists"
	"github.com/dmitrijs2005/bucketlist/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a *sql.DB or *sql.Tx,
// so a service can run several repository calls inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Lists(db dbx.DBTX) lists.Repository
	Items(db dbx.DBTX) items.Repository
}
