// Package cli implements the interactive command-line client for the
// bucketlist API.
package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bucketlist/internal/client/api"
	"github.com/dmitrijs2005/bucketlist/internal/client/config"
)

type App struct {
	config   *config.Config
	client   api.Client
	userName string
	reader   *bufio.Reader
	out      *os.File
}

func NewApp(c *config.Config) (*App, error) {
	client := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	return &App{
		config: c,
		client: client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Run() {
	fmt.Println("Welcome to the bucketlist CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(a, a.getStatus, scanner)
}
