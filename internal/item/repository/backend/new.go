package backend

import (
	"pourpal-backoffice/internal/item/repository"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/restclient"
)

type implRepository struct {
	client *restclient.Client
	l      log.Logger
}

var _ repository.Repository = &implRepository{}

// New creates an item repository backed by the PourPal REST API.
func New(client *restclient.Client, l log.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
