package backend

import (
	"pourpal-backoffice/internal/taxonomy"
	"pourpal-backoffice/internal/taxonomy/repository"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/restclient"
)

type implRepository struct {
	client *restclient.Client
	l      log.Logger
}

var _ repository.Repository = &implRepository{}

func New(client *restclient.Client, l log.Logger) *implRepository {
	return &implRepository{client: client, l: l}
}

var errorKinds = map[restclient.Kind]error{
	restclient.KindNotFound:     taxonomy.ErrNotFound,
	restclient.KindConflict:     taxonomy.ErrDuplicate,
	restclient.KindUnauthorized: taxonomy.ErrUnauthenticated,
	restclient.KindRejected:     taxonomy.ErrRejected,
}
