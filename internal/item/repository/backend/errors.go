package backend

import (
	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/pkg/restclient"
)

var errorKinds = map[restclient.Kind]error{
	restclient.KindNotFound:     item.ErrNotFound,
	restclient.KindConflict:     item.ErrDuplicate,
	restclient.KindUnauthorized: item.ErrUnauthenticated,
	restclient.KindRejected:     item.ErrRejected,
}

func translate(err error) error {
	return restclient.Translate(err, errorKinds)
}
