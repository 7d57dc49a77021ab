package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/internal/taxonomy"
	"pourpal-backoffice/pkg/restclient"
)

func entryPath(kind taxonomy.Kind, id string) string {
	return "/" + kind.Resource + "/" + url.PathEscape(id)
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, kind taxonomy.Kind) ([]taxonomy.Entry, error) {
	var res map[string]json.RawMessage
	if err := r.client.WithBearer(sc.AccessToken).Get(ctx, "/"+kind.Resource, restclient.RequestOptions{}, &res); err != nil {
		r.l.Errorf(ctx, "taxonomy.repository.List %s: %v", kind.Resource, err)
		return nil, restclient.Translate(err, errorKinds)
	}

	raw, ok := res[kind.ListField]
	if !ok {
		return nil, fmt.Errorf("%w: %s envelope has no %q", taxonomy.ErrMalformed, kind.Resource, kind.ListField)
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", taxonomy.ErrMalformed, kind.Resource, err)
	}

	entries := make([]taxonomy.Entry, 0, len(rows))
	for _, row := range rows {
		id, _ := row[kind.IDField].(string)
		label, _ := row[kind.LabelField].(string)
		if id == "" {
			return nil, fmt.Errorf("%w: %s row without %s", taxonomy.ErrMalformed, kind.Resource, kind.IDField)
		}
		entries = append(entries, taxonomy.Entry{ID: id, Label: label})
	}
	return entries, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, kind taxonomy.Kind, label string) error {
	err := r.client.WithBearer(sc.AccessToken).Post(ctx, "/"+kind.Resource, restclient.RequestOptions{
		Body: map[string]string{kind.LabelField: label},
	}, nil)
	if err != nil {
		r.l.Errorf(ctx, "taxonomy.repository.Create %s: %v", kind.Resource, err)
		return restclient.Translate(err, errorKinds)
	}
	return nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, kind taxonomy.Kind, id, label string) error {
	err := r.client.WithBearer(sc.AccessToken).Put(ctx, entryPath(kind, id), restclient.RequestOptions{
		Body: map[string]string{kind.LabelField: label},
	}, nil)
	if err != nil {
		r.l.Errorf(ctx, "taxonomy.repository.Update %s: %v", kind.Resource, err)
		return restclient.Translate(err, errorKinds)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, kind taxonomy.Kind, id string) error {
	if err := r.client.WithBearer(sc.AccessToken).Delete(ctx, entryPath(kind, id), restclient.RequestOptions{}, nil); err != nil {
		r.l.Errorf(ctx, "taxonomy.repository.Delete %s: %v", kind.Resource, err)
		return restclient.Translate(err, errorKinds)
	}
	return nil
}

type countryList struct {
	Countries []struct {
		Code    string `json:"code"`
		Name    string `json:"name"`
		Emoji   string `json:"emoji"`
		Unicode string `json:"unicode"`
	} `json:"countries"`
}

func (r *implRepository) ListCountries(ctx context.Context, sc model.Scope) ([]taxonomy.Country, error) {
	var res countryList
	if err := r.client.WithBearer(sc.AccessToken).Get(ctx, "/"+taxonomy.CountriesResource, restclient.RequestOptions{}, &res); err != nil {
		r.l.Errorf(ctx, "taxonomy.repository.ListCountries: %v", err)
		return nil, restclient.Translate(err, errorKinds)
	}

	countries := make([]taxonomy.Country, len(res.Countries))
	for i, c := range res.Countries {
		countries[i] = taxonomy.Country{Code: c.Code, Name: c.Name, Emoji: c.Emoji, Unicode: c.Unicode}
	}
	return countries, nil
}
