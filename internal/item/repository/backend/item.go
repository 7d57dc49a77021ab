package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/internal/item/repository"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/restclient"
)

func itemPath(id string) string {
	return "/items/" + url.PathEscape(id)
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opt repository.ListOptions) (item.ListOutput, error) {
	var res wireList
	err := r.client.WithBearer(sc.AccessToken).Get(ctx, "/items", restclient.RequestOptions{
		Params: restclient.Params{
			"search":      opt.Search,
			"page_size":   opt.PageSize,
			"page_number": opt.PageNumber,
		},
	}, &res)
	if err != nil {
		r.l.Errorf(ctx, "item.repository.List: %v", err)
		return item.ListOutput{}, translate(err)
	}

	items, err := toItems(res.Items)
	if err != nil {
		r.l.Errorf(ctx, "item.repository.List toItems: %v", err)
		return item.ListOutput{}, err
	}
	return item.ListOutput{Items: items, Paging: res.Paging}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (item.Item, error) {
	var raw json.RawMessage
	if err := r.client.WithBearer(sc.AccessToken).Get(ctx, itemPath(id), restclient.RequestOptions{}, &raw); err != nil {
		r.l.Errorf(ctx, "item.repository.Detail: %v", err)
		return item.Item{}, translate(err)
	}
	if len(raw) == 0 {
		return item.Item{}, fmt.Errorf("%w: empty body", item.ErrMalformedRecord)
	}

	w, err := decodeDetail(raw)
	if err != nil {
		return item.Item{}, err
	}
	return toItem(w)
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opt repository.SaveOptions) error {
	err := r.client.WithBearer(sc.AccessToken).Post(ctx, "/items", restclient.RequestOptions{
		Body: toWireInput(opt.Input),
	}, nil)
	if err != nil {
		r.l.Errorf(ctx, "item.repository.Create: %v", err)
		return translate(err)
	}
	return nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, id string, opt repository.SaveOptions) error {
	err := r.client.WithBearer(sc.AccessToken).Put(ctx, itemPath(id), restclient.RequestOptions{
		Body: toWireInput(opt.Input),
	}, nil)
	if err != nil {
		r.l.Errorf(ctx, "item.repository.Update: %v", err)
		return translate(err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := r.client.WithBearer(sc.AccessToken).Delete(ctx, itemPath(id), restclient.RequestOptions{}, nil); err != nil {
		r.l.Errorf(ctx, "item.repository.Delete: %v", err)
		return translate(err)
	}
	return nil
}
