package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourpal-backoffice/internal/item"
	"pourpal-backoffice/internal/item/repository"
	"pourpal-backoffice/internal/model"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/paging"
	"pourpal-backoffice/pkg/querycache"
)

type mockRepo struct {
	listCalls   int
	lastList    repository.ListOptions
	listOut     item.ListOutput
	listErr     error
	detailCalls int
	deleted     []string
	created     []item.ItemInput
	mutateErr   error
}

func (m *mockRepo) List(ctx context.Context, sc model.Scope, opt repository.ListOptions) (item.ListOutput, error) {
	m.listCalls++
	m.lastList = opt
	return m.listOut, m.listErr
}

func (m *mockRepo) Detail(ctx context.Context, sc model.Scope, id string) (item.Item, error) {
	m.detailCalls++
	return item.Item{ID: id}, nil
}

func (m *mockRepo) Create(ctx context.Context, sc model.Scope, opt repository.SaveOptions) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.created = append(m.created, opt.Input)
	return nil
}

func (m *mockRepo) Update(ctx context.Context, sc model.Scope, id string, opt repository.SaveOptions) error {
	return m.mutateErr
}

func (m *mockRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func authed() context.Context {
	return model.SetScopeToContext(context.Background(), model.Scope{AccessToken: "tok"})
}

func page(number, count, totalPages int) item.ListOutput {
	return item.ListOutput{Paging: paging.Paging{
		Count:      count,
		PageSize:   20,
		PageNumber: number,
		TotalCount: (totalPages-1)*20 + count,
		TotalPages: totalPages,
		FirstPage:  number == 1,
		LastPage:   number == totalPages,
	}}
}

func TestListNormalizesInput(t *testing.T) {
	repo := &mockRepo{listOut: page(1, 3, 1)}
	uc := New(repo, nil, log.NewNop())

	_, err := uc.List(authed(), item.ListInput{Search: "  ", PageSize: 7})
	require.NoError(t, err)
	assert.Nil(t, repo.lastList.Search)
	assert.Equal(t, 20, *repo.lastList.PageSize)
	assert.Equal(t, 1, *repo.lastList.PageNumber)

	_, err = uc.List(authed(), item.ListInput{Search: " gin ", PageSize: 50, PageNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, "gin", *repo.lastList.Search)
	assert.Equal(t, 50, *repo.lastList.PageSize)
}

func TestListRequiresScope(t *testing.T) {
	uc := New(&mockRepo{}, nil, log.NewNop())
	_, err := uc.List(context.Background(), item.ListInput{})
	assert.ErrorIs(t, err, item.ErrUnauthenticated)
}

func TestListRejectsInconsistentPaging(t *testing.T) {
	bad := page(1, 3, 2)
	bad.Paging.LastPage = true
	repo := &mockRepo{listOut: bad}
	uc := New(repo, querycache.New(8, time.Minute), log.NewNop())

	_, err := uc.List(authed(), item.ListInput{})
	assert.ErrorIs(t, err, item.ErrInvalidPaging)

	_, _ = uc.List(authed(), item.ListInput{})
	assert.Equal(t, 2, repo.listCalls, "invalid responses are not cached")
}

func TestListIsCachedUntilMutation(t *testing.T) {
	repo := &mockRepo{listOut: page(1, 3, 1)}
	uc := New(repo, querycache.New(8, time.Minute), log.NewNop())
	ctx := authed()

	_, err := uc.List(ctx, item.ListInput{})
	require.NoError(t, err)
	_, err = uc.List(ctx, item.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	_, err = uc.Detail(ctx, "it-1")
	require.NoError(t, err)
	_, err = uc.Detail(ctx, "it-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.detailCalls)

	require.NoError(t, uc.Create(ctx, item.ItemInput{Title: "Gin"}))

	_, err = uc.List(ctx, item.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	_, err = uc.Detail(ctx, "it-1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.detailCalls)
}

func TestFailedMutationKeepsCache(t *testing.T) {
	repo := &mockRepo{listOut: page(1, 3, 1)}
	uc := New(repo, querycache.New(8, time.Minute), log.NewNop())
	ctx := authed()

	_, _ = uc.List(ctx, item.ListInput{})
	repo.mutateErr = item.ErrDuplicate
	assert.ErrorIs(t, uc.Update(ctx, "it-1", item.ItemInput{}), item.ErrDuplicate)

	_, _ = uc.List(ctx, item.ListInput{})
	assert.Equal(t, 1, repo.listCalls)
}

func TestDeleteLastRowOfLastPage(t *testing.T) {
	repo := &mockRepo{listOut: page(3, 1, 3)}
	uc := New(repo, nil, log.NewNop())

	out, err := uc.Delete(authed(), item.DeleteInput{ID: "it-9", List: item.ListInput{PageNumber: 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, out.PageNumber)
	assert.Equal(t, []string{"it-9"}, repo.deleted)
}

func TestDeleteKeepsPage(t *testing.T) {
	tests := []struct {
		name   string
		before item.ListOutput
		number int
		want   int
	}{
		{"several rows left", page(3, 5, 3), 3, 3},
		{"first page", page(1, 1, 1), 1, 1},
		{"middle page", page(2, 20, 3), 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockRepo{listOut: tt.before}, nil, log.NewNop())
			out, err := uc.Delete(authed(), item.DeleteInput{ID: "x", List: item.ListInput{PageNumber: tt.number}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.PageNumber)
		})
	}
}

func TestDeleteWithoutListKeepsPage(t *testing.T) {
	repo := &mockRepo{listErr: errors.New("backend down")}
	uc := New(repo, nil, log.NewNop())

	out, err := uc.Delete(authed(), item.DeleteInput{ID: "x", List: item.ListInput{PageNumber: 4}})
	require.NoError(t, err)
	assert.Equal(t, 4, out.PageNumber)
}

func TestDeleteFailure(t *testing.T) {
	repo := &mockRepo{listOut: page(1, 1, 1), mutateErr: item.ErrNotFound}
	uc := New(repo, nil, log.NewNop())

	_, err := uc.Delete(authed(), item.DeleteInput{ID: "x"})
	assert.ErrorIs(t, err, item.ErrNotFound)
}
