package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "pourpal-backoffice/internal/auth/delivery/http"
	authRepo "pourpal-backoffice/internal/auth/repository/backend"
	authUC "pourpal-backoffice/internal/auth/usecase"
	itemHTTP "pourpal-backoffice/internal/item/delivery/http"
	itemRepo "pourpal-backoffice/internal/item/repository/backend"
	itemUC "pourpal-backoffice/internal/item/usecase"
	"pourpal-backoffice/internal/middleware"
	orderHTTP "pourpal-backoffice/internal/order/delivery/http"
	orderRepo "pourpal-backoffice/internal/order/repository/backend"
	orderUC "pourpal-backoffice/internal/order/usecase"
	taxonomyHTTP "pourpal-backoffice/internal/taxonomy/delivery/http"
	taxonomyRepo "pourpal-backoffice/internal/taxonomy/repository/backend"
	taxonomyUC "pourpal-backoffice/internal/taxonomy/usecase"
	uploadHTTP "pourpal-backoffice/internal/upload/delivery/http"
	uploadUC "pourpal-backoffice/internal/upload/usecase"
)

// registerDomainRoutes wires every domain the same way:
//  1. Repository over the backend client
//  2. UseCase with the shared query cache
//  3. HTTP Handler
//  4. Routes under /v1
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	v1 := srv.gin.Group("/v1")

	srv.setupAuthDomain(v1, mw)
	srv.setupItemDomain(v1, mw)
	srv.setupTaxonomyDomain(v1, mw)
	srv.setupOrderDomain(v1, mw)

	if srv.imageStore != nil {
		srv.setupUploadDomain(v1, mw)
		srv.l.Infof(ctx, "Upload route registered at POST /v1/uploads/images")
	} else {
		srv.l.Infof(ctx, "Image store not configured, skipping upload route")
	}

	return nil
}

func (srv *HTTPServer) setupAuthDomain(v1 *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.backend, srv.l)
	uc := authUC.New(repo, srv.cache, srv.l)
	h := authHTTP.New(srv.l, uc, srv.cookies)
	authHTTP.RegisterRoutes(srv.gin, v1, h, mw, srv.proxy)
}

func (srv *HTTPServer) setupItemDomain(v1 *gin.RouterGroup, mw middleware.Middleware) {
	repo := itemRepo.New(srv.backend, srv.l)
	uc := itemUC.New(repo, srv.cache, srv.l)
	itemHTTP.RegisterRoutes(v1, itemHTTP.New(srv.l, uc), mw)
}

func (srv *HTTPServer) setupTaxonomyDomain(v1 *gin.RouterGroup, mw middleware.Middleware) {
	repo := taxonomyRepo.New(srv.backend, srv.l)
	uc := taxonomyUC.New(repo, srv.cache, srv.l)
	taxonomyHTTP.RegisterRoutes(v1, taxonomyHTTP.New(srv.l, uc), mw)
}

func (srv *HTTPServer) setupOrderDomain(v1 *gin.RouterGroup, mw middleware.Middleware) {
	repo := orderRepo.New(srv.backend, srv.l)
	uc := orderUC.New(repo, srv.cache, srv.l)
	orderHTTP.RegisterRoutes(v1, orderHTTP.New(srv.l, uc), mw)
}

func (srv *HTTPServer) setupUploadDomain(v1 *gin.RouterGroup, mw middleware.Middleware) {
	uc := uploadUC.New(srv.imageStore, srv.l)
	uploadHTTP.RegisterRoutes(v1, uploadHTTP.New(srv.l, uc), mw)
}
