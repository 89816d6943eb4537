package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
	"example.com/storeman/internal/infra/logger"
	"example.com/storeman/internal/interface/render"
	"example.com/storeman/internal/usecase/table"
)

func (a *API) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	stores, err := a.storeSvc.List(r.Context(), query)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"data": stores})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.renderer.StorePage(w, stores, query); err != nil {
		logger.FromContext(r.Context()).Error("render store page", zap.Error(err))
	}
}

func (a *API) handleCreateStore(w http.ResponseWriter, r *http.Request) {
	in, err := decodeStoreInput(r)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	s, err := a.storeSvc.Create(r.Context(), in)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, s)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *API) handleStoreDetail(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	query := r.URL.Query().Get("q")

	s, products, err := a.loadStore(r.Context(), storeID)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	st := table.FromValues(storeID, r.URL.Query())
	st.Products = products

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{
			"store":    s,
			"products": st.Rows(),
			"counts":   st.Counts(),
			"state":    st,
		})
		return
	}

	stores, err := a.storeSvc.List(r.Context(), query)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.renderer.StoreDetailPage(w, stores, query, s, st); err != nil {
		logger.FromContext(r.Context()).Error("render store detail", zap.Error(err))
	}
}

func (a *API) handleDeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	if err := a.storeSvc.Delete(r.Context(), storeID); err != nil {
		a.renderError(w, r, err)
		return
	}
	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loadStore fetches a store and its whole product collection. The status
// filter is applied locally so the per-status counts stay complete.
func (a *API) loadStore(ctx context.Context, storeID string) (*domstore.Store, []*domproduct.Product, error) {
	s, err := a.storeSvc.Get(ctx, storeID)
	if err != nil {
		return nil, nil, err
	}
	products, err := a.productSvc.List(ctx, storeID, table.StatusAll)
	if err != nil {
		return nil, nil, err
	}
	return s, products, nil
}

func storeLocation(st table.State) string {
	return render.StoreHref(st.StoreID) + st.With(func(*table.State) {})
}
