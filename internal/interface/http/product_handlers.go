package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"example.com/storeman/internal/interface/render"
)

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	in, err := decodeProductInput(r)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	p, err := a.productSvc.Create(r.Context(), storeID, in)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, p)
		return
	}
	http.Redirect(w, r, render.StoreHref(storeID), http.StatusSeeOther)
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.Get(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "productID"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	in, err := decodeProductInput(r)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	p, err := a.productSvc.Update(r.Context(), storeID, chi.URLParam(r, "productID"), in)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	if wantsJSON(r) || r.Method == http.MethodPut {
		writeJSON(w, http.StatusOK, p)
		return
	}
	http.Redirect(w, r, render.StoreHref(storeID), http.StatusSeeOther)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	if err := a.productSvc.Delete(r.Context(), storeID, chi.URLParam(r, "productID")); err != nil {
		a.renderError(w, r, err)
		return
	}
	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, render.StoreHref(storeID), http.StatusSeeOther)
}
