package http

import (
	"context"
	"html/template"
	"net/http"
	"net/url"

	domproduct "example.com/storeman/internal/domain/product"
	"example.com/storeman/internal/interface/events"
	"example.com/storeman/internal/usecase/table"
)

// Selectors of the page regions an event response replaces.
const (
	targetStores = ".stores-nav"
	targetDetail = ".store-detail-container"
	targetRows   = "#products-table-id"
)

type eventRequest struct {
	Event events.Event `json:"event"`
	State *table.State `json:"state"`
}

type eventResponse struct {
	Action   events.ActionKind   `json:"action"`
	State    *table.State        `json:"state,omitempty"`
	HTML     template.HTML       `json:"html,omitempty"`
	Target   string              `json:"target,omitempty"`
	Location string              `json:"location,omitempty"`
	Product  *domproduct.Product `json:"product,omitempty"`
}

func (a *API) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		handleDomainError(w, err)
		return
	}
	var st table.State
	if req.State != nil {
		st = *req.State
	}

	resp := eventResponse{}
	router := events.NewRouter(a.eventHandlers(&st, &resp))
	action, err := router.Dispatch(r.Context(), req.Event)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	resp.Action = action.Kind
	writeJSON(w, http.StatusOK, resp)
}

// eventHandlers binds the router to one request: handlers update st and
// fill resp with the region to redraw.
func (a *API) eventHandlers(st *table.State, resp *eventResponse) events.Handlers {
	detail := func(ctx context.Context, update func(*table.State)) error {
		s, products, err := a.loadStore(ctx, st.StoreID)
		if err != nil {
			return err
		}
		st.Products = products
		update(st)
		html, err := a.renderer.StoreDetail(s, *st)
		if err != nil {
			return err
		}
		resp.State, resp.HTML, resp.Target, resp.Location = st, html, targetDetail, storeLocation(*st)
		return nil
	}
	selected := func() error {
		if st.StoreID == "" {
			return errNoStoreSelected
		}
		return nil
	}
	stores := func(ctx context.Context, query string) error {
		list, err := a.storeSvc.List(ctx, query)
		if err != nil {
			return err
		}
		html, err := a.renderer.StoreList(list)
		if err != nil {
			return err
		}
		resp.HTML, resp.Target = html, targetStores
		resp.Location = "/"
		if query != "" {
			resp.Location = "/?" + url.Values{"q": {query}}.Encode()
		}
		return nil
	}

	return events.Handlers{
		SelectStore: func(ctx context.Context, storeID string) error {
			st.SelectStore(storeID, nil)
			return detail(ctx, func(*table.State) {})
		},
		Search: stores,
		Refresh: func(ctx context.Context) error {
			return stores(ctx, "")
		},
		QuickSearch: func(ctx context.Context, query string) error {
			if err := selected(); err != nil {
				return err
			}
			_, products, err := a.loadStore(ctx, st.StoreID)
			if err != nil {
				return err
			}
			st.Products = products
			st.FilterBySearch(query)
			html, err := a.renderer.ProductRows(*st)
			if err != nil {
				return err
			}
			resp.State, resp.HTML, resp.Target, resp.Location = st, html, targetRows, storeLocation(*st)
			return nil
		},
		Sort: func(ctx context.Context, col table.Column) error {
			if err := selected(); err != nil {
				return err
			}
			return detail(ctx, func(s *table.State) { s.ToggleSort(col) })
		},
		Filter: func(ctx context.Context, status string) error {
			if err := selected(); err != nil {
				return err
			}
			return detail(ctx, func(s *table.State) { s.FilterByStatus(status) })
		},
		Expand: func(ctx context.Context, productID string, col table.Column) error {
			if err := selected(); err != nil {
				return err
			}
			return detail(ctx, func(s *table.State) { s.ToggleExpand(productID, col) })
		},
		Edit: func(ctx context.Context, productID string) error {
			if err := selected(); err != nil {
				return err
			}
			p, err := a.productSvc.Get(ctx, st.StoreID, productID)
			if err != nil {
				return err
			}
			resp.State, resp.Product = st, p
			return nil
		},
		Delete: func(ctx context.Context, productID string) error {
			if err := selected(); err != nil {
				return err
			}
			if err := a.productSvc.Delete(ctx, st.StoreID, productID); err != nil {
				return err
			}
			// a fresh collection drops the sort column
			return detail(ctx, func(s *table.State) { s.SetProducts(s.Products) })
		},
	}
}
