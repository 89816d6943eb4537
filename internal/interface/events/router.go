package events

import (
	"context"
	"slices"
	"strings"

	"example.com/storeman/internal/usecase/table"
)

const (
	TypeClick   = "click"
	TypeKeydown = "keydown"
	TypeInput   = "input"
)

// Element classes, ids and titles the router recognises.
const (
	ClassStoreItem      = "stores-list__item"
	ClassSearchInput    = "search-container__search-input"
	ClassSortHeader     = "js-sort-header"
	ClassFilterButton   = "filter-buttons__filter-button"
	ClassEditProduct    = "edit-product-icon"
	ClassDeleteProduct  = "js-delete-product-button"
	ClassExpandableCell = "js-expandable-cell"
	IDQuickSearch       = "quickSearchInput"
	TitleSearch         = "Search"
	TitleRefresh        = "Refresh"
)

// Data attribute names, without the data- prefix.
const (
	DataStoreID   = "store-id"
	DataProductID = "product-id"
	DataColumn    = "column"
	DataStatus    = "status"
)

// Target describes the element an event fired on.
type Target struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Classes []string          `json:"classes"`
	Data    map[string]string `json:"data"`
}

func (t Target) HasClass(class string) bool {
	return slices.Contains(t.Classes, class)
}

// Event is a browser interaction as posted by the console page.
type Event struct {
	Type   string `json:"type"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Target Target `json:"target"`
}

type ActionKind string

const (
	ActionNone        ActionKind = "none"
	ActionSelectStore ActionKind = "select_store"
	ActionSearch      ActionKind = "search"
	ActionQuickSearch ActionKind = "quick_search"
	ActionSort        ActionKind = "sort"
	ActionFilter      ActionKind = "filter"
	ActionEdit        ActionKind = "edit"
	ActionDelete      ActionKind = "delete"
	ActionExpand      ActionKind = "expand"
	ActionRefresh     ActionKind = "refresh"
)

// Action is the outcome of routing an event. Only the fields relevant to
// Kind are set.
type Action struct {
	Kind      ActionKind   `json:"kind"`
	StoreID   string       `json:"storeId,omitempty"`
	ProductID string       `json:"productId,omitempty"`
	Column    table.Column `json:"column,omitempty"`
	Status    string       `json:"status,omitempty"`
	Value     string       `json:"value,omitempty"`
}

// Handlers are the callbacks the router forwards to. Nil fields are
// replaced by no-ops.
type Handlers struct {
	SelectStore func(ctx context.Context, storeID string) error
	Search      func(ctx context.Context, query string) error
	QuickSearch func(ctx context.Context, query string) error
	Sort        func(ctx context.Context, col table.Column) error
	Filter      func(ctx context.Context, status string) error
	Edit        func(ctx context.Context, productID string) error
	Delete      func(ctx context.Context, productID string) error
	Expand      func(ctx context.Context, productID string, col table.Column) error
	Refresh     func(ctx context.Context) error
}

type Router struct {
	h Handlers
}

func NewRouter(h Handlers) *Router {
	noop := func(context.Context, string) error { return nil }
	if h.SelectStore == nil {
		h.SelectStore = noop
	}
	if h.Search == nil {
		h.Search = noop
	}
	if h.QuickSearch == nil {
		h.QuickSearch = noop
	}
	if h.Filter == nil {
		h.Filter = noop
	}
	if h.Edit == nil {
		h.Edit = noop
	}
	if h.Delete == nil {
		h.Delete = noop
	}
	if h.Sort == nil {
		h.Sort = func(context.Context, table.Column) error { return nil }
	}
	if h.Expand == nil {
		h.Expand = func(context.Context, string, table.Column) error { return nil }
	}
	if h.Refresh == nil {
		h.Refresh = func(context.Context) error { return nil }
	}
	return &Router{h: h}
}

// Route translates ev into an action without calling any handler. The
// second result is false when the event means nothing to the console.
func (r *Router) Route(ev Event) (Action, bool) {
	t := ev.Target
	switch ev.Type {
	case TypeClick:
		return routeClick(ev)
	case TypeKeydown:
		if ev.Key == "Enter" && t.HasClass(ClassSearchInput) {
			return Action{Kind: ActionSearch, Value: ev.Value}, true
		}
	case TypeInput:
		if t.ID == IDQuickSearch {
			return Action{Kind: ActionQuickSearch, Value: ev.Value}, true
		}
	}
	return Action{Kind: ActionNone}, false
}

func routeClick(ev Event) (Action, bool) {
	t := ev.Target
	switch {
	case t.HasClass(ClassStoreItem) && t.Data[DataStoreID] != "":
		return Action{Kind: ActionSelectStore, StoreID: t.Data[DataStoreID]}, true
	case t.Title == TitleSearch:
		return Action{Kind: ActionSearch, Value: ev.Value}, true
	case t.Title == TitleRefresh:
		return Action{Kind: ActionRefresh}, true
	case t.HasClass(ClassSortHeader):
		if col, ok := table.ParseColumn(t.Data[DataColumn]); ok {
			return Action{Kind: ActionSort, Column: col}, true
		}
	case t.HasClass(ClassFilterButton) && t.Data[DataStatus] != "":
		return Action{Kind: ActionFilter, Status: strings.ToUpper(t.Data[DataStatus])}, true
	case t.HasClass(ClassEditProduct) && t.Data[DataProductID] != "":
		return Action{Kind: ActionEdit, ProductID: t.Data[DataProductID]}, true
	case t.HasClass(ClassDeleteProduct) && t.Data[DataProductID] != "":
		return Action{Kind: ActionDelete, ProductID: t.Data[DataProductID]}, true
	case t.HasClass(ClassExpandableCell) && t.Data[DataProductID] != "":
		if col, ok := table.ParseColumn(t.Data[DataColumn]); ok && col.Expandable() {
			return Action{Kind: ActionExpand, ProductID: t.Data[DataProductID], Column: col}, true
		}
	}
	return Action{Kind: ActionNone}, false
}

// Dispatch routes ev and forwards it to the bound handler. Unrouted
// events return ActionNone and no error.
func (r *Router) Dispatch(ctx context.Context, ev Event) (Action, error) {
	a, ok := r.Route(ev)
	if !ok {
		return a, nil
	}
	var err error
	switch a.Kind {
	case ActionSelectStore:
		err = r.h.SelectStore(ctx, a.StoreID)
	case ActionSearch:
		err = r.h.Search(ctx, a.Value)
	case ActionQuickSearch:
		err = r.h.QuickSearch(ctx, a.Value)
	case ActionSort:
		err = r.h.Sort(ctx, a.Column)
	case ActionFilter:
		err = r.h.Filter(ctx, a.Status)
	case ActionEdit:
		err = r.h.Edit(ctx, a.ProductID)
	case ActionDelete:
		err = r.h.Delete(ctx, a.ProductID)
	case ActionExpand:
		err = r.h.Expand(ctx, a.ProductID, a.Column)
	case ActionRefresh:
		err = r.h.Refresh(ctx)
	}
	return a, err
}
