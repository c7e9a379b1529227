// internal/app/system/pinguard/pinguard.go

// Package pinguard authorizes edits and deletes of individual agenda rows.
//
// Each row carries a write-once pin chosen at submission. Presenting the
// matching pin yields a Grant: a short-lived token scoped to exactly one
// row index. The grant is carried in the submitter's cookie session between
// the authorize interaction and the mutation interaction, and is consumed
// by the first mutation it authorizes. Any new authorize replaces it.
//
// Authorization is a bare text-equality check, as the office has always run
// it: no hashing, no rate limiting, no lockout, and no signal that
// distinguishes a wrong pin from a row that no longer exists.
package pinguard

import (
	"context"
	"errors"
	"time"

	agendastore "github.com/dalemusser/agendahub/internal/app/store/agenda"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GrantTTL bounds how long an issued grant stays usable. Long enough to
// fill in the edit form, short enough that an abandoned kiosk session
// cannot be replayed much later.
const GrantTTL = 10 * time.Minute

// ErrNotAuthorized covers every authorization failure: wrong pin, vanished
// row, missing/expired/mismatched grant. Callers re-prompt; they get no
// finer detail by design.
var ErrNotAuthorized = errors.New("not authorized for this row")

// Grant is the capability issued by a successful Authorize. It is valid for
// one row index, for one mutation, until it expires. A grant also expires
// logically the moment the worksheet shifts under it (any row delete), which
// is why it is single-use.
type Grant struct {
	ID       string    `json:"id"`
	RowIndex int       `json:"row_index"`
	IssuedAt time.Time `json:"issued_at"`
}

// Valid reports whether the grant covers rowIndex at time now.
func (g Grant) Valid(rowIndex int, now time.Time) bool {
	return g.ID != "" &&
		g.RowIndex == rowIndex &&
		now.Sub(g.IssuedAt) <= GrantTTL &&
		!g.IssuedAt.After(now)
}

// Guard checks pins and performs the two guarded mutations.
type Guard struct {
	store *agendastore.Store
	log   *zap.Logger
	now   func() time.Time
}

// New creates a guard over the Current worksheet store.
func New(store *agendastore.Store, logger *zap.Logger) *Guard {
	return &Guard{store: store, log: logger, now: time.Now}
}

// Authorize compares suppliedPin against the stored pin of the row at
// rowIndex, both as text: exact match only, no trimming, no numeric
// coercion. On success it returns a fresh single-row grant.
//
// Adapter failures are returned as-is; a missing row or wrong pin both
// come back as ErrNotAuthorized.
func (g *Guard) Authorize(ctx context.Context, rowIndex int, suppliedPin string) (Grant, error) {
	item, found, err := g.store.Get(ctx, rowIndex)
	if err != nil {
		return Grant{}, err
	}
	if !found || suppliedPin == "" || item.Pin != suppliedPin {
		g.log.Info("row authorization refused", zap.Int("row", rowIndex))
		return Grant{}, ErrNotAuthorized
	}
	return Grant{
		ID:       uuid.NewString(),
		RowIndex: rowIndex,
		IssuedAt: g.now(),
	}, nil
}

// Update writes the four editable fields of the granted row. The caller
// must discard the grant afterwards; it has been spent.
func (g *Guard) Update(ctx context.Context, grant Grant, rowIndex int, upd agendastore.FieldUpdate) error {
	if !grant.Valid(rowIndex, g.now()) {
		return ErrNotAuthorized
	}
	return g.store.UpdateFields(ctx, rowIndex, upd)
}

// Delete removes the granted row entirely. Every row index resolved before
// this call is stale afterwards; other pending edits must re-read and
// re-authorize.
func (g *Guard) Delete(ctx context.Context, grant Grant, rowIndex int) error {
	if !grant.Valid(rowIndex, g.now()) {
		return ErrNotAuthorized
	}
	return g.store.Delete(ctx, rowIndex)
}
