package config

import (
	"context"
	"strings"

	"github.com/collectivehq/platform_backend/appctx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenantGuardPlugin enforces host isolation by automatically scoping
// queries/updates/deletes to the request's host_collective_id when the model
// has a host_collective_id column (ledger tables, settlements, orders, expenses).
//
// NOTE:
// - This does NOT apply to Raw SQL queries. Those must include host_collective_id manually.
// - Admin/internal bypass is explicit via context flags.
type TenantGuardPlugin struct{}

func NewTenantGuardPlugin() *TenantGuardPlugin { return &TenantGuardPlugin{} }

func (p *TenantGuardPlugin) Name() string { return "tenant_guard" }

func (p *TenantGuardPlugin) Initialize(db *gorm.DB) error {
	// Query
	if err := db.Callback().Query().Before("gorm:query").Register("tenant_guard:query", tenantGuardCallback); err != nil {
		return err
	}
	// Row (First/Take)
	if err := db.Callback().Row().Before("gorm:row").Register("tenant_guard:row", tenantGuardCallback); err != nil {
		return err
	}
	// Update
	if err := db.Callback().Update().Before("gorm:update").Register("tenant_guard:update", tenantGuardCallback); err != nil {
		return err
	}
	// Delete
	if err := db.Callback().Delete().Before("gorm:delete").Register("tenant_guard:delete", tenantGuardCallback); err != nil {
		return err
	}
	return nil
}

func tenantGuardCallback(db *gorm.DB) {
	if db == nil || db.Statement == nil {
		return
	}
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	if shouldBypassTenantScope(ctx) {
		return
	}
	hostID := hostCollectiveIdFromContext(ctx)
	if hostID == 0 {
		return
	}

	// Only apply if the current model/table includes a host_collective_id column.
	if db.Statement.Schema == nil {
		return
	}
	hasHostID := false
	for _, f := range db.Statement.Schema.Fields {
		if strings.EqualFold(f.DBName, "host_collective_id") {
			hasHostID = true
			break
		}
	}
	if !hasHostID {
		return
	}

	// Don't duplicate an explicit tenant filter.
	if whereHasHostID(db.Statement.Clauses["WHERE"]) {
		return
	}

	db.Statement.AddClause(clause.Where{
		Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: db.Statement.Table, Name: "host_collective_id"},
				Value:  hostID,
			},
		},
	})
}

func hostCollectiveIdFromContext(ctx context.Context) int {
	if v, ok := ctx.Value(appctx.ContextKeyHostCollectiveId).(int); ok && v > 0 {
		return v
	}
	return 0
}

func shouldBypassTenantScope(ctx context.Context) bool {
	if v, ok := ctx.Value(appctx.ContextKeySkipTenantScope).(bool); ok && v {
		return true
	}
	if v, ok := ctx.Value(appctx.ContextKeyIsAdmin).(bool); ok && v {
		return true
	}
	return false
}

func whereHasHostID(c clause.Clause) bool {
	if c.Expression == nil {
		return false
	}
	w, ok := c.Expression.(clause.Where)
	if !ok {
		return false
	}
	for _, e := range w.Exprs {
		if exprHasHostID(e) {
			return true
		}
	}
	return false
}

func exprHasHostID(e clause.Expression) bool {
	switch v := e.(type) {
	case clause.Eq:
		return colIsHostID(v.Column)
	case clause.Neq:
		return colIsHostID(v.Column)
	case clause.Gt:
		return colIsHostID(v.Column)
	case clause.Gte:
		return colIsHostID(v.Column)
	case clause.Lt:
		return colIsHostID(v.Column)
	case clause.Lte:
		return colIsHostID(v.Column)
	case clause.IN:
		return colIsHostID(v.Column)
	case clause.AndConditions:
		for _, x := range v.Exprs {
			if exprHasHostID(x) {
				return true
			}
		}
		return false
	case clause.OrConditions:
		for _, x := range v.Exprs {
			if exprHasHostID(x) {
				return true
			}
		}
		return false
	case clause.Expr:
		// Best-effort for raw expressions.
		return strings.Contains(strings.ToLower(v.SQL), "host_collective_id")
	default:
		return false
	}
}

func colIsHostID(col any) bool {
	switch c := col.(type) {
	case string:
		return strings.EqualFold(c, "host_collective_id")
	case clause.Column:
		return strings.EqualFold(c.Name, "host_collective_id")
	default:
		return false
	}
}
