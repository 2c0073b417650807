package http

import (
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

const maxPageSize = 100

// queryParser collects validation errors of one query string.
type queryParser struct {
	c    *gin.Context
	errs []error
}

func (p *queryParser) int64(name string, min, max int64) (int64, bool) {
	raw, ok := p.c.GetQuery(name)
	if !ok || raw == "" {
		return 0, false
	}
	n, err := swag.ConvertInt64(raw)
	if err != nil {
		p.errs = append(p.errs, openapierrors.InvalidType(name, "query", "integer", raw))
		return 0, false
	}
	if e := validate.MinimumInt(name, "query", n, min, false); e != nil {
		p.errs = append(p.errs, e)
		return 0, false
	}
	if max > 0 {
		if e := validate.MaximumInt(name, "query", n, max, false); e != nil {
			p.errs = append(p.errs, e)
			return 0, false
		}
	}
	return n, true
}

// enum returns the value of name when it is empty or one of allowed.
func (p *queryParser) enum(name string, allowed []interface{}) (string, bool) {
	raw, ok := p.c.GetQuery(name)
	if !ok {
		return "", false
	}
	if raw != "" {
		if e := validate.Enum(name, "query", raw, allowed); e != nil {
			p.errs = append(p.errs, e)
			return "", false
		}
	}
	return raw, true
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return openapierrors.CompositeValidationError(p.errs...)
}

func enumValues[T ~string](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// parseMotorbikeQuery applies the query string on top of current. A changed
// filter or search restarts at page 1.
func parseMotorbikeQuery(c *gin.Context, current ports.MotorbikeQuery) (ports.MotorbikeQuery, error) {
	p := &queryParser{c: c}
	q := current
	filtered := false

	if v, ok := c.GetQuery("search"); ok {
		q.Search = v
		filtered = true
	}
	if v, ok := p.enum("type", enumValues(domain.MotorbikeTypes)); ok {
		q.Type = domain.MotorbikeType(v)
		filtered = true
	}
	if v, ok := p.enum("status", enumValues(domain.MotorbikeStatuses)); ok {
		q.Status = domain.MotorbikeStatus(v)
		filtered = true
	}
	if filtered {
		q.Page = 1
	}
	if n, ok := p.int64("page", 1, 0); ok {
		q.Page = n
	}
	if n, ok := p.int64("limit", 1, maxPageSize); ok {
		q.Limit = n
	}

	if err := p.err(); err != nil {
		return current, err
	}
	return q, nil
}

func parseUserQuery(c *gin.Context, current ports.UserQuery) (ports.UserQuery, error) {
	p := &queryParser{c: c}
	q := current

	if v, ok := c.GetQuery("search"); ok {
		q.Search = v
		q.Page = 1
	}
	if n, ok := p.int64("page", 1, 0); ok {
		q.Page = n
	}
	if n, ok := p.int64("limit", 1, maxPageSize); ok {
		q.Limit = n
	}

	if err := p.err(); err != nil {
		return current, err
	}
	return q, nil
}

func parseNoQuery(c *gin.Context, current ports.NoQuery) (ports.NoQuery, error) {
	return current, nil
}

type rentalQuery struct {
	Status    domain.RentalStatus
	HasStatus bool
	Page      int
	HasPage   bool
	Refresh   bool
}

func parseRentalQuery(c *gin.Context) (rentalQuery, error) {
	p := &queryParser{c: c}
	var q rentalQuery

	if v, ok := p.enum("status", enumValues(domain.RentalStatuses)); ok {
		q.Status = domain.RentalStatus(v)
		q.HasStatus = true
	}
	if n, ok := p.int64("page", 1, 0); ok {
		q.Page = int(n)
		q.HasPage = true
	}
	q.Refresh = c.Query("refresh") == "true"

	return q, p.err()
}
