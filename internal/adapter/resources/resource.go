package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

// crud implements the list/get/create/update/delete calls shared by every
// resource. listKey names the array inside {<key>: [...], total}; bare
// arrays are accepted for every resource.
type crud[T any] struct {
	api      ports.APIClient
	path     string
	listPath string
	listKey  string
}

func newCrud[T any](api ports.APIClient, path, listKey string) crud[T] {
	return crud[T]{api: api, path: path, listPath: path, listKey: listKey}
}

func (c crud[T]) itemPath() string {
	return c.path + "/{id}"
}

func (c crud[T]) list(ctx context.Context, op string, query url.Values) (domain.Result[domain.Page[T]], error) {
	env, err := c.api.Do(ctx, ports.APIRequest{
		Method: http.MethodGet,
		Path:   c.listPath,
		Query:  query,
	})
	if err != nil {
		return domain.Result[domain.Page[T]]{}, fmt.Errorf("%s: %w", op, err)
	}
	if !env.Success {
		return domain.Err[domain.Page[T]](env.Reason("")), nil
	}
	page, err := decodePage[T](env.Data, c.listKey)
	if err != nil {
		return domain.Result[domain.Page[T]]{}, fmt.Errorf("%s: %w: %w", op, domain.ErrUnreachable, err)
	}
	return domain.Ok(page), nil
}

func (c crud[T]) get(ctx context.Context, op, id string) (domain.Result[T], error) {
	return c.one(ctx, op, ports.APIRequest{
		Method:     http.MethodGet,
		Path:       c.itemPath(),
		PathParams: map[string]string{"id": id},
	})
}

func (c crud[T]) create(ctx context.Context, op string, payload interface{}) (domain.Result[T], error) {
	return c.one(ctx, op, ports.APIRequest{
		Method: http.MethodPost,
		Path:   c.path,
		Body:   payload,
	})
}

func (c crud[T]) update(ctx context.Context, op, id string, payload interface{}) (domain.Result[T], error) {
	return c.one(ctx, op, ports.APIRequest{
		Method:     http.MethodPut,
		Path:       c.itemPath(),
		PathParams: map[string]string{"id": id},
		Body:       payload,
	})
}

func (c crud[T]) delete(ctx context.Context, op, id string) (domain.Result[domain.Empty], error) {
	env, err := c.api.Do(ctx, ports.APIRequest{
		Method:     http.MethodDelete,
		Path:       c.itemPath(),
		PathParams: map[string]string{"id": id},
	})
	if err != nil {
		return domain.Result[domain.Empty]{}, fmt.Errorf("%s: %w", op, err)
	}
	if !env.Success {
		return domain.Err[domain.Empty](env.Reason("")), nil
	}
	return domain.Ok(domain.Empty{}), nil
}

func (c crud[T]) one(ctx context.Context, op string, req ports.APIRequest) (domain.Result[T], error) {
	return doOne[T](ctx, c.api, op, req)
}

func doOne[T any](ctx context.Context, api ports.APIClient, op string, req ports.APIRequest) (domain.Result[T], error) {
	env, err := api.Do(ctx, req)
	if err != nil {
		return domain.Result[T]{}, fmt.Errorf("%s: %w", op, err)
	}
	if !env.Success {
		return domain.Err[T](env.Reason("")), nil
	}
	item, err := decodeItem[T](env)
	if err != nil {
		return domain.Result[T]{}, fmt.Errorf("%s: %w: %w", op, domain.ErrUnreachable, err)
	}
	return domain.Ok(item), nil
}

func decodeItem[T any](env *domain.Envelope) (T, error) {
	var item T
	if !env.HasData() {
		return item, nil
	}
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return item, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
	}
	return item, nil
}

func decodePage[T any](data json.RawMessage, listKey string) (domain.Page[T], error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.NewPage[T](nil, 0), nil
	}

	var items []T
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return domain.Page[T]{}, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
		}
		return domain.NewPage(items, len(items)), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return domain.Page[T]{}, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
	}
	for _, key := range []string{listKey, "items"} {
		raw, ok := obj[key]
		if key == "" || !ok {
			continue
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return domain.Page[T]{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedEnvelope, key, err)
		}
		break
	}

	total := len(items)
	if raw, ok := obj["total"]; ok {
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			total = int(n)
		}
	}
	return domain.NewPage(items, total), nil
}

func setInt(q url.Values, key string, v int64) {
	if v > 0 {
		q.Set(key, fmt.Sprintf("%d", v))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
