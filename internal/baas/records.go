package baas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// listResponse is the paged envelope returned by the records listing
// endpoint.
type listResponse struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalItems int             `json:"totalItems"`
	Items      json.RawMessage `json:"items"`
}

// GetOne implements [RecordAPI].
func (c *Client) GetOne(ctx context.Context, collection, id string, out any) error {
	resp, err := c.request(ctx).
		Get(recordsPath(collection) + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("get record request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	return decodeInto(resp.Body(), out)
}

// GetFirst implements [RecordAPI]: a one-item page, unwrapped. The listing
// endpoint returns 200 with an empty items array when nothing matches, so
// the miss is translated to [ErrNotFound] here.
func (c *Client) GetFirst(ctx context.Context, collection string, filter Filter, out any) error {
	list, err := c.getPage(ctx, collection, 1, 1, filter)
	if err != nil {
		return err
	}

	var items []json.RawMessage
	if err = json.Unmarshal(list.Items, &items); err != nil {
		return fmt.Errorf("decode record items: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: no record matching %q in %s", ErrNotFound, filter.String(), collection)
	}

	return decodeInto(items[0], out)
}

// GetList implements [RecordAPI]. out must point to a slice.
func (c *Client) GetList(ctx context.Context, collection string, page, perPage int, filter Filter, out any) error {
	list, err := c.getPage(ctx, collection, page, perPage, filter)
	if err != nil {
		return err
	}

	return decodeInto(list.Items, out)
}

func (c *Client) getPage(ctx context.Context, collection string, page, perPage int, filter Filter) (*listResponse, error) {
	req := c.request(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("perPage", strconv.Itoa(perPage))
	if !filter.IsZero() {
		req.SetQueryParam("filter", filter.String())
	}

	resp, err := req.Get(recordsPath(collection))
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var list listResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode record list: %w", err)
	}
	return &list, nil
}

// Create implements [RecordAPI].
func (c *Client) Create(ctx context.Context, collection string, body, out any) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(recordsPath(collection))
	if err != nil {
		return fmt.Errorf("create record request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	return decodeInto(resp.Body(), out)
}

// Update implements [RecordAPI]. Only fields present in body are written;
// the service leaves the rest of the record untouched.
func (c *Client) Update(ctx context.Context, collection, id string, body, out any) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch(recordsPath(collection) + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("update record request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	return decodeInto(resp.Body(), out)
}

// Delete implements [RecordAPI].
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	resp, err := c.request(ctx).
		Delete(recordsPath(collection) + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapAPIError(resp)
}

// FileURL implements [RecordAPI].
func (c *Client) FileURL(collection, recordID, filename string) string {
	return fmt.Sprintf("%s/api/files/%s/%s/%s",
		c.BaseURL(), url.PathEscape(collection), url.PathEscape(recordID), url.PathEscape(filename))
}

func recordsPath(collection string) string {
	return "/api/collections/" + url.PathEscape(collection) + "/records"
}

func decodeInto(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode record response: %w", err)
	}
	return nil
}
