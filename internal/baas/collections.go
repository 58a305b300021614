package baas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// CollectionField describes one field of a collection schema.
type CollectionField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
	Unique   bool   `json:"unique,omitempty"`
}

// CollectionDef is the schema definition sent to the admin API when a
// collection is created.
type CollectionDef struct {
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Schema []CollectionField `json:"schema"`

	// Access rules; an empty string means public, nil means admin-only.
	ListRule   *string `json:"listRule,omitempty"`
	ViewRule   *string `json:"viewRule,omitempty"`
	CreateRule *string `json:"createRule,omitempty"`
	UpdateRule *string `json:"updateRule,omitempty"`
	DeleteRule *string `json:"deleteRule,omitempty"`
}

// CollectionMeta is the stored form of a collection returned by the admin
// API.
type CollectionMeta struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Schema []CollectionField `json:"schema"`
}

// GetCollection fetches collection metadata by name or id. Requires a prior
// [Client.AdminAuth]. Returns [ErrNotFound] (wrapped) for unknown names.
func (c *Client) GetCollection(ctx context.Context, name string) (*CollectionMeta, error) {
	resp, err := c.request(ctx).
		Get("/api/collections/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("get collection request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var meta CollectionMeta
	if err = json.Unmarshal(resp.Body(), &meta); err != nil {
		return nil, fmt.Errorf("decode collection response: %w", err)
	}
	return &meta, nil
}

// UpdateCollection applies a partial update to the collection with the
// given id, typically to add missing schema fields. Requires a prior
// [Client.AdminAuth].
func (c *Client) UpdateCollection(ctx context.Context, id string, body any) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch("/api/collections/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("update collection request: %w", err)
	}

	return mapAPIError(resp)
}

// CreateCollection creates a collection from def. Requires a prior
// [Client.AdminAuth].
func (c *Client) CreateCollection(ctx context.Context, def CollectionDef) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(def).
		Post("/api/collections")
	if err != nil {
		return fmt.Errorf("create collection request: %w", err)
	}

	return mapAPIError(resp)
}
