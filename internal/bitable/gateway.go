package bitable

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/randalmurphal/todui/internal/reconcile"
	"github.com/randalmurphal/todui/internal/util"
)

var _ reconcile.Gateway = (*Client)(nil)

// pageSize is the records/search page size. The API caps it at 500.
const pageSize = 500

// FetchProjectRecords returns the view's rows whose Project field equals
// project.
func (c *Client) FetchProjectRecords(ctx context.Context, project string) ([]reconcile.RemoteRecord, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	var records []reconcile.RemoteRecord
	for _, r := range all {
		if r.Project == project {
			records = append(records, r)
		}
	}
	c.logger.Info("fetched project records", "project", project, "records", len(records), "total", len(all))
	return records, nil
}

// FetchGlobalRecords returns every row in the view regardless of project.
func (c *Client) FetchGlobalRecords(ctx context.Context) ([]reconcile.RemoteRecord, error) {
	records, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Info("fetched global records", "records", len(records))
	return records, nil
}

// CreateRecords inserts rows in one batch_create call. A fresh client_token
// keeps the batch idempotent across transport retries.
func (c *Client) CreateRecords(ctx context.Context, fields []map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	records := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		records = append(records, map[string]any{"fields": f})
	}
	query := url.Values{"client_token": {uuid.NewString()}}
	path := fmt.Sprintf("/bitable/v1/apps/%s/tables/%s/records/batch_create", c.cfg.AppToken, c.cfg.TableID)
	_, err := c.call(ctx, "records/batch_create", http.MethodPost, path, query, map[string]any{"records": records})
	return err
}

// UpdateRecord overwrites the given fields of one row.
func (c *Client) UpdateRecord(ctx context.Context, id string, fields map[string]any) error {
	path := fmt.Sprintf("/bitable/v1/apps/%s/tables/%s/records/%s", c.cfg.AppToken, c.cfg.TableID, id)
	_, err := c.call(ctx, "records/update", http.MethodPut, path, nil, map[string]any{"fields": fields})
	return err
}

// DeleteRecords removes rows by id in one batch_delete call.
func (c *Client) DeleteRecords(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	path := fmt.Sprintf("/bitable/v1/apps/%s/tables/%s/records/batch_delete", c.cfg.AppToken, c.cfg.TableID)
	_, err := c.call(ctx, "records/batch_delete", http.MethodPost, path, nil, map[string]any{"records": ids})
	return err
}

// fetchAll walks every page of the view and converts its rows.
func (c *Client) fetchAll(ctx context.Context) ([]reconcile.RemoteRecord, error) {
	var records []reconcile.RemoteRecord
	pageToken := ""
	for page := 1; ; page++ {
		result, err := c.searchPage(ctx, pageToken)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		data := result.Get("data")
		items := data.Get("items").Array()
		for _, item := range items {
			records = append(records, c.recordFromItem(item))
		}
		c.logger.Debug("fetched records page", "page", page, "records", len(items))

		pageToken = data.Get("page_token").String()
		if !data.Get("has_more").Bool() || pageToken == "" {
			break
		}
	}
	return records, nil
}

// searchPage fetches one records/search page.
func (c *Client) searchPage(ctx context.Context, pageToken string) (gjson.Result, error) {
	query := url.Values{
		"page_size":    {strconv.Itoa(pageSize)},
		"user_id_type": {"open_id"},
	}
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}
	body := map[string]any{
		"field_names": reconcile.FieldNames(c.cfg.TimestampAware),
		"view_id":     c.cfg.ViewID,
	}
	path := fmt.Sprintf("/bitable/v1/apps/%s/tables/%s/records/search", c.cfg.AppToken, c.cfg.TableID)
	return c.call(ctx, "records/search", http.MethodPost, path, query, body)
}

// recordFromItem converts one records/search item into a RemoteRecord.
func (c *Client) recordFromItem(item gjson.Result) reconcile.RemoteRecord {
	fields := item.Get("fields")
	rec := reconcile.RemoteRecord{ID: item.Get("record_id").String()}
	rec.Key = fieldText(fields.Get(reconcile.FieldTask))
	rec.Project = fieldText(fields.Get(reconcile.FieldProject))
	rec.Status = fieldText(fields.Get(reconcile.FieldStatus))
	rec.Tags = reconcile.SplitTags(fieldText(fields.Get(reconcile.FieldTags)))
	rec.Priority = fieldText(fields.Get(reconcile.FieldPriority))
	if c.cfg.TimestampAware {
		rec.Timestamp = util.NormalizeRemoteTime(fields.Get(reconcile.FieldUpdated).Value())
	}
	return rec
}

// fieldText flattens a field value to text. Plain scalars pass through;
// lists of {text: ...} segments join their text parts, and multi-select
// string lists join with ", ".
func fieldText(v gjson.Result) string {
	if !v.Exists() {
		return ""
	}
	if v.IsArray() {
		var parts []string
		for _, item := range v.Array() {
			if item.IsObject() {
				if t := item.Get("text"); t.Exists() {
					parts = append(parts, t.String())
					continue
				}
			}
			parts = append(parts, item.String())
		}
		return strings.Join(parts, ", ")
	}
	return v.String()
}
