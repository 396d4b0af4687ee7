// Package message renders an order snapshot into the WhatsApp deep-link
// text. Rendering is deterministic and side-effect free.
package message

import (
	"fmt"
	"sort"
	"strings"

	"wagate/internal/application/gateway/hostservices"
	"wagate/internal/domain/gateway"
	"wagate/internal/domain/order"
)

type Formatter struct {
	site hostservices.SiteInfo
}

func NewFormatter(site hostservices.SiteInfo) *Formatter {
	return &Formatter{site: site}
}

// Render substitutes every recognized placeholder in the settings
// template with the order-derived value and returns the raw (unencoded)
// message text. Missing billing fields become empty segments.
func (f *Formatter) Render(o *order.Order, s *gateway.Settings) string {
	template := s.Template()
	if template == "" {
		template = gateway.DefaultTemplate
	}

	billing := o.Billing()
	replacer := strings.NewReplacer(
		"{website_name}", f.site.Name,
		"{website_url}", f.site.URL,
		"{order_id}", o.OrderNumber(),
		"{customer_name}", billing.FullName(),
		"{customer_phone}", billing.Phone,
		"{customer_email}", billing.Email,
		"{customer_address}", billing.FullAddress(),
		"{total}", o.Total().Format(),
		"{order_items}", f.RenderItems(o, s.EnrichItems()),
	)

	return replacer.Replace(template)
}

// RenderItems produces the multi-line {order_items} block, one bullet
// line per item. With enrichment enabled, readable attribute and
// metadata lines follow each bullet; duplicate rendered lines within an
// item are suppressed.
func (f *Formatter) RenderItems(o *order.Order, enrich bool) string {
	items := o.Items()
	lines := make([]string, 0, len(items))

	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s x%d - Rp %s", item.Name, item.Quantity, item.LineTotal.Format()))
		if enrich {
			lines = append(lines, enrichmentLines(item)...)
		}
	}

	return strings.Join(lines, "\n")
}

// enrichmentLines renders the item's variant attributes and non-internal
// metadata as indented "Label: Value" lines.
func enrichmentLines(item order.Item) []string {
	seen := make(map[string]struct{})
	var lines []string

	appendLine := func(key, value string) {
		if value == "" {
			return
		}
		line := fmt.Sprintf("  %s: %s", ReadableKey(key), ReadableValue(value))
		if _, dup := seen[line]; dup {
			return
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}

	for _, attr := range item.Attributes {
		appendLine(attr.Key, attr.Value)
	}

	// Metadata is a map; sort keys so rendering stays deterministic.
	metaKeys := make([]string, 0, len(item.Metadata))
	for key := range item.Metadata {
		if isInternalKey(key) {
			continue
		}
		metaKeys = append(metaKeys, key)
	}
	sort.Strings(metaKeys)
	for _, key := range metaKeys {
		appendLine(key, item.Metadata[key])
	}

	return lines
}
