// Package taxonomy maps provider failure codes onto canonical error codes.
// The tables are read-only after init and safe for concurrent use.
package taxonomy

import (
	"net/http"
	"sort"
	"strings"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/domain"
)

type entry struct {
	code    string
	message string
	errType domain.ErrorType
}

type table struct {
	byCode    map[string]domain.ErrorType
	byMessage map[string]domain.ErrorType
}

func newTable(entries []entry) table {
	t := table{
		byCode:    make(map[string]domain.ErrorType, len(entries)),
		byMessage: make(map[string]domain.ErrorType, len(entries)),
	}
	for _, e := range entries {
		t.byCode[e.code] = e.errType
		if e.message != "" {
			t.byMessage[normalizeMessage(e.message)] = e.errType
		}
	}
	return t
}

var tables = map[string]table{
	domain.ProviderAdyen:    newTable(adyenEntries),
	domain.ProviderCheckout: newTable(checkoutEntries),
}

// Classify resolves a provider failure to a canonical code. The code is
// looked up first, then the message. Anything unmapped, including unknown
// providers, resolves to other/other.
func Classify(provider, providerCode, providerMessage string) domain.ErrorCode {
	if t, ok := Lookup(provider, providerCode); ok {
		return t.Code()
	}
	if tbl, ok := tables[provider]; ok && providerMessage != "" {
		if t, ok := tbl.byMessage[normalizeMessage(providerMessage)]; ok {
			return t.Code()
		}
	}
	return domain.ErrOther.Code()
}

// Lookup returns the canonical type for a provider code, if one is mapped.
func Lookup(provider, providerCode string) (domain.ErrorType, bool) {
	tbl, ok := tables[provider]
	if !ok {
		return "", false
	}
	t, ok := tbl.byCode[strings.TrimSpace(providerCode)]
	return t, ok
}

// ClassifyHTTPStatus maps authentication-layer HTTP statuses directly to the
// authentication category, without consulting any provider table.
func ClassifyHTTPStatus(status int) (domain.ErrorCode, bool) {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrInvalidAPIKey.Code(), true
	case http.StatusForbidden:
		return domain.ErrUnauthorized.Code(), true
	}
	return domain.ErrorCode{}, false
}

// Providers lists providers with a classification table.
func Providers() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Codes returns a copy of the provider's code table.
func Codes(provider string) map[string]domain.ErrorType {
	tbl, ok := tables[provider]
	if !ok {
		return nil
	}
	out := make(map[string]domain.ErrorType, len(tbl.byCode))
	for k, v := range tbl.byCode {
		out[k] = v
	}
	return out
}

func normalizeMessage(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
