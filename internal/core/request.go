// AngelaMos | 2026
// request.go

package core

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const maxBodyBytes = 1 << 20

// NormalizeEmail is the stored and compared form of an identity email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DecodeBody decodes the JSON body into dst and also returns every
// submitted field keyed by name.
func DecodeBody(r *http.Request, dst any) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode body fields: %w", err)
	}
	return fields, nil
}

// UndeclaredFields returns the fields none of models declares through a
// bson or json tag. _id, operator and dotted names are always dropped, as is
// every name in reserved.
func UndeclaredFields(fields map[string]any, models []any, reserved ...string) bson.M {
	skip := map[string]struct{}{"_id": {}}
	for _, name := range reserved {
		skip[name] = struct{}{}
	}
	for _, m := range models {
		for name := range tagNames(reflect.TypeOf(m)) {
			skip[name] = struct{}{}
		}
	}

	extra := bson.M{}
	for k, v := range fields {
		if _, ok := skip[k]; ok || k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			continue
		}
		extra[k] = v
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

func tagNames(t reflect.Type) map[string]struct{} {
	names := map[string]struct{}{}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return names
	}

	for i := range t.NumField() {
		f := t.Field(i)
		for _, key := range []string{"bson", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(key), ",")
			if name != "" && name != "-" {
				names[name] = struct{}{}
			}
		}
	}
	return names
}
