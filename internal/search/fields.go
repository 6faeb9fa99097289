package search

import (
	"strconv"
	"strings"

	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/model"
)

var searchableTypes = map[string]bool{
	"text": true, "textarea": true, "email": true, "phone": true, "name": true, "address": true,
	"select": true, "radio": true, "checkbox": true, "number": true, "hidden": true,
}

var primaryTypes = []string{"name", "email", "text", "textarea"}

const primaryWords = 10

// SearchableFields returns the value keys worth matching in form: the id of
// every field with a searchable type, followed by its sub-input ids.
func SearchableFields(form model.Form) []string {
	var keys []string
	for _, f := range form.Fields {
		if !searchableTypes[f.Type] {
			continue
		}
		keys = append(keys, strconv.Itoa(f.ID))
		for _, in := range f.Inputs {
			keys = append(keys, in.ID)
		}
	}
	return keys
}

// PrimaryValue picks the label shown for an entry. Fields are tried by type
// priority, then in form order within a type.
func PrimaryValue(entry model.Entry, form model.Form) string {
	for _, typ := range primaryTypes {
		for _, f := range form.Fields {
			if f.Type != typ {
				continue
			}
			v, ok := fieldValue(entry, f)
			if ok && !pkg.IsBlank(v) {
				return pkg.TrimWords(v, primaryWords, "...")
			}
		}
	}
	return "Entry #" + strconv.FormatInt(entry.ID, 10)
}

// fieldValue reports false for composite fields other than name, which have
// no single string value.
func fieldValue(entry model.Entry, f model.Field) (string, bool) {
	if len(f.Inputs) == 0 {
		return entry.Values[strconv.Itoa(f.ID)], true
	}
	if f.Type != "name" {
		return "", false
	}

	parts := make([]string, 0, len(f.Inputs))
	for _, in := range f.Inputs {
		if v := entry.Values[in.ID]; !pkg.IsBlank(v) {
			parts = append(parts, v)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), true
}
