package httputil

import (
	"net/url"
	"reflect"
)

// SetQueryFields returns the names of all fields of the filter whose
// parameter is set in the query string of the URL.
//
// This is used to tell apart parameters that are unset from parameters
// that are explicitly set to their zero value.
func SetQueryFields(url *url.URL, filter any) []string {
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if url.Query().Has(param) {
			setFields = append(setFields, field)
		}
	}

	return setFields
}
