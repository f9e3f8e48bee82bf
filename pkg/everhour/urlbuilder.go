package everhour

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PathParams maps placeholder names to the values substituted into a path
// template. Values must be strings or numbers; anything else is rejected the
// same way as an absent key.
type PathParams map[string]any

// QueryParams maps query keys to values. Nil values are omitted entirely;
// string, numeric, and bool values are percent-encoded and appended.
type QueryParams map[string]any

// buildURL substitutes pathParams into the {name} placeholders of template,
// appends the encoded query string, and resolves the result against the
// client's base URL. Every placeholder must have a string or numeric value;
// a violation fails before any network activity. Extra entries in pathParams
// are ignored. Keys are encoded in sorted order so identical inputs always
// produce identical URLs.
func (c *Client) buildURL(template string, pathParams PathParams, queryParams QueryParams) (string, error) {
	path := template
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		token, name := match[0], match[1]

		value, ok := pathParams[name]
		if !ok {
			return "", &MissingParameterError{Name: name}
		}
		s, ok := stringifyParam(value)
		if !ok {
			return "", &MissingParameterError{Name: name, Value: value}
		}

		path = strings.ReplaceAll(path, token, url.PathEscape(s))
	}

	query := encodeQuery(queryParams)
	if query != "" {
		path += "?" + query
	}

	return c.baseURL + path, nil
}

// encodeQuery renders queryParams as a percent-encoded query string,
// skipping nil values. Returns "" when nothing remains.
func encodeQuery(queryParams QueryParams) string {
	if len(queryParams) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range queryParams {
		if value == nil {
			continue
		}
		s, ok := stringifyParam(value)
		if !ok {
			if b, isBool := value.(bool); isBool {
				s = strconv.FormatBool(b)
			} else {
				s = fmt.Sprintf("%v", value)
			}
		}
		values.Set(key, s)
	}

	return values.Encode()
}

// stringifyParam converts string and numeric values to their string form.
func stringifyParam(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
