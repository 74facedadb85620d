package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

type Parameter map[string]string

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, key+"="+percentEncode(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

func percentEncode(s string) string {
	s = url.QueryEscape(s)
	return strings.ReplaceAll(s, "+", "%20")
}

type JSON map[string]any

func (j JSON) ToReader() (io.Reader, string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewBuffer(b), "application/json", nil
}

type Response struct {
	Code    int
	Header  http.Header
	RawBody []byte
}

// Decode unmarshals the response body into v, failing on non-2xx statuses.
func (r *Response) Decode(v any) error {
	if r.Code < 200 || r.Code >= 300 {
		return fmt.Errorf("unexpected status code %d", r.Code)
	}

	return json.Unmarshal(r.RawBody, v)
}
