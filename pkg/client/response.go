package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

// APIResponse is the outcome of a single engine call. A transport failure
// leaves StatusCode at zero and sets Error; an undecodable body is NOT an
// error, the raw text is kept so callers can fall back to printing it.
type APIResponse[TBody any] struct {
	StatusCode int
	Body       TBody
	RawBody    string
	Decoded    bool
	Error      error
}

func NewAPIResponse[TBody any](resp *http.Response, err error) *APIResponse[TBody] {
	apiRes := &APIResponse[TBody]{
		Error: err,
	}
	if resp == nil {
		return apiRes
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	apiRes.StatusCode = resp.StatusCode

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		apiRes.Error = errors.Wrap(err, "failed to read response body")
		return apiRes
	}
	apiRes.RawBody = string(out)

	if err := json.Unmarshal(out, &apiRes.Body); err == nil {
		apiRes.Decoded = true
	}

	return apiRes
}

func (resp *APIResponse[TBody]) Err() error {
	return resp.Error
}

// OK reports a fully successful call: no transport error and the expected
// status code.
func (resp *APIResponse[TBody]) OK() bool {
	return resp.Error == nil && resp.StatusCode == http.StatusOK
}

// Print renders the decoded body as indented, colored JSON; undecodable
// bodies are printed verbatim.
func (resp *APIResponse[TBody]) Print() error {
	if resp.Error != nil {
		fmt.Println(resp.Error.Error())
		return nil
	}

	if !resp.Decoded {
		fmt.Println(resp.RawBody)
		return nil
	}

	jsonBody, err := json.Marshal(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal body as JSON")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, jsonBody, "", "    "); err != nil {
		return err
	}

	fmt.Println(string(pretty.Color(buf.Bytes(), nil)))
	return nil
}
