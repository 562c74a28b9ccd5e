package website

import (
	"encoding/json"
	"io"
	"strconv"

	"git.radiohub.fm/hub/hub/src/oops"
)

const maxRequestBodySize = 1024 * 1024

// pathParamInt parses a numeric path parameter. The routing regexes only
// match digits for these params, so a parse failure is a programming error.
func pathParamInt(c *RequestContext, name string) int {
	value, err := strconv.Atoi(c.PathParams[name])
	if err != nil {
		panic(oops.New(err, "path param %s did not parse as an int; check the route regex", name))
	}
	return value
}

func readJsonBody(c *RequestContext, dest any) error {
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Req.Body, maxRequestBodySize))
	if err != nil {
		return oops.New(err, "failed to read request body")
	}
	if err := json.Unmarshal(bodyBytes, dest); err != nil {
		return NewSafeError(err, "request body was not valid JSON")
	}
	return nil
}
