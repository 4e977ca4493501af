package rtr

// Parameter represents a value captured from a dynamic segment of a route pattern.
//
// Example:
//   Pattern: /user/:id/posts/:postId*
//   Path:    /user/123/posts/456/edit
//   Result:  []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}, {Key: "_", Value: "/edit"}}
//
// Wildcard captures are reported under the key "_".
// The slice preserves the order in which segments appear in the pattern.
type Parameter struct {
	Key   string
	Value string
}

// Param returns the value of the first parameter with the given key.
func Param(params []Parameter, key string) string {
	for i := range params {
		if params[i].Key == key {
			return params[i].Value
		}
	}
	return ""
}
