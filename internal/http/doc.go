// Package http fetches catalog documents from http and https URLs.
//
// Catalog sources given to the loader may be local paths or URLs; IsURL
// tells them apart and Client.Get retrieves the document.
//
//	client := http.NewClient()
//	data, err := client.Get(ctx, "https://example.com/scales.toml")
//	f, err := format.FromPath(http.URLPath(rawURL))
package http
