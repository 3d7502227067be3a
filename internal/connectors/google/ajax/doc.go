// Package ajax implements every search fetcher against the Google AJAX
// Search JSON endpoint.
//
// Each kind is served from its own path below the base URL (/web, /news,
// /books, /video, /images, /local, /patent). A page is requested with
// rsz=small|large and start=<offset>; the response wraps the results and
// a cursor in a status envelope:
//
//	{"responseData": {"results": [...], "cursor": {"estimatedResultCount": "123"}},
//	 "responseDetails": null, "responseStatus": 200}
//
// The endpoint requires a Referer header. An API key is optional.
package ajax
