// Package source resolves video URLs to caption payloads, track lists,
// and metadata. The Source interface is the boundary between the
// analysis core and whatever fetches captions; Directory is the built-in
// implementation and reads the download layout a yt-dlp style fetcher
// leaves behind, so the core never shells out to anything.
package source
