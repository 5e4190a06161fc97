package handlers

import "net/http"

const landingPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Books API</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 44rem; margin: 3rem auto; padding: 0 1rem; color: #222; }
    code { background: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px; }
    table { border-collapse: collapse; width: 100%; }
    td, th { text-align: left; padding: 0.3rem 0.6rem; border-bottom: 1px solid #ddd; }
  </style>
</head>
<body>
  <h1>Books API</h1>
  <p>A small JSON API for a book collection.</p>
  <table>
    <tr><th>Method</th><th>Path</th><th>Description</th></tr>
    <tr><td>GET</td><td><code>/api/health</code></td><td>liveness probe</td></tr>
    <tr><td>GET</td><td><code>/api/stats</code></td><td>collection statistics</td></tr>
    <tr><td>GET</td><td><code>/api/books</code></td><td>list books (page, limit, genre, year)</td></tr>
    <tr><td>POST</td><td><code>/api/books</code></td><td>create a book</td></tr>
    <tr><td>GET</td><td><code>/api/books/{id}</code></td><td>fetch one book</td></tr>
    <tr><td>PUT</td><td><code>/api/books/{id}</code></td><td>update a book</td></tr>
    <tr><td>DELETE</td><td><code>/api/books/{id}</code></td><td>delete a book</td></tr>
    <tr><td>GET</td><td><code>/api/books/search?q=</code></td><td>free-text search</td></tr>
  </table>
</body>
</html>
`

// Root serves the static landing page.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(landingPage))
}
