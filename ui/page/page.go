// Package page holds the server-rendered page shells. The pages are thin:
// all task rendering happens in static/js/app.js against the JSON API.
package page

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"taskledger/internal/config"
)

// Index is the single-page task list shell. UI tuning knobs from the config
// are handed to the browser as data attributes.
func Index(ui config.UIConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, indexHTML, ui.RefreshSeconds, ui.NotificationLeadMinutes)
		return err
	})
}

const indexHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>taskledger</title>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body data-refresh-seconds="%d" data-notify-lead-minutes="%d">
<main class="wrap">
	<h1>taskledger</h1>
	<form id="create-form" autocomplete="off">
		<input id="f-name" name="name" placeholder="Task name" required>
		<input id="f-date" name="date" type="date">
		<input id="f-time" name="time" type="time">
		<input id="f-description" name="description" placeholder="Description (optional)">
		<button type="submit">Add task</button>
	</form>
	<p id="error" class="error" hidden></p>
	<section>
		<h2>Due / active</h2>
		<ul id="due-list" class="tasks"></ul>
	</section>
	<section>
		<h2>Scheduled</h2>
		<ul id="scheduled-list" class="tasks"></ul>
	</section>
</main>
<script src="/static/js/app.js"></script>
</body>
</html>
`
