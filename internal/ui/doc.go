// Package ui provides semantic text formatting for liteend console output.
//
// Formatters colorize text when the terminal supports it and fall back to
// plain decorations (backticks, quotes) when NO_COLOR is set or colors are
// unavailable:
//
//	ui.Code.Sprint("npm run db:gen")   // `npm run db:gen` without color
//	ui.Path.Sprint("my-app/.env")      // paths are self-evident
//	ui.Highlight.Sprint("my-app")      // 'my-app' without color
//
// Status lines pair a marker with a message and are what the `new` command
// prints between steps:
//
//	ui.Status(os.Stdout, ui.StatusInfo, "Cloning repository...")
//	ui.Status(os.Stdout, ui.StatusSuccess, "Project created!")
package ui
