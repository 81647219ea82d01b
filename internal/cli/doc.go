// Package cli parses jumpmaze command-line arguments into an app.Config.
package cli
