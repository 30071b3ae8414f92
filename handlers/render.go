package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// templateDir is relative to the working directory the server runs from.
var templateDir = "./ui/html"

// renderPage executes a template into a buffer first so a rendering
// failure becomes a clean 500 instead of a half-written page.
func renderPage(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.ParseFiles(filepath.Join(templateDir, name))
	if err != nil {
		logrus.Errorln("Error loading template:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logrus.Errorln("Error rendering template:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logrus.Errorln("Error writing response:", err)
	}
}
