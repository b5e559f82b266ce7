// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placestat

import (
	"bytes"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("table").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`
<table class='placestat'>
<thead>
<tr><th>metric{{range .Configs}}<th>{{.}}{{end}}{{if .OldNewDelta}}<th>delta{{end}}<th></tr>
</thead>
<tbody>
{{- range .TextRows}}
<tr>{{range .}}<td>{{.}}{{end}}</tr>
{{- end}}
</tbody>
</table>
`)))

// htmlData adapts a Table for the template: pre-rendered rows plus the
// header fields.
type htmlData struct {
	Configs     []string
	OldNewDelta bool
	TextRows    [][]string
}

// FormatHTML appends an HTML table formatting of t to buf.
func FormatHTML(buf *bytes.Buffer, t *Table) error {
	rows := toText(t)
	data := htmlData{
		Configs:     t.Configs,
		OldNewDelta: t.OldNewDelta,
		TextRows:    rows[1:],
	}
	return htmlTemplate.Execute(buf, data)
}
